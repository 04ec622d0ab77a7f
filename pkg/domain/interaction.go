package domain

import "time"

// Interaction is a single tracked event of a user with an article.
// Rating is optional: positive means like, zero means dislike, nil means neutral.
type Interaction struct {
	ID           int64
	UserID       string
	ArticleTitle string
	Category     string
	Description  string
	Rating       *int
	Timestamp    time.Time
}

// Liked reports whether the interaction carries a positive rating
func (i Interaction) Liked() bool {
	return i.Rating != nil && *i.Rating > 0
}

// Disliked reports whether the interaction carries an explicit zero rating
func (i Interaction) Disliked() bool {
	return i.Rating != nil && *i.Rating == 0
}

// Rated reports whether the interaction has any rating at all
func (i Interaction) Rated() bool {
	return i.Rating != nil
}

// Recommendation is a suggested article, identified by title and category
type Recommendation struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

// RatingPtr returns a pointer to the given rating value
func RatingPtr(v int) *int {
	return &v
}
