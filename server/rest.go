package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/umputun/newsrec/pkg/catalog"
	"github.com/umputun/newsrec/pkg/domain"
)

type signupRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type trackRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	Rating      *int   `json:"rating,omitempty" validate:"omitempty,min=-1,max=5"`
}

type statusResponse struct {
	Status   string `json:"status"`
	Redirect string `json:"redirect,omitempty"`
}

type historyEntry struct {
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Rating      *int      `json:"rating,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type historyResponse struct {
	User            string                  `json:"user"`
	History         []historyEntry          `json:"history"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

type articleResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	Published   time.Time `json:"published"`
}

// statusHandler returns server status, 503 if database is unreachable
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	if err := s.db.Ping(r.Context()); err != nil {
		log.Printf("[WARN] database ping failed: %v", err)
		status["status"] = "database unavailable"
		renderJSON(w, r, http.StatusServiceUnavailable, status)
		return
	}
	renderJSON(w, r, http.StatusOK, status)
}

// signupHandler registers a new user account
func (s *Server) signupHandler(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := s.decode(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if _, err := s.db.CreateUser(r.Context(), req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			renderJSON(w, r, http.StatusConflict, statusResponse{Status: "Username or email already exists"})
			return
		}
		log.Printf("[ERROR] failed to create user %q: %v", req.Username, err)
		renderError(w, r, errors.New("failed to create user"), http.StatusInternalServerError)
		return
	}

	log.Printf("[INFO] user %q signed up", req.Username)
	renderJSON(w, r, http.StatusCreated, statusResponse{Status: "Signup successful", Redirect: "/login"})
}

// loginHandler checks user credentials
func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := s.decode(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	user, err := s.db.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			renderJSON(w, r, http.StatusUnauthorized, statusResponse{Status: "Invalid username or password"})
			return
		}
		log.Printf("[ERROR] failed to authenticate %q: %v", req.Username, err)
		renderError(w, r, errors.New("failed to authenticate"), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, statusResponse{
		Status:   "Login successful",
		Redirect: "/history?user=" + url.QueryEscape(user.Username),
	})
}

// trackHandler records a user interaction with an article
func (s *Server) trackHandler(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := s.decode(r, &req); err != nil {
		renderError(w, r, errors.New("incomplete data"), http.StatusBadRequest)
		return
	}

	in := &domain.Interaction{
		UserID:       strings.TrimSpace(req.UserID),
		ArticleTitle: catalog.CleanText(s.sanitizer, req.Title),
		Category:     catalog.CleanText(s.sanitizer, req.Category),
		Description:  catalog.CleanText(s.sanitizer, req.Description),
		Rating:       req.Rating,
	}
	if in.UserID == "" || in.ArticleTitle == "" || in.Category == "" || in.Description == "" {
		renderError(w, r, errors.New("incomplete data"), http.StatusBadRequest)
		return
	}

	if err := s.db.AppendInteraction(r.Context(), in); err != nil {
		log.Printf("[ERROR] failed to track interaction for %q: %v", req.UserID, err)
		renderError(w, r, errors.New("failed to track interaction"), http.StatusInternalServerError)
		return
	}

	log.Printf("[DEBUG] interaction tracked for user_id=%s: %s", in.UserID, in.ArticleTitle)
	renderJSON(w, r, http.StatusOK, statusResponse{Status: "Interaction tracked"})
}

// recommendationsHandler returns recommendations for ?user=
func (s *Server) recommendationsHandler(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		renderError(w, r, domain.ErrInvalidUserReference, http.StatusBadRequest)
		return
	}

	recs, err := s.recommender.Recommend(r.Context(), user)
	if err != nil {
		log.Printf("[ERROR] failed to get recommendations for %q: %v", user, err)
		renderError(w, r, errors.New("failed to get recommendations"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, recs)
}

// historyHandler returns interaction history with recommendations for ?user=,
// an empty payload if user isn't set
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	resp := historyResponse{User: user, History: []historyEntry{}, Recommendations: []domain.Recommendation{}}
	if user == "" {
		renderJSON(w, r, http.StatusOK, resp)
		return
	}

	history, err := s.recommender.History(r.Context(), user)
	if err != nil {
		log.Printf("[ERROR] failed to get history for %q: %v", user, err)
		renderError(w, r, errors.New("failed to get history"), http.StatusInternalServerError)
		return
	}
	for _, in := range history {
		resp.History = append(resp.History, historyEntry{
			Title:       in.ArticleTitle,
			Category:    in.Category,
			Description: in.Description,
			Rating:      in.Rating,
			Timestamp:   in.Timestamp,
		})
	}

	recs, err := s.recommender.Recommend(r.Context(), user)
	if err != nil {
		log.Printf("[ERROR] failed to get recommendations for %q: %v", user, err)
		renderError(w, r, errors.New("failed to get recommendations"), http.StatusInternalServerError)
		return
	}
	resp.Recommendations = recs
	renderJSON(w, r, http.StatusOK, resp)
}

// articlesHandler returns catalog articles, newest first, optionally filtered by ?category=
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.ArticleFilter{Category: r.URL.Query().Get("category"), Limit: 50}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > 500 {
			renderError(w, r, errors.New("invalid limit"), http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	articles, err := s.db.GetArticles(r.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] failed to get articles: %v", err)
		renderError(w, r, errors.New("failed to get articles"), http.StatusInternalServerError)
		return
	}

	res := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		res = append(res, articleResponse{ID: a.ID, Title: a.Title, Link: a.Link, Category: a.Category,
			Description: a.Description, Source: a.Source, Published: a.Published})
	}
	renderJSON(w, r, http.StatusOK, res)
}

// categoriesHandler returns distinct catalog categories
func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := s.db.GetCategories(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get categories: %v", err)
		renderError(w, r, errors.New("failed to get categories"), http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	renderJSON(w, r, http.StatusOK, categories)
}

// decode reads a JSON body into v and validates it
func (s *Server) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := s.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid field %s: %s", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}
