package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"quixie-quiz-service/internal/app"
	"quixie-quiz-service/internal/domain"
)

// APIHandler serves the JSON read paths: quiz catalog, stored results and
// comments. Session play itself happens over the WebSocket.
type APIHandler struct {
	service *app.SessionService
}

func NewAPIHandler(service *app.SessionService) *APIHandler {
	return &APIHandler{service: service}
}

// Register attaches the handler's routes to the mux.
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/quizzes", h.handleQuizzes)
	mux.HandleFunc("/results", h.handleResults)
	mux.HandleFunc("/comments", h.handleComments)
	mux.HandleFunc("/comments/upvote", h.handleUpvote)
}

func (h *APIHandler) handleQuizzes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if category := r.URL.Query().Get("category"); category != "" {
		quizzes, err := h.service.QuizzesByCategory(r.Context(), domain.Category(category))
		h.respondList(w, quizzes, err)
		return
	}
	// An empty query matches everything, so this also serves the full catalog.
	quizzes, err := h.service.SearchQuizzes(r.Context(), r.URL.Query().Get("q"))
	h.respondList(w, quizzes, err)
}

func (h *APIHandler) handleResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	query := r.URL.Query()
	switch {
	case query.Get("id") != "":
		id, err := strconv.ParseInt(query.Get("id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid result id", http.StatusBadRequest)
			return
		}
		result, err := h.service.GetResult(r.Context(), id)
		if err != nil {
			h.respondError(w, err)
			return
		}
		h.writeJSON(w, result)
	case query.Get("userId") != "":
		results, err := h.service.ResultsByUser(r.Context(), query.Get("userId"))
		h.respondList(w, results, err)
	case query.Get("quizId") != "":
		results, err := h.service.ResultsByQuiz(r.Context(), query.Get("quizId"))
		h.respondList(w, results, err)
	default:
		http.Error(w, "missing id, userId, or quizId", http.StatusBadRequest)
	}
}

func (h *APIHandler) handleComments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		quizID := r.URL.Query().Get("quizId")
		if quizID == "" {
			http.Error(w, "missing quizId", http.StatusBadRequest)
			return
		}
		comments, err := h.service.CommentsForQuiz(r.Context(), quizID)
		h.respondList(w, comments, err)
	case http.MethodPost:
		var body struct {
			QuizID string `json:"quizId"`
			UserID string `json:"userId"`
			Text   string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.QuizID == "" || body.UserID == "" || body.Text == "" {
			http.Error(w, "invalid comment payload", http.StatusBadRequest)
			return
		}
		comment, err := h.service.AddComment(r.Context(), body.QuizID, body.UserID, body.Text)
		if err != nil {
			h.respondError(w, err)
			return
		}
		h.writeJSON(w, comment)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *APIHandler) handleUpvote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid comment id", http.StatusBadRequest)
		return
	}
	comment, err := h.service.UpvoteComment(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, comment)
}

func (h *APIHandler) respondList(w http.ResponseWriter, list interface{}, err error) {
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, list)
}

func (h *APIHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrQuizNotFound),
		errors.Is(err, domain.ErrResultNotFound),
		errors.Is(err, domain.ErrCommentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
