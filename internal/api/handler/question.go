package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xaca/triviaboard-go/internal/api/apierr"
	"github.com/xaca/triviaboard-go/internal/api/response"
	"github.com/xaca/triviaboard-go/internal/services/question"
)

// QuestionHandler serves the question catalog
type QuestionHandler struct {
	questions *question.Service
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(questions *question.Service) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// List handles GET /questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.questions.All()
	out := make([]response.Question, len(all))
	for i, q := range all {
		out[i] = response.QuestionFromCatalog(q)
	}

	response.JSON(w, http.StatusOK, response.QuestionList{
		Categories:  h.questions.Categories(),
		PointValues: h.questions.PointValues(),
		Questions:   out,
	})
}

// Get handles GET /questions/{category}/{points}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	points, err := strconv.Atoi(vars["points"])
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Points must be an integer"))
		return
	}

	q, err := h.questions.Lookup(vars["category"], points)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.QuestionFromCatalog(q))
}
