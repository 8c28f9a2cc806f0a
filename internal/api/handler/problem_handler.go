package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"codearena/internal/api/middleware"
	"codearena/internal/app/service"
	"codearena/internal/common"
)

type ProblemHandler struct {
	problemService    *service.ProblemService
	submissionService *service.SubmissionService
}

func NewProblemHandler(problemService *service.ProblemService, submissionService *service.SubmissionService) *ProblemHandler {
	return &ProblemHandler{problemService: problemService, submissionService: submissionService}
}

func (h *ProblemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/{problemID}", h.GetProblem)
	r.Post("/{problemID}/submit", h.SubmitDSA)
}

func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	problemID, ok := pathID(r, "problemID")
	if !ok {
		common.RespondWithServiceError(w, common.ErrProblemNotFound)
		return
	}

	detail, err := h.problemService.GetProblem(r.Context(), problemID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, detail)
}

func (h *ProblemHandler) SubmitDSA(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		common.RespondWithServiceError(w, common.ErrUnauthorized)
		return
	}
	problemID, ok := pathID(r, "problemID")
	if !ok {
		common.RespondWithServiceError(w, common.ErrProblemNotFound)
		return
	}

	var req service.SubmitDSARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithServiceError(w, common.ErrInvalidRequest)
		return
	}

	result, err := h.submissionService.SubmitDSA(r.Context(), userID, problemID, req)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusCreated, result)
}
