package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"codearena/internal/api/middleware"
	"codearena/internal/app/service"
	"codearena/internal/common"
)

type ContestHandler struct {
	contestService     *service.ContestService
	problemService     *service.ProblemService
	submissionService  *service.SubmissionService
	leaderboardService *service.LeaderboardService
}

func NewContestHandler(
	contestService *service.ContestService,
	problemService *service.ProblemService,
	submissionService *service.SubmissionService,
	leaderboardService *service.LeaderboardService,
) *ContestHandler {
	return &ContestHandler{
		contestService:     contestService,
		problemService:     problemService,
		submissionService:  submissionService,
		leaderboardService: leaderboardService,
	}
}

func (h *ContestHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.CreateContest)
	r.Get("/{contestID}", h.GetContest)
	r.Post("/{contestID}/mcq", h.AddQuestion)
	r.Post("/{contestID}/dsa", h.AddProblem)
	r.Post("/{contestID}/mcq/{questionID}/submit", h.SubmitMCQ)
	r.Get("/{contestID}/leaderboard", h.GetLeaderboard)
}

// pathID parses a numeric path parameter. A malformed id is reported as the
// resource not existing, not as a bad request.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *ContestHandler) CreateContest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	role, okRole := middleware.UserRoleFromContext(r.Context())
	if !ok || !okRole {
		common.RespondWithServiceError(w, common.ErrUnauthorized)
		return
	}

	var req service.CreateContestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithServiceError(w, common.ErrInvalidRequest)
		return
	}

	contest, err := h.contestService.CreateContest(r.Context(), userID, role, req)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusCreated, contest)
}

func (h *ContestHandler) GetContest(w http.ResponseWriter, r *http.Request) {
	contestID, ok := pathID(r, "contestID")
	if !ok {
		common.RespondWithServiceError(w, common.ErrContestNotFound)
		return
	}

	detail, err := h.contestService.GetContest(r.Context(), contestID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, detail)
}

func (h *ContestHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		common.RespondWithServiceError(w, common.ErrUnauthorized)
		return
	}
	contestID, ok := pathID(r, "contestID")
	if !ok {
		common.RespondWithServiceError(w, common.ErrContestNotFound)
		return
	}

	var req service.AddQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithServiceError(w, common.ErrInvalidRequest)
		return
	}

	question, err := h.contestService.AddQuestion(r.Context(), userID, contestID, req)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusCreated, question)
}

func (h *ContestHandler) AddProblem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		common.RespondWithServiceError(w, common.ErrUnauthorized)
		return
	}
	contestID, ok := pathID(r, "contestID")
	if !ok {
		common.RespondWithServiceError(w, common.ErrContestNotFound)
		return
	}

	var req service.CreateProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithServiceError(w, common.ErrInvalidRequest)
		return
	}

	problem, err := h.problemService.CreateProblem(r.Context(), userID, contestID, req)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusCreated, problem)
}

func (h *ContestHandler) SubmitMCQ(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		common.RespondWithServiceError(w, common.ErrUnauthorized)
		return
	}
	contestID, ok := pathID(r, "contestID")
	if !ok {
		common.RespondWithServiceError(w, common.ErrContestNotFound)
		return
	}
	questionID, ok := pathID(r, "questionID")
	if !ok {
		common.RespondWithServiceError(w, common.ErrQuestionNotFound)
		return
	}

	var req service.SubmitMCQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithServiceError(w, common.ErrInvalidRequest)
		return
	}

	result, err := h.submissionService.SubmitMCQ(r.Context(), userID, contestID, questionID, req)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusCreated, result)
}

func (h *ContestHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	contestID, ok := pathID(r, "contestID")
	if !ok {
		common.RespondWithServiceError(w, common.ErrContestNotFound)
		return
	}

	entries, err := h.leaderboardService.GetLeaderboard(r.Context(), contestID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	common.RespondWithData(w, http.StatusOK, entries)
}
