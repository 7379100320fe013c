package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"judge_api/internal/app/service"
	"judge_api/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// maxSubmissionBytes bounds the JSON body of a submission.
const maxSubmissionBytes = 1 << 20

type ProblemHandler struct {
	problemService    *service.ProblemService
	submissionService *service.SubmissionService
	log               logrus.FieldLogger
}

func NewProblemHandler(ps *service.ProblemService, ss *service.SubmissionService, log logrus.FieldLogger) *ProblemHandler {
	return &ProblemHandler{problemService: ps, submissionService: ss, log: log}
}

func (h *ProblemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listProblems)              // GET /problems
	r.Get("/"+IDPattern, h.getProblem)      // GET /problems/1
	r.Post("/"+IDPattern, h.submitSolution) // POST /problems/1
}

func (h *ProblemHandler) listProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := h.problemService.ListProblems(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problems)
}

func (h *ProblemHandler) getProblem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	problem, err := h.problemService.GetProblem(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problem)
}

func (h *ProblemHandler) submitSolution(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	var req service.CreateSubmissionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSubmissionBytes)).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if _, err := h.submissionService.CreateSubmission(r.Context(), id, req); err != nil {
		// An unknown problem is a failed insert, reported like any store error.
		if errors.Is(err, common.ErrBadRequest) {
			common.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalError(w, r, h.log, err)
		return
	}
	common.RespondWithStatus(w, http.StatusOK)
}
