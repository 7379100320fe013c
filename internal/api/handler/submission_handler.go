package handler

import (
	"net/http"

	"judge_api/internal/app/service"
	"judge_api/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
	log               logrus.FieldLogger
}

func NewSubmissionHandler(ss *service.SubmissionService, log logrus.FieldLogger) *SubmissionHandler {
	return &SubmissionHandler{submissionService: ss, log: log}
}

func (h *SubmissionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listSubmissions)
	r.Get("/"+IDPattern, h.getSubmission)
}

func (h *SubmissionHandler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.submissionService.ListSubmissions(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, submissions)
}

func (h *SubmissionHandler) getSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	submission, err := h.submissionService.GetSubmission(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, submission)
}
