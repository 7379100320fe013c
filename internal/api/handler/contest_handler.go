package handler

import (
	"net/http"

	"judge_api/internal/app/service"
	"judge_api/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type ContestHandler struct {
	contestService *service.ContestService
	log            logrus.FieldLogger
}

func NewContestHandler(cs *service.ContestService, log logrus.FieldLogger) *ContestHandler {
	return &ContestHandler{contestService: cs, log: log}
}

func (h *ContestHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listContests)         // GET /contests
	r.Get("/"+IDPattern, h.getContest) // GET /contests/3
}

func (h *ContestHandler) listContests(w http.ResponseWriter, r *http.Request) {
	contests, err := h.contestService.ListContests(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, contests)
}

func (h *ContestHandler) getContest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	contest, err := h.contestService.GetContest(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, contest)
}
