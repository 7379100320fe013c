package handler

import (
	"errors"
	"net/http"

	"judge_api/internal/app/service"
	"judge_api/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authService *service.AuthService
	log         logrus.FieldLogger
}

func NewAuthHandler(authService *service.AuthService, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form body")
		return
	}
	req := service.RegisterRequest{
		Username: r.PostForm.Get("username"),
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}
	if err := validate.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if _, err := h.authService.Register(r.Context(), req); err != nil {
		// Duplicate usernames are a store failure like any other here.
		if errors.Is(err, common.ErrBadRequest) {
			common.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalError(w, r, h.log, err)
		return
	}
	common.RespondWithStatus(w, http.StatusCreated)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form body")
		return
	}
	req := service.LoginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}
	if err := validate.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if _, err := h.authService.Login(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, common.ErrUnauthorized):
			common.RespondWithStatus(w, http.StatusUnauthorized)
		case errors.Is(err, common.ErrBadRequest):
			common.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			internalError(w, r, h.log, err)
		}
		return
	}
	common.RespondWithStatus(w, http.StatusOK)
}
