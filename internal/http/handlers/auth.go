package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/hongminglow/all-in-forms/internal/auth"
	"github.com/hongminglow/all-in-forms/internal/forms"
	"github.com/hongminglow/all-in-forms/internal/http/respond"
	"github.com/hongminglow/all-in-forms/internal/logger"
	"github.com/hongminglow/all-in-forms/internal/metrics"
	"github.com/hongminglow/all-in-forms/internal/models/dto"
)

// AuthHandler serves the registration and login forms.
type AuthHandler struct {
	validator *forms.Validator
	tokens    *auth.TokenManager
	metrics   *metrics.Recorder
}

// NewAuthHandler constructs the handler. recorder may be nil.
func NewAuthHandler(validator *forms.Validator, tokens *auth.TokenManager, recorder *metrics.Recorder) *AuthHandler {
	return &AuthHandler{validator: validator, tokens: tokens, metrics: recorder}
}

// Register attaches auth routes to the router.
func (h *AuthHandler) Register(r *mux.Router) {
	r.HandleFunc("/register", h.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/login", h.handleLogin).Methods(http.MethodPost)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	result, err := h.validator.ValidateRegistration(r.Context(), req.Credentials())
	if err != nil {
		logger.Get(r.Context()).Error("registration failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to store user")
		return
	}
	h.metrics.Observe(metrics.FormRegistration, result)

	if !result.OK() {
		respondFailure(w, result)
		return
	}
	respond.JSON(w, http.StatusCreated, result.Message, dto.RegisteredUser{
		Username: result.Record.Username,
		Email:    result.Record.Email,
	})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	result, err := h.validator.ValidateLogin(r.Context(), req.Attempt())
	if err != nil {
		logger.Get(r.Context()).Error("login failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	h.metrics.Observe(metrics.FormLogin, result)

	if !result.OK() {
		respondFailure(w, result)
		return
	}

	token, err := h.tokens.Generate(forms.NormalizeUsername(req.Username), req.Persist)
	if err != nil {
		logger.Get(r.Context()).Error("generate token", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, http.StatusOK, result.Message, dto.LoginResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		Persisted: token.Persisted,
	})
}

// respondFailure reports a rule failure with the offending field so the client can focus it.
func respondFailure(w http.ResponseWriter, result forms.Result) {
	respond.JSON(w, http.StatusUnprocessableEntity, result.Message, dto.FieldError{Field: result.Field})
}
