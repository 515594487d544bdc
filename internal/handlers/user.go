package handlers

import (
	"RestAPIFurb/internal/middleware"
	"RestAPIFurb/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler регистрация, вход и защищённый маршрут.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

// NewUserHandler создаёт хендлер пользователей
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userMessage struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type protectedResponse struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

// Register регистрация пользователя
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	const failMsg = "Erro ao registrar o usuário"

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, userMessage{Message: failMsg, Error: "invalid request body"})
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrValidation):
		writeJSON(w, http.StatusBadRequest, userMessage{Message: failMsg, Error: err.Error()})
		return
	case errors.Is(err, service.ErrUsernameTaken):
		writeJSON(w, http.StatusConflict, userMessage{Message: failMsg, Error: err.Error()})
		return
	default:
		h.Logger.Errorw("Register: service error", "username", req.Username, "error", err)
		writeJSON(w, http.StatusInternalServerError, userMessage{Message: failMsg, Error: err.Error()})
		return
	}

	h.Logger.Infow("user registered", "user_id", user.ID, "username", user.Username)
	writeJSON(w, http.StatusCreated, registerResponse{Message: "Usuário registrado com sucesso!", UserID: user.ID})
}

// Login вход, в ответе токен
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	const failMsg = "Erro ao fazer login"

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeJSON(w, http.StatusInternalServerError, userMessage{Message: failMsg, Error: "invalid request body"})
		return
	}

	token, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// любые ошибки входа, включая неверный пароль, отдаются как 500
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.Logger.Warnw("Login: invalid credentials", "username", req.Username)
		} else {
			h.Logger.Errorw("Login: service error", "username", req.Username, "error", err)
		}
		writeJSON(w, http.StatusInternalServerError, userMessage{Message: failMsg, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

// Protected отвечает только авторизованным, claims кладёт WithAuth
func (h *UserHandler) Protected(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, userMessage{Message: "Token inválido"})
		return
	}
	writeJSON(w, http.StatusOK, protectedResponse{
		Message: "Você acessou uma rota protegida!",
		User:    claims,
	})
}
