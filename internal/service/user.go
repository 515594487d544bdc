package service

import (
	"RestAPIFurb/internal/auth"
	"RestAPIFurb/internal/model"
	"RestAPIFurb/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService регистрация, вход и проверка токенов.
type UserService struct {
	repo   repo.UserRepository
	tokens *auth.TokenManager
	logger *zap.SugaredLogger
}

func NewUserService(r repo.UserRepository, tokens *auth.TokenManager, logger *zap.SugaredLogger) *UserService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &UserService{repo: r, tokens: tokens, logger: logger}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Errorw("register: lookup user failed", "username", username, "error", err)
		return nil, err
	}
	if existing != nil {
		s.logger.Warnw("register: username taken", "username", username)
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Errorw("register: hash password failed", "username", username, "error", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &model.User{Username: username, Password: string(hash)})
	if err != nil {
		// гонка двух регистраций: уникальный индекс сработал после проверки
		if errors.Is(err, repo.ErrDuplicate) {
			s.logger.Warnw("register: username taken", "username", username)
			return nil, ErrUsernameTaken
		}
		s.logger.Errorw("register: create user failed", "username", username, "error", err)
		return nil, err
	}
	return user, nil
}

// Login проверяет пароль и выпускает токен.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Errorw("login: lookup user failed", "username", username, "error", err)
		return "", err
	}
	if user == nil {
		s.logger.Warnw("login: unknown user", "username", username)
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warnw("login: wrong password", "username", username)
		return "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.logger.Errorw("login: issue token failed", "user_id", user.ID, "error", err)
		return "", err
	}
	return token, nil
}

// VerifyToken проверяет токен; ошибка оборачивает auth.ErrUnauthorized.
func (s *UserService) VerifyToken(token string) (*auth.Claims, error) {
	return s.tokens.Verify(token)
}
