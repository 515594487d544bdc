package handlers_test

import (
	"RestAPIFurb/internal/auth"
	"RestAPIFurb/internal/config"
	"RestAPIFurb/internal/handlers"
	"RestAPIFurb/internal/metrics"
	"RestAPIFurb/internal/model"
	"RestAPIFurb/internal/repo"
	"RestAPIFurb/internal/service"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSecret = "test-secret"
	basePath   = "/RestAPIFurb"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: testSecret, TokenTTL: time.Minute, BasePath: basePath}
}

// роутер с мок-репозиторием пользователей и настоящей sqlite для комманд
func newTestRouter(t *testing.T, ur repo.UserRepository) http.Handler {
	t.Helper()
	cfg := testConfig()
	logger := zap.NewNop().Sugar()

	db, err := repo.InitDB(repo.DBOptions{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "handlers.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.CloseDB(db) })

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	userSvc := service.NewUserService(ur, tokens, logger)
	comandaSvc := service.NewComandaService(repo.NewComandaRepository(db), logger)

	h := handlers.NewHandler(userSvc, comandaSvc, metrics.New(), logger, cfg)
	return h.Router
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
