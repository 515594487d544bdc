package commands

import (
	"RestAPIFurb/internal/auth"
	"RestAPIFurb/internal/config"
	"RestAPIFurb/internal/handlers"
	"RestAPIFurb/internal/repo"
	"RestAPIFurb/internal/service"
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

// перехват вывода на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// testConfig конфиг клиента с токеном во временном каталоге
func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL: serverURL,
		BasePath:  "/RestAPIFurb",
		TokenFile: filepath.Join(t.TempDir(), "auth_token"),
	}
}

// startServer поднимает настоящий API поверх временной sqlite.
func startServer(t *testing.T) *config.Config {
	t.Helper()
	db, err := repo.InitDB(repo.DBOptions{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "cli.db")})
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { _ = repo.CloseDB(db) })

	logger := zap.NewNop().Sugar()
	srvCfg := &config.Config{BasePath: "/RestAPIFurb"}
	userSvc := service.NewUserService(repo.NewUserRepository(db), auth.NewTokenManager("cli-secret", time.Minute), logger)
	comandaSvc := service.NewComandaService(repo.NewComandaRepository(db), logger)
	h := handlers.NewHandler(userSvc, comandaSvc, nil, logger, srvCfg)

	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)
	return testConfig(t, ts.URL)
}
