package fs

import (
	"RestAPIFurb/internal/cli/repo"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoToken токен ещё не сохранён (нужен login).
var ErrNoToken = errors.New("not logged in")

// AuthFSStore: файловое хранилище токена для CLI.
type AuthFSStore struct {
	Path string
}

var _ repo.TokenStore = AuthFSStore{}

// NewAuthFSStore хранит токен в файле path.
func NewAuthFSStore(path string) AuthFSStore {
	return AuthFSStore{Path: path}
}

// Save сохраняет auth‑токен в файл, каталог создаётся с правами 0700.
func (s AuthFSStore) Save(token string) error {
	if s.Path == "" {
		return errors.New("token file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load читает auth‑токен из файла.
func (s AuthFSStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	token := strings.TrimRight(string(b), "\r\n\t ")
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Clear удаляет файл токена; отсутствие файла не ошибка.
func (s AuthFSStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
