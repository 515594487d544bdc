package commands

import (
	"RestAPIFurb/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"RestAPIFurb/internal/cli/api"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Войти и сохранить токен" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	resp, body, err := api.PostJSON(ctx, cfg.APIURL("/users/login"), credentials{Username: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		// сервер отвечает 500 и на неверный пароль
		return serverError(resp, body)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if out.Token == "" {
		return errors.New("no token in response")
	}
	if err := newTokenStore(cfg).Save(out.Token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Удалить сохранённый токен" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := newTokenStore(cfg).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}
