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

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Зарегистрировать пользователя" }
func (registerCmd) Usage() string       { return "register <username> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	resp, body, err := api.PostJSON(ctx, cfg.APIURL("/users/register"), credentials{Username: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusConflict:
		return errors.New("username already in use")
	default:
		return serverError(resp, body)
	}
	var out struct {
		Message string `json:"message"`
		UserID  int64  `json:"userId"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "%s (id=%d)\n", out.Message, out.UserID)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
