package commands

import (
	"RestAPIFurb/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"RestAPIFurb/internal/cli/api"
)

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Проверить токен через защищённый маршрут" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, err := newTokenStore(cfg).Load()
	if err != nil {
		return err
	}
	resp, body, err := api.DoJSON(ctx, http.MethodGet, cfg.APIURL("/users/protected"), nil, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}
	var out struct {
		Message string `json:"message"`
		User    struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
			Exp      int64  `json:"exp"`
		} `json:"user"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, out.Message)
	fmt.Fprintf(Out, "  id:       %d\n", out.User.ID)
	fmt.Fprintf(Out, "  username: %s\n", out.User.Username)
	if out.User.Exp > 0 {
		fmt.Fprintf(Out, "  expires:  %s\n", time.Unix(out.User.Exp, 0).UTC().Format(time.RFC3339))
	}
	return nil
}

func init() { RegisterCmd(whoamiCmd{}) }
