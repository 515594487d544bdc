package commands

import (
	"RestAPIFurb/internal/cli/repo"
	fsrepo "RestAPIFurb/internal/cli/repo/fs"
	"RestAPIFurb/internal/config"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"RestAPIFurb/internal/cli/api"
)

// newTokenStore: хранилище токена по пути из конфига; подменяется в тестах.
var newTokenStore = func(cfg *config.Config) repo.TokenStore {
	return fsrepo.NewAuthFSStore(cfg.TokenFile)
}

// comanda: ответ сервера по комманде.
type comanda struct {
	ID              int64     `json:"id"`
	IDUsuario       int64     `json:"idUsuario"`
	NomeUsuario     string    `json:"nomeUsuario"`
	TelefoneUsuario string    `json:"telefoneUsuario"`
	Produtos        []produto `json:"produtos"`
}

type produto struct {
	ID        int64   `json:"id,omitempty"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	ComandaID int64   `json:"comandaId,omitempty"`
}

// serverError: ошибка с кодом и текстом из тела ответа.
func serverError(resp *http.Response, body []byte) error {
	return fmt.Errorf("server status %d: %s", resp.StatusCode, api.ErrorMessage(body))
}

func decodeComanda(body []byte) (*comanda, error) {
	var c comanda
	if err := json.Unmarshal(body, &c); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &c, nil
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func printComanda(w io.Writer, c *comanda) {
	var total float64
	fmt.Fprintf(w, "Comanda #%d\n", c.ID)
	fmt.Fprintf(w, "  usuario:  %d %s (%s)\n", c.IDUsuario, c.NomeUsuario, c.TelefoneUsuario)
	if len(c.Produtos) == 0 {
		fmt.Fprintln(w, "  produtos: -")
		return
	}
	fmt.Fprintln(w, "  produtos:")
	for _, p := range c.Produtos {
		fmt.Fprintf(w, "    - #%d  %-24s %8.2f\n", p.ID, p.Nome, p.Preco)
		total += p.Preco
	}
	fmt.Fprintf(w, "  total:    %.2f\n", total)
}
