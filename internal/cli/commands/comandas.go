package commands

import (
	"RestAPIFurb/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"RestAPIFurb/internal/cli/api"
)

type comandasCmd struct{}

func (comandasCmd) Name() string        { return "comandas" }
func (comandasCmd) Description() string { return "Показать все комманды" }
func (comandasCmd) Usage() string       { return "comandas" }

func (comandasCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := api.DoJSON(ctx, http.MethodGet, cfg.APIURL("/comandas"), nil, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}
	var list []comanda
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет комманд")
		return nil
	}
	for _, c := range list {
		fmt.Fprintf(Out, "- #%d  %s (%s)  produtos=%d\n", c.ID, c.NomeUsuario, c.TelefoneUsuario, len(c.Produtos))
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

type comandaGetCmd struct{}

func (comandaGetCmd) Name() string        { return "comanda-get" }
func (comandaGetCmd) Description() string { return "Показать комманду с позициями" }
func (comandaGetCmd) Usage() string       { return "comanda-get <id>" }

func (comandaGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, ok := parseID(args[0])
	if !ok {
		return ErrUsage
	}
	resp, body, err := api.DoJSON(ctx, http.MethodGet, cfg.APIURL(fmt.Sprintf("/comandas/%d", id)), nil, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}
	c, err := decodeComanda(body)
	if err != nil {
		return err
	}
	printComanda(Out, c)
	return nil
}

type comandaRmCmd struct{}

func (comandaRmCmd) Name() string        { return "comanda-rm" }
func (comandaRmCmd) Description() string { return "Удалить комманду вместе с позициями" }
func (comandaRmCmd) Usage() string       { return "comanda-rm <id>" }

func (comandaRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, ok := parseID(args[0])
	if !ok {
		return ErrUsage
	}
	resp, body, err := api.DoJSON(ctx, http.MethodDelete, cfg.APIURL(fmt.Sprintf("/comandas/%d", id)), nil, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}
	var out struct {
		Success struct {
			Text string `json:"text"`
		} `json:"success"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, out.Success.Text)
	return nil
}

func init() {
	RegisterCmd(comandasCmd{})
	RegisterCmd(comandaGetCmd{})
	RegisterCmd(comandaRmCmd{})
}
