package commands

import (
	"RestAPIFurb/internal/config"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"RestAPIFurb/internal/cli/api"
)

type comandaRequest struct {
	IDUsuario       *int64    `json:"idUsuario,omitempty"`
	NomeUsuario     string    `json:"nomeUsuario,omitempty"`
	TelefoneUsuario string    `json:"telefoneUsuario,omitempty"`
	Produtos        []produto `json:"produtos,omitempty"`
}

type comandaAddCmd struct{}

func (comandaAddCmd) Name() string        { return "comanda-add" }
func (comandaAddCmd) Description() string { return "Создать комманду (позиции как nome=preco)" }
func (comandaAddCmd) Usage() string {
	return "comanda-add <idUsuario> <nome> <telefone> [produto=preco ...]"
}

func (comandaAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	idUsuario, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	req := comandaRequest{IDUsuario: &idUsuario, NomeUsuario: args[1], TelefoneUsuario: args[2]}
	for _, a := range args[3:] {
		p, err := parseProduto(a)
		if err != nil {
			return err
		}
		req.Produtos = append(req.Produtos, p)
	}

	resp, body, err := api.PostJSON(ctx, cfg.APIURL("/comandas"), req, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return serverError(resp, body)
	}
	c, err := decodeComanda(body)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printComanda(Out, c)
	return nil
}

// parseProduto разбирает "nome=preco"; имя может само содержать '='.
func parseProduto(s string) (produto, error) {
	i := strings.LastIndex(s, "=")
	if i <= 0 || i == len(s)-1 {
		return produto{}, fmt.Errorf("%w: produto must be nome=preco, got %q", ErrUsage, s)
	}
	preco, err := strconv.ParseFloat(strings.Replace(s[i+1:], ",", ".", 1), 64)
	if err != nil {
		return produto{}, fmt.Errorf("%w: bad preco in %q", ErrUsage, s)
	}
	return produto{Nome: s[:i], Preco: preco}, nil
}

type produtoAddCmd struct{}

func (produtoAddCmd) Name() string        { return "produto-add" }
func (produtoAddCmd) Description() string { return "Добавить позицию в существующую комманду" }
func (produtoAddCmd) Usage() string       { return "produto-add <comandaId> <nome> <preco>" }

func (produtoAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	id, ok := parseID(args[0])
	if !ok {
		return ErrUsage
	}
	p, err := parseProduto(args[1] + "=" + args[2])
	if err != nil {
		return err
	}
	// PUT сливает позиции: существующие остаются, новая добавляется
	req := comandaRequest{Produtos: []produto{p}}
	resp, body, err := api.DoJSON(ctx, http.MethodPut, cfg.APIURL(fmt.Sprintf("/comandas/%d", id)), req, "")
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

func init() {
	RegisterCmd(comandaAddCmd{})
	RegisterCmd(produtoAddCmd{})
}
