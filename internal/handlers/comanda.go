package handlers

import (
	"RestAPIFurb/internal/model"
	"RestAPIFurb/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgCreateFailed = "Erro ao criar comanda"
	msgNotFound     = "Comanda não encontrada"
	msgListFailed   = "Nenhuma comanda encontrada"
	msgUpdateFailed = "Erro ao atualizar comanda"
	msgDeleteFailed = "Erro ao remover comanda"
	msgDeleted      = "Comanda removida"
)

// ComandaHandler CRUD комманд.
type ComandaHandler struct {
	ComandaService *service.ComandaService
	Logger         *zap.SugaredLogger
}

// NewComandaHandler создаёт хендлер комманд
func NewComandaHandler(comandaService *service.ComandaService, logger *zap.SugaredLogger) *ComandaHandler {
	return &ComandaHandler{ComandaService: comandaService, Logger: logger}
}

// ComandaRequest тело POST и PUT. Отсутствующее поле остаётся nil.
type ComandaRequest struct {
	IDUsuario       *int64           `json:"idUsuario"`
	NomeUsuario     *string          `json:"nomeUsuario"`
	TelefoneUsuario *string          `json:"telefoneUsuario"`
	Produtos        []ProdutoRequest `json:"produtos"`
}

type ProdutoRequest struct {
	ID    *int64   `json:"id"`
	Nome  *string  `json:"nome"`
	Preco *float64 `json:"preco"`
}

// Ответы
type ComandaDTO struct {
	ID              int64        `json:"id"`
	IDUsuario       int64        `json:"idUsuario"`
	NomeUsuario     string       `json:"nomeUsuario"`
	TelefoneUsuario string       `json:"telefoneUsuario"`
	Produtos        []ProdutoDTO `json:"produtos"`
}

type ProdutoDTO struct {
	ID        int64   `json:"id"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	ComandaID int64   `json:"comandaId"`
}

type successText struct {
	Text string `json:"text"`
}

type deleteResponse struct {
	Success successText `json:"success"`
}

func (req ComandaRequest) toInput() model.ComandaInput {
	in := model.ComandaInput{
		IDUsuario:       req.IDUsuario,
		NomeUsuario:     req.NomeUsuario,
		TelefoneUsuario: req.TelefoneUsuario,
	}
	for _, p := range req.Produtos {
		in.Produtos = append(in.Produtos, model.ProdutoInput{ID: p.ID, Nome: p.Nome, Preco: p.Preco})
	}
	return in
}

func toComandaDTO(c *model.Comanda) ComandaDTO {
	dto := ComandaDTO{
		ID:              c.ID,
		IDUsuario:       c.IDUsuario,
		NomeUsuario:     c.NomeUsuario,
		TelefoneUsuario: c.TelefoneUsuario,
		Produtos:        make([]ProdutoDTO, 0, len(c.Produtos)),
	}
	for _, p := range c.Produtos {
		dto.Produtos = append(dto.Produtos, ProdutoDTO{ID: p.ID, Nome: p.Nome, Preco: p.Preco, ComandaID: p.ComandaID})
	}
	return dto
}

// Create POST /comandas
func (h *ComandaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ComandaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, msgCreateFailed)
		return
	}

	c, err := h.ComandaService.Create(r.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, msgCreateFailed)
			return
		}
		writeError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}
	writeJSON(w, http.StatusCreated, toComandaDTO(c))
}

// List GET /comandas
func (h *ComandaHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.ComandaService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgListFailed)
		return
	}
	out := make([]ComandaDTO, 0, len(list))
	for i := range list {
		out = append(out, toComandaDTO(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get GET /comandas/{id}
func (h *ComandaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := comandaID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	c, err := h.ComandaService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrComandaNotFound) {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, msgNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toComandaDTO(c))
}

// Update PUT /comandas/{id}; любая ошибка: 400
func (h *ComandaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := comandaID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msgUpdateFailed)
		return
	}
	var req ComandaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "id", id, "error", err)
		writeError(w, http.StatusBadRequest, msgUpdateFailed)
		return
	}

	c, err := h.ComandaService.Update(r.Context(), id, req.toInput())
	if err != nil {
		writeError(w, http.StatusBadRequest, msgUpdateFailed)
		return
	}
	writeJSON(w, http.StatusOK, toComandaDTO(c))
}

// Delete DELETE /comandas/{id}
func (h *ComandaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := comandaID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err := h.ComandaService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrComandaNotFound) {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, msgDeleteFailed)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Success: successText{Text: msgDeleted}})
}

func comandaID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
