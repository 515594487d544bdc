package service

import (
	"RestAPIFurb/internal/model"
	"RestAPIFurb/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ComandaService проверяет входные данные и делегирует репозиторию.
type ComandaService struct {
	repo   repo.ComandaRepository
	logger *zap.SugaredLogger
}

func NewComandaService(r repo.ComandaRepository, logger *zap.SugaredLogger) *ComandaService {
	return &ComandaService{repo: r, logger: logger}
}

// Create создаёт комманду вместе с позициями.
func (s *ComandaService) Create(ctx context.Context, in model.ComandaInput) (*model.Comanda, error) {
	c, err := newComanda(in)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		s.logger.Errorw("create comanda failed", "id_usuario", c.IDUsuario, "error", err)
		return nil, s.translate(err)
	}
	return created, nil
}

// Get возвращает комманду по id.
func (s *ComandaService) Get(ctx context.Context, id int64) (*model.Comanda, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warnw("get comanda failed", "id", id, "error", err)
		return nil, s.translate(err)
	}
	return c, nil
}

// List возвращает все комманды; пустой результат: не ошибка.
func (s *ComandaService) List(ctx context.Context) ([]model.Comanda, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Errorw("list comandas failed", "error", err)
		return nil, err
	}
	if list == nil {
		list = []model.Comanda{}
	}
	return list, nil
}

// Update частично обновляет заголовок и сливает позиции.
func (s *ComandaService) Update(ctx context.Context, id int64, in model.ComandaInput) (*model.Comanda, error) {
	if err := validatePatch(in); err != nil {
		return nil, err
	}
	c, err := s.repo.Update(ctx, id, in)
	if err != nil {
		s.logger.Errorw("update comanda failed", "id", id, "error", err)
		return nil, s.translate(err)
	}
	return c, nil
}

// Delete удаляет комманду и её позиции.
func (s *ComandaService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warnw("delete comanda failed", "id", id, "error", err)
		return s.translate(err)
	}
	return nil
}

func (s *ComandaService) translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrComandaNotFound
	case errors.Is(err, repo.ErrProdutoIncomplete), errors.Is(err, repo.ErrProdutoDuplicateID):
		return fmt.Errorf("%w: %v", ErrValidation, err)
	default:
		return err
	}
}

// newComanda собирает модель из входа; все поля заголовка и позиций обязательны.
func newComanda(in model.ComandaInput) (*model.Comanda, error) {
	var missing []string
	if in.IDUsuario == nil {
		missing = append(missing, "idUsuario")
	}
	if isBlank(in.NomeUsuario) {
		missing = append(missing, "nomeUsuario")
	}
	if isBlank(in.TelefoneUsuario) {
		missing = append(missing, "telefoneUsuario")
	}
	for i, p := range in.Produtos {
		if isBlank(p.Nome) {
			missing = append(missing, fmt.Sprintf("produtos[%d].nome", i))
		}
		if p.Preco == nil {
			missing = append(missing, fmt.Sprintf("produtos[%d].preco", i))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}

	c := &model.Comanda{
		IDUsuario:       *in.IDUsuario,
		NomeUsuario:     *in.NomeUsuario,
		TelefoneUsuario: *in.TelefoneUsuario,
		Produtos:        make([]model.Produto, 0, len(in.Produtos)),
	}
	for _, p := range in.Produtos {
		item := model.Produto{Nome: *p.Nome, Preco: *p.Preco}
		if p.ID != nil {
			item.ID = *p.ID
		}
		c.Produtos = append(c.Produtos, item)
	}
	return c, nil
}

// validatePatch запрещает затирать обязательные поля пустыми строками.
func validatePatch(in model.ComandaInput) error {
	var bad []string
	if in.NomeUsuario != nil && isBlank(in.NomeUsuario) {
		bad = append(bad, "nomeUsuario")
	}
	if in.TelefoneUsuario != nil && isBlank(in.TelefoneUsuario) {
		bad = append(bad, "telefoneUsuario")
	}
	for i, p := range in.Produtos {
		if p.Nome != nil && isBlank(p.Nome) {
			bad = append(bad, fmt.Sprintf("produtos[%d].nome", i))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: blank %s", ErrValidation, strings.Join(bad, ", "))
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
