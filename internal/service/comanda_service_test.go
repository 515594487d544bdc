package service

import (
	"RestAPIFurb/internal/model"
	"RestAPIFurb/internal/repo"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type mockComandaRepo struct{ mock.Mock }

func (m *mockComandaRepo) Create(ctx context.Context, c *model.Comanda) (*model.Comanda, error) {
	args := m.Called(ctx, c)
	if v, ok := args.Get(0).(*model.Comanda); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockComandaRepo) GetByID(ctx context.Context, id int64) (*model.Comanda, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Comanda); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockComandaRepo) ListAll(ctx context.Context) ([]model.Comanda, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Comanda); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockComandaRepo) Update(ctx context.Context, id int64, in model.ComandaInput) (*model.Comanda, error) {
	args := m.Called(ctx, id, in)
	if v, ok := args.Get(0).(*model.Comanda); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockComandaRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ComandaRepository = (*mockComandaRepo)(nil)

// хелперы
func ptrInt64(v int64) *int64     { return &v }
func ptrStr(s string) *string     { return &s }
func ptrFloat(f float64) *float64 { return &f }

func validInput() model.ComandaInput {
	return model.ComandaInput{
		IDUsuario:       ptrInt64(1),
		NomeUsuario:     ptrStr("João"),
		TelefoneUsuario: ptrStr("478888888"),
		Produtos:        []model.ProdutoInput{{ID: ptrInt64(1), Nome: ptrStr("X-Salada"), Preco: ptrFloat(30)}},
	}
}

func TestComandaService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("ok maps input to model", func(t *testing.T) {
		r := new(mockComandaRepo)
		svc := NewComandaService(r, zap.NewNop().Sugar())
		stored := &model.Comanda{ID: 3, IDUsuario: 1, NomeUsuario: "João", TelefoneUsuario: "478888888"}
		r.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Comanda) bool {
			return c.IDUsuario == 1 && c.NomeUsuario == "João" && len(c.Produtos) == 1 &&
				c.Produtos[0].ID == 1 && c.Produtos[0].Preco == 30
		})).Return(stored, nil).Once()

		got, err := svc.Create(ctx, validInput())
		assert.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		r.AssertExpectations(t)
	})

	t.Run("missing header fields", func(t *testing.T) {
		r := new(mockComandaRepo)
		svc := NewComandaService(r, zap.NewNop().Sugar())
		in := validInput()
		in.NomeUsuario = nil
		in.TelefoneUsuario = ptrStr(" ")

		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "nomeUsuario")
		assert.Contains(t, err.Error(), "telefoneUsuario")
		r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("produto without preco", func(t *testing.T) {
		r := new(mockComandaRepo)
		svc := NewComandaService(r, zap.NewNop().Sugar())
		in := validInput()
		in.Produtos = []model.ProdutoInput{{Nome: ptrStr("X")}}

		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "produtos[0].preco")
	})

	t.Run("storage error passthrough", func(t *testing.T) {
		r := new(mockComandaRepo)
		svc := NewComandaService(r, zap.NewNop().Sugar())
		dbErr := errors.New("disk full")
		r.On("Create", mock.Anything, mock.Anything).Return(nil, dbErr).Once()

		_, err := svc.Create(ctx, validInput())
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestComandaService_GetAndDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	r := new(mockComandaRepo)
	svc := NewComandaService(r, zap.NewNop().Sugar())

	r.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound).Once()
	_, err := svc.Get(ctx, 9)
	assert.ErrorIs(t, err, ErrComandaNotFound)

	r.On("Delete", mock.Anything, int64(9)).Return(gorm.ErrRecordNotFound).Once()
	assert.ErrorIs(t, svc.Delete(ctx, 9), ErrComandaNotFound)

	r.On("Delete", mock.Anything, int64(10)).Return(nil).Once()
	assert.NoError(t, svc.Delete(ctx, 10))
	r.AssertExpectations(t)
}

func TestComandaService_List(t *testing.T) {
	ctx := context.Background()
	r := new(mockComandaRepo)
	svc := NewComandaService(r, zap.NewNop().Sugar())

	// nil от репозитория превращается в пустой список
	r.On("ListAll", mock.Anything).Return(nil, nil).Once()
	list, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	r.On("ListAll", mock.Anything).Return(nil, errors.New("db")).Once()
	_, err = svc.List(ctx)
	assert.Error(t, err)
}

func TestComandaService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("passes patch through", func(t *testing.T) {
		r := new(mockComandaRepo)
		svc := NewComandaService(r, zap.NewNop().Sugar())
		patch := model.ComandaInput{NomeUsuario: ptrStr("Maria")}
		r.On("Update", mock.Anything, int64(1), patch).Return(&model.Comanda{ID: 1, NomeUsuario: "Maria"}, nil).Once()

		got, err := svc.Update(ctx, 1, patch)
		assert.NoError(t, err)
		assert.Equal(t, "Maria", got.NomeUsuario)
		r.AssertExpectations(t)
	})

	t.Run("blank field rejected before repo", func(t *testing.T) {
		r := new(mockComandaRepo)
		svc := NewComandaService(r, zap.NewNop().Sugar())

		_, err := svc.Update(ctx, 1, model.ComandaInput{NomeUsuario: ptrStr("")})
		assert.ErrorIs(t, err, ErrValidation)
		r.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error translation", func(t *testing.T) {
		r := new(mockComandaRepo)
		svc := NewComandaService(r, zap.NewNop().Sugar())
		r.On("Update", mock.Anything, int64(404), mock.Anything).Return(nil, gorm.ErrRecordNotFound).Once()
		r.On("Update", mock.Anything, int64(2), mock.Anything).Return(nil, repo.ErrProdutoIncomplete).Once()
		r.On("Update", mock.Anything, int64(3), mock.Anything).Return(nil, repo.ErrProdutoDuplicateID).Once()

		_, err := svc.Update(ctx, 404, model.ComandaInput{})
		assert.ErrorIs(t, err, ErrComandaNotFound)

		_, err = svc.Update(ctx, 2, model.ComandaInput{Produtos: []model.ProdutoInput{{Nome: ptrStr("x")}}})
		assert.ErrorIs(t, err, ErrValidation)

		_, err = svc.Update(ctx, 3, model.ComandaInput{Produtos: []model.ProdutoInput{{ID: ptrInt64(1)}, {ID: ptrInt64(1)}}})
		assert.ErrorIs(t, err, ErrValidation)
	})
}
