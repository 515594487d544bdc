package repo

import (
	"RestAPIFurb/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ComandaRepository контракт доступа к агрегату comanda + produtos.
// Все многошаговые операции выполняются в одной транзакции.
type ComandaRepository interface {
	// Create вставляет заголовок и все позиции; ошибка любой вставки откатывает всё.
	Create(ctx context.Context, c *model.Comanda) (*model.Comanda, error)

	// GetByID возвращает комманду с позициями; отсутствие → gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.Comanda, error)

	// ListAll возвращает все комманды с позициями. Пустая таблица: пустой срез, не ошибка.
	ListAll(ctx context.Context) ([]model.Comanda, error)

	// Update применяет частичное обновление заголовка и сливает позиции по id.
	// Позиции, не упомянутые во входе, не удаляются.
	Update(ctx context.Context, id int64, in model.ComandaInput) (*model.Comanda, error)

	// Delete удаляет позиции, затем заголовок.
	Delete(ctx context.Context, id int64) error
}

type comandaRepo struct {
	db *gorm.DB
}

// NewComandaRepository создаёт реализацию репозитория комманд.
func NewComandaRepository(db *gorm.DB) ComandaRepository {
	return &comandaRepo{db: db}
}

func (r *comandaRepo) Create(ctx context.Context, c *model.Comanda) (*model.Comanda, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		produtos := c.Produtos
		// ассоциации вставляем сами: gorm по умолчанию делает ON CONFLICT DO NOTHING,
		// а коллизия id позиции должна быть ошибкой
		if err := tx.Omit(clause.Associations).Create(c).Error; err != nil {
			return fmt.Errorf("insert comanda: %w", err)
		}
		// сначала позиции с явным id, потом генерируемые:
		// иначе сгенерированный id может занять id, переданный ниже по списку
		for _, explicit := range []bool{true, false} {
			for i := range produtos {
				if (produtos[i].ID != 0) != explicit {
					continue
				}
				produtos[i].ComandaID = c.ID
				if err := tx.Create(&produtos[i]).Error; err != nil {
					return fmt.Errorf("insert produto into comanda %d: %w", c.ID, wrapDuplicate(err))
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, c.ID)
}

func (r *comandaRepo) GetByID(ctx context.Context, id int64) (*model.Comanda, error) {
	return loadComanda(r.db.WithContext(ctx), id)
}

func (r *comandaRepo) ListAll(ctx context.Context) ([]model.Comanda, error) {
	list := make([]model.Comanda, 0)
	err := r.db.WithContext(ctx).
		Preload("Produtos", orderByID).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *comandaRepo) Update(ctx context.Context, id int64, in model.ComandaInput) (*model.Comanda, error) {
	var out *model.Comanda
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Comanda
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}

		if updates := headerUpdates(in); len(updates) > 0 {
			if err := tx.Model(&c).Updates(updates).Error; err != nil {
				return fmt.Errorf("update comanda %d: %w", id, err)
			}
		}

		if len(in.Produtos) > 0 {
			if err := mergeProdutos(tx, id, in.Produtos); err != nil {
				return err
			}
		}

		loaded, err := loadComanda(tx, id)
		if err != nil {
			return err
		}
		out = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *comandaRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Comanda
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}
		if err := tx.Where("comanda_id = ?", id).Delete(&model.Produto{}).Error; err != nil {
			return fmt.Errorf("delete produtos of comanda %d: %w", id, err)
		}
		if err := tx.Delete(&c).Error; err != nil {
			return fmt.Errorf("delete comanda %d: %w", id, err)
		}
		return nil
	})
}

// mergeProdutos сливает входные позиции с текущими:
// совпавший id: перезапись переданных полей, иначе новая позиция.
// Новые позиции без id вставляются последними, как в Create.
func mergeProdutos(tx *gorm.DB, comandaID int64, items []model.ProdutoInput) error {
	seen := make(map[int64]bool, len(items))
	for _, in := range items {
		if in.ID == nil {
			continue
		}
		if seen[*in.ID] {
			return fmt.Errorf("%w: %d", ErrProdutoDuplicateID, *in.ID)
		}
		seen[*in.ID] = true
	}

	var existing []model.Produto
	if err := tx.Where("comanda_id = ?", comandaID).Find(&existing).Error; err != nil {
		return fmt.Errorf("load produtos of comanda %d: %w", comandaID, err)
	}
	byID := make(map[int64]*model.Produto, len(existing))
	for i := range existing {
		byID[existing[i].ID] = &existing[i]
	}

	var withoutID []model.ProdutoInput
	for _, in := range items {
		if in.ID == nil {
			withoutID = append(withoutID, in)
			continue
		}
		if cur, ok := byID[*in.ID]; ok {
			if updates := produtoUpdates(in); len(updates) > 0 {
				if err := tx.Model(cur).Updates(updates).Error; err != nil {
					return fmt.Errorf("update produto %d: %w", cur.ID, err)
				}
			}
			continue
		}
		if err := insertProduto(tx, comandaID, in); err != nil {
			return err
		}
	}
	for _, in := range withoutID {
		if err := insertProduto(tx, comandaID, in); err != nil {
			return err
		}
	}
	// не упомянутые позиции не трогаем
	return nil
}

func insertProduto(tx *gorm.DB, comandaID int64, in model.ProdutoInput) error {
	if in.Nome == nil || in.Preco == nil {
		return ErrProdutoIncomplete
	}
	p := model.Produto{Nome: *in.Nome, Preco: *in.Preco, ComandaID: comandaID}
	if in.ID != nil {
		p.ID = *in.ID
	}
	if err := tx.Create(&p).Error; err != nil {
		return fmt.Errorf("insert produto into comanda %d: %w", comandaID, wrapDuplicate(err))
	}
	return nil
}

func loadComanda(db *gorm.DB, id int64) (*model.Comanda, error) {
	var c model.Comanda
	if err := db.Preload("Produtos", orderByID).First(&c, id).Error; err != nil {
		return nil, err
	}
	if c.Produtos == nil {
		c.Produtos = []model.Produto{}
	}
	return &c, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func headerUpdates(in model.ComandaInput) map[string]any {
	updates := map[string]any{}
	if in.IDUsuario != nil {
		updates["id_usuario"] = *in.IDUsuario
	}
	if in.NomeUsuario != nil {
		updates["nome_usuario"] = *in.NomeUsuario
	}
	if in.TelefoneUsuario != nil {
		updates["telefone_usuario"] = *in.TelefoneUsuario
	}
	return updates
}

func produtoUpdates(in model.ProdutoInput) map[string]any {
	updates := map[string]any{}
	if in.Nome != nil {
		updates["nome"] = *in.Nome
	}
	if in.Preco != nil {
		updates["preco"] = *in.Preco
	}
	return updates
}

func wrapDuplicate(err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
