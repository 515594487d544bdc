package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrDuplicate нарушение уникальности (логин, id позиции).
	ErrDuplicate = errors.New("duplicate key")
	// ErrProdutoIncomplete новая позиция без nome или preco.
	ErrProdutoIncomplete = errors.New("produto requires nome and preco")
	// ErrProdutoDuplicateID один id позиции передан несколько раз в одном запросе.
	ErrProdutoDuplicateID = errors.New("produto id listed more than once")
)

// isUniqueViolation распознаёт нарушение уникальности для обоих драйверов.
// Ошибки modernc.org/sqlite gorm не транслирует, поэтому проверяем и текст.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
