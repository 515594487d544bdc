package model

// Comanda: счёт клиента: данные владельца и список позиций.
type Comanda struct {
	ID              int64  `gorm:"primaryKey"`
	IDUsuario       int64  `gorm:"not null"`
	NomeUsuario     string `gorm:"not null"`
	TelefoneUsuario string `gorm:"not null"`

	Produtos []Produto `gorm:"foreignKey:ComandaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Produto: позиция комманды. ID может прийти от клиента, иначе генерируется БД.
type Produto struct {
	ID        int64   `gorm:"primaryKey"`
	Nome      string  `gorm:"not null"`
	Preco     float64 `gorm:"not null"`
	ComandaID int64   `gorm:"not null;index"` // ссылка на comandas.id
}

// ComandaInput: входные данные создания и частичного обновления.
// nil означает "поле не передано".
type ComandaInput struct {
	IDUsuario       *int64
	NomeUsuario     *string
	TelefoneUsuario *string
	Produtos        []ProdutoInput
}

// ProdutoInput: позиция во входных данных.
type ProdutoInput struct {
	ID    *int64
	Nome  *string
	Preco *float64
}
