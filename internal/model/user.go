package model

// User: учётная запись. Password хранит bcrypt-хеш, не исходный пароль.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
}
