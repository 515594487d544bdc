package repo

import (
	"RestAPIFurb/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// UserRepository контракт доступа к пользователям.
type UserRepository interface {
	// CreateUser создаёт пользователя. Занятый username → ErrDuplicate.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	// GetUserByUsername ищет пользователя; отсутствие → gorm.ErrRecordNotFound.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория пользователей.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("create user %q: %w", user.Username, ErrDuplicate)
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
