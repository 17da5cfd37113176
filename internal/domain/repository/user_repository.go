package repository

import "github.com/hutecki/bankiety-api/internal/domain/entity"

// UserRepository defines the persistence port for accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
}
