package repository

import (
	"github.com/yourusername/quizroom-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	GetByPublicID(publicID string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// CountByRole возвращает количество пользователей с заданной ролью
	CountByRole(role string) (int64, error)
	Count() (int64, error)
}
