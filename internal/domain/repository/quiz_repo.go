package repository

import (
	"github.com/yourusername/quizroom-api/internal/domain/entity"
)

// QuizRepository определяет методы для работы с викторинами.
// Все методы чтения возвращают викторину вместе с вопросами,
// упорядоченными по position
type QuizRepository interface {
	Create(quiz *entity.Quiz) error
	GetByPublicID(publicID string) (*entity.Quiz, error)
	// List возвращает все викторины, новые первыми
	List() ([]entity.Quiz, error)
	// ReplaceQuestions атомарно обновляет заголовок и заменяет весь набор вопросов
	ReplaceQuestions(quiz *entity.Quiz, questions []entity.Question) error
	// DeleteByPublicID удаляет викторину вместе с вопросами.
	// Возвращает ErrNotFound, если викторины нет (в том числе при повторном удалении)
	DeleteByPublicID(publicID string) error
	Count() (int64, error)
}
