package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/yourusername/quizroom-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizroom-api/internal/pkg/errors"
)

// QuizRepo реализует repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo создает новый репозиторий викторин
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// Create создает новую викторину вместе с вопросами
func (r *QuizRepo) Create(quiz *entity.Quiz) error {
	return r.db.Create(quiz).Error
}

// GetByPublicID возвращает викторину с вопросами по публичному идентификатору
func (r *QuizRepo) GetByPublicID(publicID string) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("public_id = ?", publicID).First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// List возвращает все викторины с вопросами, новые первыми
func (r *QuizRepo) List() ([]entity.Quiz, error) {
	var quizzes []entity.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Order("created_at DESC, id DESC").Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

// ReplaceQuestions атомарно обновляет заголовок викторины и заменяет весь набор вопросов.
// Вопросы не имеют независимой идентичности, поэтому обновление — это полная перезапись
func (r *QuizRepo) ReplaceQuestions(quiz *entity.Quiz, questions []entity.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Quiz{}).
			Where("id = ?", quiz.ID).
			Update("title", quiz.Title).Error; err != nil {
			return err
		}

		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&entity.Question{}).Error; err != nil {
			return err
		}

		for i := range questions {
			questions[i].ID = 0
			questions[i].QuizID = quiz.ID
			questions[i].Position = i
		}
		if err := tx.Create(&questions).Error; err != nil {
			return err
		}

		quiz.Questions = questions
		return nil
	})
}

// DeleteByPublicID удаляет викторину вместе с вопросами.
// Попытки (submissions) не затрагиваются — ссылки на удалённую викторину
// деградируют при чтении, а не каскадируются
func (r *QuizRepo) DeleteByPublicID(publicID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var quiz entity.Quiz
		if err := tx.Where("public_id = ?", publicID).First(&quiz).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}

		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&entity.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Quiz{}, quiz.ID).Error
	})
}

// Count возвращает общее количество викторин
func (r *QuizRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Quiz{}).Count(&count).Error
	return count, err
}

// isUniqueViolation проверяет Postgres unique violation (23505) для pgconn и lib/pq драйверов
func isUniqueViolation(err error) bool {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
