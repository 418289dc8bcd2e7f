package service

import (
	"fmt"
	"strings"

	"github.com/yourusername/quizroom-api/internal/domain/entity"
	"github.com/yourusername/quizroom-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizroom-api/internal/pkg/errors"
)

// QuizService предоставляет методы для работы с викторинами
type QuizService struct {
	quizRepo repository.QuizRepository
}

// NewQuizService создает новый сервис викторин
func NewQuizService(quizRepo repository.QuizRepository) *QuizService {
	return &QuizService{quizRepo: quizRepo}
}

// validateQuestions проверяет доменные инварианты набора вопросов:
// хотя бы один вопрос, непустой текст, ровно четыре варианта,
// индекс правильного ответа в диапазоне
func validateQuestions(questions []entity.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: quiz must have at least one question", apperrors.ErrValidation)
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("%w: question %d has empty text", apperrors.ErrValidation, i+1)
		}
		if len(q.Options) != entity.OptionsPerQuestion {
			return fmt.Errorf("%w: question %d must have exactly %d options",
				apperrors.ErrValidation, i+1, entity.OptionsPerQuestion)
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return fmt.Errorf("%w: question %d has empty option %d", apperrors.ErrValidation, i+1, j+1)
			}
		}
		if !q.HasValidAnswerIndex() {
			return fmt.Errorf("%w: question %d has correct answer index %d out of range",
				apperrors.ErrValidation, i+1, q.CorrectAnswer)
		}
	}
	return nil
}

// CreateQuiz создает новую викторину с вопросами
func (s *QuizService) CreateQuiz(title string, questions []entity.Question) (*entity.Quiz, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	for i := range questions {
		questions[i].Position = i
	}

	quiz := &entity.Quiz{
		Title:     title,
		Questions: questions,
	}

	if err := s.quizRepo.Create(quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}
	return quiz, nil
}

// GetQuiz возвращает викторину с вопросами по публичному идентификатору
func (s *QuizService) GetQuiz(publicID string) (*entity.Quiz, error) {
	return s.quizRepo.GetByPublicID(publicID)
}

// ListQuizzes возвращает все викторины, новые первыми
func (s *QuizService) ListQuizzes() ([]entity.Quiz, error) {
	return s.quizRepo.List()
}

// UpdateQuiz обновляет заголовок и полностью заменяет вопросы викторины.
// Валидация совпадает с созданием
func (s *QuizService) UpdateQuiz(publicID, title string, questions []entity.Question) (*entity.Quiz, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	quiz, err := s.quizRepo.GetByPublicID(publicID)
	if err != nil {
		return nil, err
	}

	quiz.Title = title
	if err := s.quizRepo.ReplaceQuestions(quiz, questions); err != nil {
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}
	return quiz, nil
}

// DeleteQuiz удаляет викторину. Удаление немедленное и необратимое;
// попытки по викторине остаются
func (s *QuizService) DeleteQuiz(publicID string) error {
	return s.quizRepo.DeleteByPublicID(publicID)
}
