package service

import (
	"fmt"
	"time"

	"github.com/yourusername/quizroom-api/internal/domain/entity"
	"github.com/yourusername/quizroom-api/internal/domain/repository"
)

// SubmissionService оценивает и сохраняет попытки прохождения викторин
type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
	quizRepo       repository.QuizRepository
}

// NewSubmissionService создает новый сервис попыток
func NewSubmissionService(
	submissionRepo repository.SubmissionRepository,
	quizRepo repository.QuizRepository,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		quizRepo:       quizRepo,
	}
}

// SubmitQuiz оценивает ответы пользователя и сохраняет попытку.
// Повторные попытки по той же викторине накапливаются без ограничений
func (s *SubmissionService) SubmitQuiz(quizPublicID string, userID uint, answers []int) (*GradeResult, error) {
	quiz, err := s.quizRepo.GetByPublicID(quizPublicID)
	if err != nil {
		return nil, err
	}

	result, err := Grade(quiz.Questions, answers)
	if err != nil {
		return nil, err
	}

	submission := &entity.Submission{
		QuizID:         quiz.ID,
		UserID:         userID,
		Answers:        entity.IntArray(answers),
		Score:          result.Score,
		CorrectAnswers: result.CorrectAnswers,
		TotalQuestions: result.TotalQuestions,
		SubmittedAt:    time.Now(),
	}

	if err := s.submissionRepo.Create(submission); err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	return result, nil
}

// ListAllSubmissions возвращает все попытки для админского отчёта, новые первыми
func (s *SubmissionService) ListAllSubmissions() ([]repository.SubmissionRecord, error) {
	return s.submissionRepo.ListAll()
}

// ListUserSubmissions возвращает попытки одного пользователя, новые первыми
func (s *SubmissionService) ListUserSubmissions(userID uint) ([]repository.SubmissionRecord, error) {
	return s.submissionRepo.ListByUser(userID)
}
