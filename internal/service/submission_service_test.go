package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/quizroom-api/internal/domain/entity"
	"github.com/yourusername/quizroom-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizroom-api/internal/pkg/errors"
)

func TestSubmissionService_SubmitQuiz_Success(t *testing.T) {
	// Arrange
	publicID := entity.NewObjectID()
	quiz := &entity.Quiz{
		ID:        7,
		PublicID:  publicID,
		Title:     "Math",
		Questions: makeQuestions(0, 1, 2, 3),
	}

	mockQuizRepo := new(MockQuizRepository)
	mockQuizRepo.On("GetByPublicID", publicID).Return(quiz, nil)

	mockSubmissionRepo := new(MockSubmissionRepository)
	mockSubmissionRepo.On("Create", mock.MatchedBy(func(s *entity.Submission) bool {
		return s.QuizID == 7 && s.UserID == 42 && s.Score == 75
	})).Return(nil)

	submissionService := NewSubmissionService(mockSubmissionRepo, mockQuizRepo)

	// Act
	result, err := submissionService.SubmitQuiz(publicID, 42, []int{0, 1, 9, 3})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 75, result.Score)
	assert.Equal(t, 3, result.CorrectAnswers)
	assert.Equal(t, 4, result.TotalQuestions)
	mockQuizRepo.AssertExpectations(t)
	mockSubmissionRepo.AssertExpectations(t)
}

func TestSubmissionService_SubmitQuiz_QuizNotFound(t *testing.T) {
	// Arrange
	publicID := entity.NewObjectID()
	mockQuizRepo := new(MockQuizRepository)
	mockQuizRepo.On("GetByPublicID", publicID).Return(nil, apperrors.ErrNotFound)

	mockSubmissionRepo := new(MockSubmissionRepository)
	submissionService := NewSubmissionService(mockSubmissionRepo, mockQuizRepo)

	// Act
	result, err := submissionService.SubmitQuiz(publicID, 42, []int{0})

	// Assert
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	mockSubmissionRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSubmissionService_SubmitQuiz_LengthMismatchNotPersisted(t *testing.T) {
	// Arrange: неправильная длина вектора ответов отклоняется до записи
	publicID := entity.NewObjectID()
	quiz := &entity.Quiz{ID: 7, PublicID: publicID, Questions: makeQuestions(0, 1)}

	mockQuizRepo := new(MockQuizRepository)
	mockQuizRepo.On("GetByPublicID", publicID).Return(quiz, nil)

	mockSubmissionRepo := new(MockSubmissionRepository)
	submissionService := NewSubmissionService(mockSubmissionRepo, mockQuizRepo)

	// Act
	result, err := submissionService.SubmitQuiz(publicID, 42, []int{0})

	// Assert
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	mockSubmissionRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSubmissionService_SubmitQuiz_RepeatedAttemptsAccumulate(t *testing.T) {
	// Повторные попытки по той же викторине не ограничиваются
	publicID := entity.NewObjectID()
	quiz := &entity.Quiz{ID: 7, PublicID: publicID, Questions: makeQuestions(0)}

	mockQuizRepo := new(MockQuizRepository)
	mockQuizRepo.On("GetByPublicID", publicID).Return(quiz, nil)

	mockSubmissionRepo := new(MockSubmissionRepository)
	mockSubmissionRepo.On("Create", mock.AnythingOfType("*entity.Submission")).Return(nil).Twice()

	submissionService := NewSubmissionService(mockSubmissionRepo, mockQuizRepo)

	// Act
	_, errFirst := submissionService.SubmitQuiz(publicID, 42, []int{0})
	_, errSecond := submissionService.SubmitQuiz(publicID, 42, []int{1})

	// Assert
	assert.NoError(t, errFirst)
	assert.NoError(t, errSecond)
	mockSubmissionRepo.AssertExpectations(t)
}

func TestSubmissionService_ListUserSubmissions(t *testing.T) {
	// Arrange
	name := "student1"
	title := "Math"
	records := []repository.SubmissionRecord{
		{StudentName: &name, QuizTitle: &title, Score: 80, SubmittedAt: time.Now()},
	}

	mockSubmissionRepo := new(MockSubmissionRepository)
	mockSubmissionRepo.On("ListByUser", uint(42)).Return(records, nil)

	submissionService := NewSubmissionService(mockSubmissionRepo, new(MockQuizRepository))

	// Act
	got, err := submissionService.ListUserSubmissions(42)

	// Assert
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 80, got[0].Score)
	mockSubmissionRepo.AssertExpectations(t)
}
