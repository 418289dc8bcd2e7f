package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/quizroom-api/internal/domain/entity"
	"github.com/yourusername/quizroom-api/internal/domain/repository"
)

func TestStatsService_GetAdminStats(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("CountByRole", entity.RoleStudent).Return(int64(10), nil)

	mockQuizRepo := new(MockQuizRepository)
	mockQuizRepo.On("Count").Return(int64(3), nil)

	mockSubmissionRepo := new(MockSubmissionRepository)
	mockSubmissionRepo.On("Count").Return(int64(25), nil)
	mockSubmissionRepo.On("StatsByQuiz").Return([]repository.QuizAttemptStats{
		{QuizTitle: "Math", Attempts: 15, AvgScore: 72.5},
		{QuizTitle: "Geography", Attempts: 10, AvgScore: 64.0},
	}, nil)

	statsService := NewStatsService(mockUserRepo, mockQuizRepo, mockSubmissionRepo)

	// Act
	stats, err := statsService.GetAdminStats()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalStudents)
	assert.Equal(t, int64(3), stats.TotalQuizzes)
	assert.Equal(t, int64(25), stats.TotalAttempts)
	require.Len(t, stats.QuizStats, 2)
	assert.Equal(t, "Math", stats.QuizStats[0].Title)
	assert.Equal(t, 72.5, stats.QuizStats[0].AvgScore)
}

func TestStatsService_GetAdminStats_PerQuizFailureDegrades(t *testing.T) {
	// Ошибка пер-викторинного агрегата не валит весь ответ
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("CountByRole", entity.RoleStudent).Return(int64(10), nil)

	mockQuizRepo := new(MockQuizRepository)
	mockQuizRepo.On("Count").Return(int64(3), nil)

	mockSubmissionRepo := new(MockSubmissionRepository)
	mockSubmissionRepo.On("Count").Return(int64(25), nil)
	mockSubmissionRepo.On("StatsByQuiz").Return(nil, errors.New("db down"))

	statsService := NewStatsService(mockUserRepo, mockQuizRepo, mockSubmissionRepo)

	// Act
	stats, err := statsService.GetAdminStats()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(25), stats.TotalAttempts)
	assert.Empty(t, stats.QuizStats)
}

func TestStatsService_GetAdminStats_CountFailure(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("CountByRole", entity.RoleStudent).Return(int64(0), errors.New("db down"))

	statsService := NewStatsService(mockUserRepo, new(MockQuizRepository), new(MockSubmissionRepository))

	// Act
	stats, err := statsService.GetAdminStats()

	// Assert
	assert.Nil(t, stats)
	assert.Error(t, err)
}

func TestStatsService_GetSystemStatus(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("Count").Return(int64(11), nil)

	mockQuizRepo := new(MockQuizRepository)
	mockQuizRepo.On("Count").Return(int64(3), nil)

	mockSubmissionRepo := new(MockSubmissionRepository)
	mockSubmissionRepo.On("Count").Return(int64(25), nil)

	statsService := NewStatsService(mockUserRepo, mockQuizRepo, mockSubmissionRepo)

	// Act
	status, err := statsService.GetSystemStatus()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, int64(11), status.UserCount)
	assert.Equal(t, int64(3), status.QuizCount)
	assert.Equal(t, int64(25), status.SubmissionCount)
}
