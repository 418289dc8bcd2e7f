package service

import (
	"fmt"
	"log"

	"github.com/yourusername/quizroom-api/internal/domain/entity"
	"github.com/yourusername/quizroom-api/internal/domain/repository"
)

// AdminStats — сводка для админ-панели
type AdminStats struct {
	TotalStudents int64           `json:"totalStudents"`
	TotalQuizzes  int64           `json:"totalQuizzes"`
	TotalAttempts int64           `json:"totalAttempts"`
	QuizStats     []QuizStatsItem `json:"quizStats"`
}

// QuizStatsItem — агрегат попыток по одной викторине
type QuizStatsItem struct {
	Title    string  `json:"title"`
	Attempts int64   `json:"attempts"`
	AvgScore float64 `json:"avgScore"`
}

// SystemStatus — панель состояния хранилища
type SystemStatus struct {
	Status          string `json:"status"`
	QuizCount       int64  `json:"quizCount"`
	UserCount       int64  `json:"userCount"`
	SubmissionCount int64  `json:"submissionCount"`
}

// StatsService считает агрегаты для отчётных панелей
type StatsService struct {
	userRepo       repository.UserRepository
	quizRepo       repository.QuizRepository
	submissionRepo repository.SubmissionRepository
}

// NewStatsService создает новый сервис статистики
func NewStatsService(
	userRepo repository.UserRepository,
	quizRepo repository.QuizRepository,
	submissionRepo repository.SubmissionRepository,
) *StatsService {
	return &StatsService{
		userRepo:       userRepo,
		quizRepo:       quizRepo,
		submissionRepo: submissionRepo,
	}
}

// GetAdminStats возвращает сводку для админ-панели.
// Ошибка опционального пер-викторинного агрегата деградирует
// до пустого списка и не валит весь ответ
func (s *StatsService) GetAdminStats() (*AdminStats, error) {
	students, err := s.userRepo.CountByRole(entity.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}
	quizzes, err := s.quizRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count quizzes: %w", err)
	}
	attempts, err := s.submissionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}

	stats := &AdminStats{
		TotalStudents: students,
		TotalQuizzes:  quizzes,
		TotalAttempts: attempts,
		QuizStats:     []QuizStatsItem{},
	}

	perQuiz, err := s.submissionRepo.StatsByQuiz()
	if err != nil {
		log.Printf("[StatsService] Ошибка расчёта статистики по викторинам, панель будет пустой: %v", err)
		return stats, nil
	}
	for _, row := range perQuiz {
		stats.QuizStats = append(stats.QuizStats, QuizStatsItem{
			Title:    row.QuizTitle,
			Attempts: row.Attempts,
			AvgScore: row.AvgScore,
		})
	}

	return stats, nil
}

// GetSystemStatus возвращает количество сущностей в хранилище
func (s *StatsService) GetSystemStatus() (*SystemStatus, error) {
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	quizzes, err := s.quizRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count quizzes: %w", err)
	}
	submissions, err := s.submissionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}

	return &SystemStatus{
		Status:          "ok",
		QuizCount:       quizzes,
		UserCount:       users,
		SubmissionCount: submissions,
	}, nil
}
