package repository

import (
	"time"

	"github.com/yourusername/quizroom-api/internal/domain/entity"
)

// SubmissionRecord — строка отчёта по попыткам с присоединёнными именами.
// StudentName и QuizTitle равны nil, если пользователь или викторина
// были удалены после создания попытки (ссылки не каскадируются)
type SubmissionRecord struct {
	StudentName    *string   `gorm:"column:student_name"`
	QuizTitle      *string   `gorm:"column:quiz_title"`
	Score          int       `gorm:"column:score"`
	CorrectAnswers int       `gorm:"column:correct_answers"`
	TotalQuestions int       `gorm:"column:total_questions"`
	SubmittedAt    time.Time `gorm:"column:submitted_at"`
}

// QuizAttemptStats — агрегат попыток по одной викторине для админ-панели
type QuizAttemptStats struct {
	QuizTitle string  `gorm:"column:quiz_title"`
	Attempts  int64   `gorm:"column:attempts"`
	AvgScore  float64 `gorm:"column:avg_score"`
}

// SubmissionRepository определяет методы для работы с попытками.
// Попытки создаются один раз и никогда не изменяются
type SubmissionRepository interface {
	Create(submission *entity.Submission) error
	// ListAll возвращает все попытки с именами студентов и викторин, новые первыми
	ListAll() ([]SubmissionRecord, error)
	// ListByUser возвращает попытки одного пользователя, новые первыми
	ListByUser(userID uint) ([]SubmissionRecord, error)
	Count() (int64, error)
	// StatsByQuiz возвращает количество попыток и средний балл по каждой викторине
	StatsByQuiz() ([]QuizAttemptStats, error)
}
