package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/quizroom-api/internal/domain/entity"
	"github.com/yourusername/quizroom-api/internal/domain/repository"
)

// SubmissionRepo реализует repository.SubmissionRepository
type SubmissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepo создает новый репозиторий попыток
func NewSubmissionRepo(db *gorm.DB) *SubmissionRepo {
	return &SubmissionRepo{db: db}
}

// Create сохраняет новую попытку
func (r *SubmissionRepo) Create(submission *entity.Submission) error {
	return r.db.Create(submission).Error
}

// selectRecordColumns — общая проекция для отчётов.
// LEFT JOIN: удалённый пользователь или викторина дают NULL вместо имени
const selectRecordColumns = "users.username AS student_name, quizzes.title AS quiz_title, " +
	"submissions.score, submissions.correct_answers, submissions.total_questions, submissions.submitted_at"

// ListAll возвращает все попытки с именами студентов и викторин, новые первыми
func (r *SubmissionRepo) ListAll() ([]repository.SubmissionRecord, error) {
	var records []repository.SubmissionRecord
	err := r.db.Table("submissions").
		Select(selectRecordColumns).
		Joins("LEFT JOIN users ON users.id = submissions.user_id").
		Joins("LEFT JOIN quizzes ON quizzes.id = submissions.quiz_id").
		Order("submissions.submitted_at DESC, submissions.id DESC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListByUser возвращает попытки одного пользователя, новые первыми
func (r *SubmissionRepo) ListByUser(userID uint) ([]repository.SubmissionRecord, error) {
	var records []repository.SubmissionRecord
	err := r.db.Table("submissions").
		Select(selectRecordColumns).
		Joins("LEFT JOIN users ON users.id = submissions.user_id").
		Joins("LEFT JOIN quizzes ON quizzes.id = submissions.quiz_id").
		Where("submissions.user_id = ?", userID).
		Order("submissions.submitted_at DESC, submissions.id DESC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Count возвращает общее количество попыток
func (r *SubmissionRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Submission{}).Count(&count).Error
	return count, err
}

// StatsByQuiz возвращает количество попыток и средний балл по каждой викторине.
// Удалённые викторины в агрегат не входят (INNER JOIN по живым викторинам)
func (r *SubmissionRepo) StatsByQuiz() ([]repository.QuizAttemptStats, error) {
	var stats []repository.QuizAttemptStats
	err := r.db.Table("submissions").
		Select("quizzes.title AS quiz_title, COUNT(*) AS attempts, AVG(submissions.score) AS avg_score").
		Joins("JOIN quizzes ON quizzes.id = submissions.quiz_id").
		Group("quizzes.id, quizzes.title").
		Order("attempts DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
