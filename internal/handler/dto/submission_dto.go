package dto

import (
	"time"

	"github.com/yourusername/quizroom-api/internal/domain/repository"
)

// Метки-заменители для попыток, чьи ссылки были удалены
const (
	DeletedUserLabel = "Deleted User"
	DeletedQuizLabel = "Deleted Quiz"
)

// GradeResponse — результат оценивания, возвращаемый сразу после сдачи
type GradeResponse struct {
	Score              int   `json:"score"`
	CorrectAnswers     int   `json:"correctAnswers"`
	TotalQuestions     int   `json:"totalQuestions"`
	CorrectAnswersList []int `json:"correctAnswersList"`
}

// SubmissionView — строка отчёта по попыткам для администратора
type SubmissionView struct {
	StudentName    string    `json:"studentName"`
	QuizTitle      string    `json:"quizTitle"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// MySubmissionView — строка отчёта по собственным попыткам (без studentName)
type MySubmissionView struct {
	QuizTitle      string    `json:"quizTitle"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// NewSubmissionListView преобразует строки отчёта в DTO,
// подставляя метки для висячих ссылок
func NewSubmissionListView(records []repository.SubmissionRecord) []SubmissionView {
	views := make([]SubmissionView, len(records))
	for i, rec := range records {
		views[i] = SubmissionView{
			StudentName:    labelOr(rec.StudentName, DeletedUserLabel),
			QuizTitle:      labelOr(rec.QuizTitle, DeletedQuizLabel),
			Score:          rec.Score,
			CorrectAnswers: rec.CorrectAnswers,
			TotalQuestions: rec.TotalQuestions,
			SubmittedAt:    rec.SubmittedAt,
		}
	}
	return views
}

// NewMySubmissionListView преобразует строки отчёта одного пользователя в DTO
func NewMySubmissionListView(records []repository.SubmissionRecord) []MySubmissionView {
	views := make([]MySubmissionView, len(records))
	for i, rec := range records {
		views[i] = MySubmissionView{
			QuizTitle:      labelOr(rec.QuizTitle, DeletedQuizLabel),
			Score:          rec.Score,
			CorrectAnswers: rec.CorrectAnswers,
			TotalQuestions: rec.TotalQuestions,
			SubmittedAt:    rec.SubmittedAt,
		}
	}
	return views
}

func labelOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}
