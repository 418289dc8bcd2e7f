package dto

import (
	"time"

	"github.com/yourusername/quizroom-api/internal/domain/entity"
)

// QuestionView представляет вопрос в формате для ответа клиенту.
// CorrectAnswer — указатель с omitempty: в студенческой проекции поле
// отсутствует целиком, а не приходит как null
type QuestionView struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
}

// QuizView представляет викторину в формате для ответа клиенту
type QuizView struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Questions []QuestionView `json:"questions"`
	CreatedAt time.Time      `json:"createdAt"`
}

// NewQuizView создает проекцию викторины для роли читателя.
// includeAnswers=true (admin) раскрывает correctAnswer на каждом вопросе;
// false (student) убирает поле полностью
func NewQuizView(quiz *entity.Quiz, includeAnswers bool) *QuizView {
	if quiz == nil {
		return nil
	}

	questions := make([]QuestionView, len(quiz.Questions))
	for i, q := range quiz.Questions {
		view := QuestionView{
			Question: q.Text,
			Options:  []string(q.Options),
		}
		if includeAnswers {
			answer := q.CorrectAnswer
			view.CorrectAnswer = &answer
		}
		questions[i] = view
	}

	return &QuizView{
		ID:        quiz.PublicID,
		Title:     quiz.Title,
		Questions: questions,
		CreatedAt: quiz.CreatedAt,
	}
}

// NewQuizListView создает проекции для списка викторин.
// Списочный эндпоинт применяет ту же ролевую фильтрацию, что и одиночный
func NewQuizListView(quizzes []entity.Quiz, includeAnswers bool) []*QuizView {
	list := make([]*QuizView, len(quizzes))
	for i := range quizzes {
		list[i] = NewQuizView(&quizzes[i], includeAnswers)
	}
	return list
}
