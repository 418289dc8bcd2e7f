package service

import (
	"fmt"
	"math"

	"github.com/yourusername/quizroom-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizroom-api/internal/pkg/errors"
)

// GradeResult содержит итог оценивания одной попытки
type GradeResult struct {
	Score          int
	CorrectAnswers int
	TotalQuestions int
	// CorrectIndices — позиции вопросов, на которые дан правильный ответ
	CorrectIndices []int
}

// Grade оценивает вектор ответов против ключа викторины.
// Чистая функция: сравнение позиционное, по точному равенству индексов;
// пропущенный вопрос (сигнальное значение) просто не совпадает с ключом.
// Длина answers обязана совпадать с количеством вопросов, викторина
// обязана иметь хотя бы один вопрос
func Grade(questions []entity.Question, answers []int) (*GradeResult, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: quiz has no questions", apperrors.ErrValidation)
	}
	if len(answers) != len(questions) {
		return nil, fmt.Errorf("%w: expected %d answers, got %d",
			apperrors.ErrValidation, len(questions), len(answers))
	}

	correctIndices := make([]int, 0, len(questions))
	for i, q := range questions {
		if q.IsCorrect(answers[i]) {
			correctIndices = append(correctIndices, i)
		}
	}

	correct := len(correctIndices)
	total := len(questions)
	// Округление half-up: 100*correct/total неотрицательно,
	// math.Round на таких значениях совпадает с round-half-up
	score := int(math.Round(float64(correct) * 100 / float64(total)))

	return &GradeResult{
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: total,
		CorrectIndices: correctIndices,
	}, nil
}
