package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/quizroom-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizroom-api/internal/pkg/errors"
)

// makeQuestions создает вопросы с заданным ключом правильных ответов
func makeQuestions(answerKey ...int) []entity.Question {
	questions := make([]entity.Question, len(answerKey))
	for i, key := range answerKey {
		questions[i] = entity.Question{
			Text:          "Question",
			Options:       entity.StringArray{"A", "B", "C", "D"},
			CorrectAnswer: key,
			Position:      i,
		}
	}
	return questions
}

func TestGrade_AllCorrect(t *testing.T) {
	// Arrange
	questions := makeQuestions(0, 1, 2, 3)

	// Act
	result, err := Grade(questions, []int{0, 1, 2, 3})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 4, result.CorrectAnswers)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.Equal(t, []int{0, 1, 2, 3}, result.CorrectIndices)
}

func TestGrade_PartiallyCorrect(t *testing.T) {
	// Arrange: 3 из 4 правильных
	questions := makeQuestions(0, 1, 2, 3)

	// Act
	result, err := Grade(questions, []int{0, 1, 9, 3})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 75, result.Score)
	assert.Equal(t, 3, result.CorrectAnswers)
	assert.Equal(t, []int{0, 1, 3}, result.CorrectIndices)
}

func TestGrade_AllWrong(t *testing.T) {
	// Arrange
	questions := makeQuestions(0, 0, 0)

	// Act
	result, err := Grade(questions, []int{1, 2, 3})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.CorrectAnswers)
	assert.Empty(t, result.CorrectIndices)
}

func TestGrade_ScoreRounding(t *testing.T) {
	// Округление half-up: 1/3 → 33, 2/3 → 67
	tests := []struct {
		name      string
		answerKey []int
		answers   []int
		wantScore int
	}{
		{"one of three", []int{0, 0, 0}, []int{0, 1, 1}, 33},
		{"two of three", []int{0, 0, 0}, []int{0, 0, 1}, 67},
		{"one of six", []int{0, 0, 0, 0, 0, 0}, []int{0, 1, 1, 1, 1, 1}, 17},
		{"half exactly", []int{0, 0}, []int{0, 1}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Grade(makeQuestions(tt.answerKey...), tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, result.Score)
		})
	}
}

func TestGrade_UnansweredDoesNotMatch(t *testing.T) {
	// Arrange: пропущенный вопрос помечается сигнальным значением
	questions := makeQuestions(0, 1)

	// Act
	result, err := Grade(questions, []int{0, entity.AnswerUnanswered})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.CorrectAnswers)
	assert.Equal(t, 50, result.Score)
}

func TestGrade_OutOfRangeAnswerDoesNotMatch(t *testing.T) {
	// Ответ вне диапазона вариантов не совпадает с ключом и не является ошибкой
	questions := makeQuestions(2)

	result, err := Grade(questions, []int{42})

	require.NoError(t, err)
	assert.Equal(t, 0, result.CorrectAnswers)
}

func TestGrade_LengthMismatch(t *testing.T) {
	// Arrange
	questions := makeQuestions(0, 1, 2)

	// Act: ответов меньше, чем вопросов
	result, err := Grade(questions, []int{0, 1})

	// Assert
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestGrade_EmptyQuiz(t *testing.T) {
	// Act
	result, err := Grade(nil, []int{})

	// Assert
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}
