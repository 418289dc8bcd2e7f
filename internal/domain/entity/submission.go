package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// AnswerUnanswered — значение-сигнал для пропущенного вопроса
const AnswerUnanswered = -1

// IntArray - пользовательский тип для хранения списка ответов в JSONB
type IntArray []int

// Scan реализует интерфейс sql.Scanner для IntArray
func (a *IntArray) Scan(value interface{}) error {
	if value == nil {
		*a = IntArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*a = IntArray{}
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Value реализует интерфейс driver.Valuer для IntArray
func (a IntArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// Submission представляет одну оценённую попытку пользователя пройти викторину.
// Запись создаётся ровно один раз и никогда не изменяется и не удаляется.
// QuizID и UserID — обычные индексированные колонки без FK-ограничений:
// удаление викторины или пользователя не каскадирует на попытки
type Submission struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PublicID string `gorm:"size:24;not null;uniqueIndex" json:"id"`
	QuizID   uint   `gorm:"not null;index" json:"-"`
	UserID   uint   `gorm:"not null;index" json:"-"`

	Answers        IntArray  `gorm:"type:jsonb;not null" json:"answers"`
	Score          int       `gorm:"not null" json:"score"`
	CorrectAnswers int       `gorm:"not null" json:"correctAnswers"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	SubmittedAt    time.Time `gorm:"not null;index" json:"submittedAt"`

	CreatedAt time.Time `json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Submission) TableName() string {
	return "submissions"
}

// BeforeSave выдаёт публичный идентификатор, если он ещё не назначен
func (s *Submission) BeforeSave(tx *gorm.DB) error {
	if s.PublicID == "" {
		s.PublicID = NewObjectID()
	}
	return nil
}
