package entity

import (
	"time"

	"gorm.io/gorm"
)

// Quiz представляет викторину: упорядоченный набор вопросов с одним правильным вариантом
type Quiz struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PublicID string `gorm:"size:24;not null;uniqueIndex" json:"id"`
	Title    string `gorm:"size:200;not null" json:"title"`

	// Questions упорядочены по полю Position
	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "quizzes"
}

// BeforeSave выдаёт публичный идентификатор, если он ещё не назначен
func (q *Quiz) BeforeSave(tx *gorm.DB) error {
	if q.PublicID == "" {
		q.PublicID = NewObjectID()
	}
	return nil
}

// QuestionCount возвращает количество вопросов викторины
func (q *Quiz) QuestionCount() int {
	return len(q.Questions)
}
