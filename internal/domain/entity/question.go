package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// OptionsPerQuestion — каждый вопрос имеет ровно четыре варианта ответа
const OptionsPerQuestion = 4

// StringArray - пользовательский тип для работы с JSONB
type StringArray []string

// Scan реализует интерфейс sql.Scanner для StringArray
// Используется GORM для чтения JSONB данных из базы
func (o *StringArray) Scan(value interface{}) error {
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для StringArray
// Используется GORM для записи StringArray в JSONB в базе
func (o StringArray) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(o)
}

// Question представляет вопрос викторины. Вопросы не имеют собственного API-идентификатора:
// они живут и умирают вместе со своей викториной и полностью заменяются при её обновлении
type Question struct {
	ID            uint        `gorm:"primaryKey" json:"-"`
	QuizID        uint        `gorm:"not null;index" json:"-"`
	Position      int         `gorm:"not null" json:"-"`
	Text          string      `gorm:"size:500;not null" json:"question"`
	Options       StringArray `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer int         `gorm:"not null" json:"-"` // Скрыто от клиента, раскрывается только в admin-проекции
	CreatedAt     time.Time   `json:"-"`
	UpdatedAt     time.Time   `json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsCorrect проверяет, является ли выбранный вариант правильным
func (q *Question) IsCorrect(selected int) bool {
	return selected == q.CorrectAnswer
}

// HasValidAnswerIndex проверяет инвариант 0 <= CorrectAnswer < len(Options)
func (q *Question) HasValidAnswerIndex() bool {
	return q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options)
}
