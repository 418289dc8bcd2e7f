package entity

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// objectIDPattern описывает формат публичного идентификатора: 24 hex-символа
var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// NewObjectID генерирует новый публичный идентификатор (12 случайных байт в hex).
// Формат совместим с ObjectId документных хранилищ, который ожидают клиенты API.
func NewObjectID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand на поддерживаемых платформах не возвращает ошибок;
		// паника здесь означает неработоспособную систему
		panic("entity: crypto/rand failure: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// IsValidObjectID проверяет, соответствует ли строка формату публичного идентификатора
func IsValidObjectID(id string) bool {
	return objectIDPattern.MatchString(id)
}
