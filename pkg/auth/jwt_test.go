package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/quizroom-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizroom-api/internal/pkg/errors"
)

func testUser() *entity.User {
	return &entity.User{
		ID:       1,
		PublicID: entity.NewObjectID(),
		Username: "student1",
		Role:     entity.RoleStudent,
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("", 24)
	assert.Error(t, err, "Пустой секрет должен быть ошибкой")
}

func TestJWTService_GenerateAndParse(t *testing.T) {
	// Arrange
	jwtService, err := NewJWTService("test-secret-key", 1)
	require.NoError(t, err)
	user := testUser()

	// Act
	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)
	claims, err := jwtService.ParseToken(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.PublicID, claims.PublicID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, user.PublicID, claims.Subject)
	assert.NotEmpty(t, claims.ID, "Каждый токен должен получать уникальный jti")
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	// Arrange
	jwtService, err := NewJWTService("test-secret-key", 1)
	require.NoError(t, err)
	user := testUser()

	// Act
	first, err := jwtService.GenerateToken(user)
	require.NoError(t, err)
	second, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	firstClaims, err := jwtService.ParseToken(first)
	require.NoError(t, err)
	secondClaims, err := jwtService.ParseToken(second)
	require.NoError(t, err)

	// Assert
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTService_ParseToken_WrongSecret(t *testing.T) {
	// Arrange
	issuer, err := NewJWTService("secret-one", 1)
	require.NoError(t, err)
	verifier, err := NewJWTService("secret-two", 1)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(testUser())
	require.NoError(t, err)

	// Act
	claims, err := verifier.ParseToken(token)

	// Assert
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
}

func TestJWTService_ParseToken_Garbage(t *testing.T) {
	jwtService, err := NewJWTService("test-secret-key", 1)
	require.NoError(t, err)

	claims, err := jwtService.ParseToken("not.a.token")

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
}

func TestJWTService_DefaultExpiration(t *testing.T) {
	// Неположительное значение срока действия заменяется умолчанием
	jwtService, err := NewJWTService("test-secret-key", 0)
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(testUser())
	require.NoError(t, err)

	claims, err := jwtService.ParseToken(token)
	require.NoError(t, err)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 24*time.Hour, lifetime)
}
