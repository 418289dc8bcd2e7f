package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_HOST", "localhost")
	t.Setenv("DATABASE_USER", "postgres")
	t.Setenv("DATABASE_DBNAME", "quizroom")
}

func TestLoad_FromEnv(t *testing.T) {
	// Arrange
	setRequiredEnv(t)
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_PORT", "5433")
	t.Setenv("SERVER_PORT", "9090")

	// Act: файла конфигурации нет, все значения из окружения
	cfg, err := Load("")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 24, cfg.JWT.ExpirationHrs, "Срок действия JWT по умолчанию")
	assert.Equal(t, "admin", cfg.Admin.Username, "Учётные данные администратора по умолчанию")
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	// Arrange
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	// Act
	cfg, err := Load("")

	// Assert: без секрета запуск невозможен
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoad_MissingDatabase(t *testing.T) {
	// Arrange
	setRequiredEnv(t)
	t.Setenv("DATABASE_HOST", "")

	// Act
	cfg, err := Load("")

	// Assert
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestPostgresConnectionString(t *testing.T) {
	dbCfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		DBName:   "quizroom",
		SSLMode:  "disable",
	}

	dsn := dbCfg.PostgresConnectionString()

	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=quizroom sslmode=disable", dsn)
}

func TestRedisConfigured(t *testing.T) {
	assert.False(t, (&Config{}).RedisConfigured())
	assert.True(t, (&Config{Redis: RedisConfig{Addr: "localhost:6379"}}).RedisConfigured())
	assert.True(t, (&Config{Redis: RedisConfig{Addrs: []string{"localhost:6379"}}}).RedisConfigured())
}
