package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/quizroom-api/internal/domain/entity"
	"github.com/yourusername/quizroom-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizroom-api/internal/pkg/errors"
	"github.com/yourusername/quizroom-api/pkg/auth"
)

// AuthService предоставляет методы для регистрации и аутентификации пользователей
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService создает новый сервис аутентификации и возвращает ошибку при проблемах
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) (*AuthService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("UserRepository is required for AuthService")
	}
	if jwtService == nil {
		return nil, fmt.Errorf("JWTService is required for AuthService")
	}

	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}, nil
}

// RegisterUser регистрирует нового пользователя.
// Через регистрацию создаются только студенты; роль администратора
// назначается исключительно при первичной инициализации
func (s *AuthService) RegisterUser(username, email, password string) (*entity.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	// Проверяем, существует ли пользователь с таким username
	_, err := s.userRepo.GetByUsername(username)
	if err == nil {
		return nil, "", fmt.Errorf("%w: username already exists", apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check username existence: %w", err)
	}

	// Проверяем, существует ли пользователь с таким email
	_, err = s.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", fmt.Errorf("%w: email already exists", apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check email existence: %w", err)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: password,
		Role:     entity.RoleStudent,
	}

	if err := s.userRepo.Create(user); err != nil {
		// Уникальный индекс закрывает гонку check-then-create
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, "", fmt.Errorf("%w: username or email already exists", apperrors.ErrConflict)
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	log.Printf("[AuthService] Пользователь ID=%d (%s) успешно зарегистрирован", user.ID, user.Username)
	return user, token, nil
}

// LoginUser аутентифицирует пользователя по имени и паролю и возвращает токен.
// Неизвестное имя и неверный пароль дают одинаковую ошибку валидации,
// чтобы не раскрывать существование учётной записи
func (s *AuthService) LoginUser(username, password string) (*entity.User, string, error) {
	user, err := s.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid username or password", apperrors.ErrValidation)
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.CheckPassword(password) {
		return nil, "", fmt.Errorf("%w: invalid username or password", apperrors.ErrValidation)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// EnsureDefaultAdmin идемпотентно создаёт администратора при первом запуске.
// Гонка между параллельными стартами закрывается частичным уникальным
// индексом на role='admin': проигравший получает 23505 и считает
// инициализацию уже выполненной
func (s *AuthService) EnsureDefaultAdmin(username, email, password string) error {
	count, err := s.userRepo.CountByRole(entity.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if count > 0 {
		log.Println("[AuthService] Администратор уже существует, инициализация не требуется")
		return nil
	}

	admin := &entity.User{
		Username: username,
		Email:    strings.ToLower(email),
		Password: password,
		Role:     entity.RoleAdmin,
	}

	if err := s.userRepo.Create(admin); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			log.Println("[AuthService] Администратор создан параллельным запуском, продолжаем")
			return nil
		}
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	log.Printf("[AuthService] Создан администратор по умолчанию (username=%s)", username)
	return nil
}
