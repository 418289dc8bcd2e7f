package dto

import "github.com/yourusername/quizroom-api/internal/domain/entity"

// RegisteredUserView — пользователь в ответе на регистрацию
type RegisteredUserView struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthUserView — пользователь в ответе на вход
type AuthUserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// AuthResponse — токен и данные пользователя
type AuthResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// NewRegisterResponse создает ответ на успешную регистрацию
func NewRegisterResponse(token string, user *entity.User) *AuthResponse {
	return &AuthResponse{
		Token: token,
		User: RegisteredUserView{
			Username: user.Username,
			Role:     user.Role,
		},
	}
}

// NewLoginResponse создает ответ на успешный вход
func NewLoginResponse(token string, user *entity.User) *AuthResponse {
	return &AuthResponse{
		Token: token,
		User: AuthUserView{
			ID:       user.PublicID,
			Username: user.Username,
			Role:     user.Role,
			Email:    user.Email,
		},
	}
}
