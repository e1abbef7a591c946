package models

import (
	"time"

	"github.com/petsas/appointment-service/internal/domain"
)

// Request модели

// SignUpRequest запрос на регистрацию
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// SignInRequest запрос на вход
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest запрос на обновление профиля.
// Редактируются только имя и телефон; email и роль не меняются.
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// Response модели

// AuthResponse ответ с токеном после регистрации или входа
type AuthResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

// ProfileResponse ответ с данными профиля
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainProfile конвертирует domain модель в DTO.
// Хэш пароля наружу не отдается.
func FromDomainProfile(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Phone:     p.Phone,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
