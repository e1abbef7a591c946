package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/petsas/appointment-service/internal/domain"
	profileRepo "github.com/petsas/appointment-service/internal/infra/storage/profile"
	"github.com/petsas/appointment-service/internal/service/accounts/models"
)

// Claims полезная нагрузка JWT токена
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service сервис регистрации и аутентификации
type Service struct {
	profileRepo  ProfileRepository
	jwtSecret    []byte
	tokenTTL     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аккаунтов
func NewService(
	profileRepo ProfileRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		profileRepo:  profileRepo,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SignUp регистрирует нового пользователя.
// Роль всегда user: административные роли назначаются вне сервиса.
func (s *Service) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.AuthResponse, error) {
	s.logger.Info("SignUp: registering email=%s", req.Email)

	if err := validateSignUp(req); err != nil {
		s.logger.Warn("SignUp: validation failed: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("SignUp: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: SignUp - failed to hash password: %v", ErrInternal, err)
	}

	profile := &domain.Profile{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:     req.FullName,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	created, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		if errors.Is(err, profileRepo.ErrEmailTaken) {
			s.logger.Warn("SignUp: email=%s already taken", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("SignUp: repository error: %v", err)
		return nil, fmt.Errorf("%w: SignUp - repository error: %v", ErrInternal, err)
	}

	token, err := s.issueToken(created)
	if err != nil {
		s.logger.Error("SignUp: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: SignUp - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("SignUp: successfully registered profile id=%s", created.ID)

	return &models.AuthResponse{
		Token:   token,
		Profile: models.FromDomainProfile(created),
	}, nil
}

// SignIn выполняет вход по email и паролю
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, error) {
	s.logger.Info("SignIn: email=%s", req.Email)

	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	profile, err := s.profileRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("SignIn: profile for email=%s not found", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: repository error: %v", err)
		return nil, fmt.Errorf("%w: SignIn - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("SignIn: wrong password for email=%s", req.Email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(profile)
	if err != nil {
		s.logger.Error("SignIn: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: SignIn - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("SignIn: successful login for profile id=%s", profile.ID)

	return &models.AuthResponse{
		Token:   token,
		Profile: models.FromDomainProfile(profile),
	}, nil
}

// GetProfile получает профиль пользователя
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("GetProfile: profile id=%s not found", userID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("GetProfile: repository error for id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainProfile(profile)
	return &resp, nil
}

// UpdateProfile обновляет имя и телефон пользователя
func (s *Service) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("UpdateProfile: updating profile id=%s", userID)

	if err := validateUpdateProfile(req); err != nil {
		s.logger.Warn("UpdateProfile: validation failed for id=%s: %v", userID, err)
		return nil, err
	}

	if err := s.profileRepo.UpdateNamePhone(ctx, userID, req.FullName, req.Phone); err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("UpdateProfile: profile id=%s not found", userID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("UpdateProfile: repository error for id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	return s.GetProfile(ctx, userID)
}

// ParseToken проверяет подпись токена и возвращает его полезную нагрузку
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	return claims, nil
}

// issueToken выпускает подписанный JWT токен для профиля
func (s *Service) issueToken(p *domain.Profile) (string, error) {
	now := s.timeProvider.Now()

	claims := Claims{
		Role: string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// Валидация

func validateSignUp(req *models.SignUpRequest) error {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}

	if req.FullName == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	if len(req.FullName) > domain.MaxFullNameLength {
		return fmt.Errorf("%w: fullName is too long", ErrInvalidInput)
	}

	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	return nil
}

func validateUpdateProfile(req *models.UpdateProfileRequest) error {
	if req.FullName == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	if len(req.FullName) > domain.MaxFullNameLength {
		return fmt.Errorf("%w: fullName is too long", ErrInvalidInput)
	}

	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	return nil
}
