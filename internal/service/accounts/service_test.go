package accounts

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/petsas/appointment-service/internal/domain"
	profileRepo "github.com/petsas/appointment-service/internal/infra/storage/profile"
	"github.com/petsas/appointment-service/internal/service/accounts/models"
)

type fakeProfileRepo struct {
	profiles map[string]*domain.Profile // по email

	created *domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (f *fakeProfileRepo) Create(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	if _, exists := f.profiles[p.Email]; exists {
		return nil, profileRepo.ErrEmailTaken
	}

	created := *p
	created.CreatedAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.profiles[p.Email] = &created
	f.created = &created
	return &created, nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, profileRepo.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	p, ok := f.profiles[email]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) UpdateNamePhone(_ context.Context, id, fullName, phone string) error {
	for _, p := range f.profiles {
		if p.ID == id {
			p.FullName = fullName
			p.Phone = phone
			return nil
		}
	}
	return profileRepo.ErrProfileNotFound
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeProfileRepo) *Service {
	return NewService(repo, "test-secret", time.Hour, noopLogger{})
}

func validSignUp() *models.SignUpRequest {
	return &models.SignUpRequest{
		Email:    "ivan@example.com",
		Password: "password123",
		FullName: "Иван Иванов",
		Phone:    "+79990000000",
	}
}

func TestSignUp(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newTestService(repo)

	resp, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.Profile.ID)
	assert.Equal(t, "ivan@example.com", resp.Profile.Email)
	assert.Equal(t, string(domain.RoleUser), resp.Profile.Role)

	// пароль хранится только в виде bcrypt хэша
	require.NotNil(t, repo.created)
	assert.NotContains(t, repo.created.PasswordHash, "password123")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("password123")))
}

func TestSignUp_NormalizesEmail(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newTestService(repo)

	req := validSignUp()
	req.Email = "  Ivan@Example.COM "

	resp, err := svc.SignUp(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ivan@example.com", resp.Profile.Email)
}

func TestSignUp_EmailTaken(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newTestService(repo)

	_, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), validSignUp())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignUp_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.SignUpRequest)
	}{
		{name: "empty email", mutate: func(r *models.SignUpRequest) { r.Email = "" }},
		{name: "email without at sign", mutate: func(r *models.SignUpRequest) { r.Email = "ivan.example.com" }},
		{name: "short password", mutate: func(r *models.SignUpRequest) { r.Password = "123" }},
		{name: "empty full name", mutate: func(r *models.SignUpRequest) { r.FullName = "" }},
		{name: "full name too long", mutate: func(r *models.SignUpRequest) {
			r.FullName = strings.Repeat("x", domain.MaxFullNameLength+1)
		}},
		{name: "phone too long", mutate: func(r *models.SignUpRequest) {
			r.Phone = strings.Repeat("9", domain.MaxPhoneLength+1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeProfileRepo())
			req := validSignUp()
			tt.mutate(req)

			_, err := svc.SignUp(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSignIn(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newTestService(repo)

	signUp, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	resp, err := svc.SignIn(context.Background(), &models.SignInRequest{
		Email:    "ivan@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, signUp.Profile.ID, resp.Profile.ID)
}

// Неизвестный email и неверный пароль дают одну и ту же ошибку
func TestSignIn_InvalidCredentials(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newTestService(repo)

	_, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	_, err = svc.SignIn(context.Background(), &models.SignInRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(context.Background(), &models.SignInRequest{
		Email:    "ivan@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_EmptyInput(t *testing.T) {
	svc := newTestService(newFakeProfileRepo())

	_, err := svc.SignIn(context.Background(), &models.SignInRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseToken_RoundTrip(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newTestService(repo)

	resp, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Profile.ID, claims.Subject)
	assert.Equal(t, string(domain.RoleUser), claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	repo := newFakeProfileRepo()
	issuer := newTestService(repo)
	verifier := NewService(repo, "other-secret", time.Hour, noopLogger{})

	resp, err := issuer.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	_, err = verifier.ParseToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestService(newFakeProfileRepo())

	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseToken_Expired(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newTestService(repo)
	svc.timeProvider = &fixedTimeProvider{now: time.Now().Add(-2 * time.Hour)}

	resp, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	_, err = svc.ParseToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func TestGetProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newTestService(repo)

	signUp, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), signUp.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Иван Иванов", profile.FullName)

	_, err = svc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newTestService(repo)

	signUp, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), signUp.Profile.ID, &models.UpdateProfileRequest{
		FullName: "Петр Петров",
		Phone:    "+79991111111",
	})
	require.NoError(t, err)
	assert.Equal(t, "Петр Петров", updated.FullName)
	assert.Equal(t, "+79991111111", updated.Phone)
	// email не редактируется
	assert.Equal(t, "ivan@example.com", updated.Email)
}

func TestUpdateProfile_Validation(t *testing.T) {
	svc := newTestService(newFakeProfileRepo())

	_, err := svc.UpdateProfile(context.Background(), "user-1", &models.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	svc := newTestService(newFakeProfileRepo())

	_, err := svc.UpdateProfile(context.Background(), "ghost", &models.UpdateProfileRequest{
		FullName: "Петр Петров",
	})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
