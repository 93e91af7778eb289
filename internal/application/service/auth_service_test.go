package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/andresproyectosx24/chayotex/pkg/apperror"
	"github.com/andresproyectosx24/chayotex/pkg/utils"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func authFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	repo := newFakeUserRepo()
	return NewAuthService(repo, jwtManager), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := authFixture(t)

	user, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Andrés",
		Email:    "Andres@Chayotex.MX",
		Password: "secreto-123",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.Email != "andres@chayotex.mx" {
		t.Fatalf("email should be normalized, got %q", user.Email)
	}
	if user.Password == "secreto-123" {
		t.Fatal("password must be stored hashed")
	}

	output, err := svc.Login(context.Background(), &LoginInput{
		Email:    "andres@chayotex.mx",
		Password: "secreto-123",
	})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := authFixture(t)

	if _, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Andrés",
		Email:    "andres@chayotex.mx",
		Password: "secreto-123",
	}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "andres@chayotex.mx",
		Password: "otra-cosa",
	})
	if !apperror.IsKind(err, apperror.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := authFixture(t)

	input := &RegisterInput{Name: "Andrés", Email: "andres@chayotex.mx", Password: "secreto-123"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	_, err := svc.Register(context.Background(), input)
	if !apperror.IsKind(err, apperror.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, _ := authFixture(t)

	_, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Andrés",
		Email:    "andres@chayotex.mx",
		Password: "corta",
	})
	if !apperror.IsKind(err, apperror.KindValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRefreshToken(t *testing.T) {
	svc, _ := authFixture(t)

	if _, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Andrés",
		Email:    "andres@chayotex.mx",
		Password: "secreto-123",
	}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	login, err := svc.Login(context.Background(), &LoginInput{
		Email:    "andres@chayotex.mx",
		Password: "secreto-123",
	})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatal("expected new access token")
	}

	if _, err := svc.RefreshToken(context.Background(), "garbage"); !apperror.IsKind(err, apperror.KindUnauthorized) {
		t.Fatalf("expected unauthorized for bad token, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := authFixture(t)

	user, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Andrés",
		Email:    "andres@chayotex.mx",
		Password: "secreto-123",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	updated, err := svc.UpdateProfile(context.Background(), &UpdateProfileInput{
		UserID: user.ID,
		Name:   "Andrés Téllez",
		Email:  "Tellez@Chayotex.MX",
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if updated.Name != "Andrés Téllez" {
		t.Fatalf("name = %q", updated.Name)
	}
	if updated.Email != "tellez@chayotex.mx" {
		t.Fatalf("email should be normalized, got %q", updated.Email)
	}

	if _, err := svc.Login(context.Background(), &LoginInput{
		Email:    "tellez@chayotex.mx",
		Password: "secreto-123",
	}); err != nil {
		t.Fatalf("login with updated email failed: %v", err)
	}
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	svc, _ := authFixture(t)

	if _, err := svc.Register(context.Background(), &RegisterInput{
		Name: "Andrés", Email: "andres@chayotex.mx", Password: "secreto-123",
	}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	other, err := svc.Register(context.Background(), &RegisterInput{
		Name: "Lupe", Email: "lupe@chayotex.mx", Password: "secreto-123",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if _, err := svc.UpdateProfile(context.Background(), &UpdateProfileInput{
		UserID: other.ID,
		Name:   "Lupe",
		Email:  "andres@chayotex.mx",
	}); !apperror.IsKind(err, apperror.KindConflict) {
		t.Fatalf("expected conflict for taken email, got %v", err)
	}

	// Keeping your own email is not a conflict.
	if _, err := svc.UpdateProfile(context.Background(), &UpdateProfileInput{
		UserID: other.ID,
		Name:   "Guadalupe",
		Email:  "lupe@chayotex.mx",
	}); err != nil {
		t.Fatalf("UpdateProfile with unchanged email failed: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := authFixture(t)

	user, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Andrés",
		Email:    "andres@chayotex.mx",
		Password: "secreto-123",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "incorrecta",
		NewPassword:     "nueva-clave-1",
	}); !apperror.IsKind(err, apperror.KindValidationFailed) {
		t.Fatalf("expected validation error for wrong current password, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "secreto-123",
		NewPassword:     "nueva-clave-1",
	}); err != nil {
		t.Fatalf("ChangePassword error: %v", err)
	}

	if _, err := svc.Login(context.Background(), &LoginInput{
		Email:    "andres@chayotex.mx",
		Password: "nueva-clave-1",
	}); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}
