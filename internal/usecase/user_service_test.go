package usecase

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamtally/clubdesk/internal/domain/user"
	"github.com/teamtally/clubdesk/internal/infrastructure/repository/memory"
)

func TestUserService_RegisterUser(t *testing.T) {
	userRepo := memory.NewUserRepository(nil)
	service := NewUserService(userRepo, staticIDGenerator{id: "usr-001"})

	created, err := service.RegisterUser(t.Context(), RegisterUserInput{
		Email:    "Coach@Example.Org",
		Password: "correct horse",
		Plan:     user.PlanTwoTeams,
	})
	if err != nil {
		t.Fatalf("register user failed: %v", err)
	}

	if created.Email != "coach@example.org" {
		t.Fatalf("expected lowercased email, got %s", created.Email)
	}
	if created.Role != user.RoleCoach {
		t.Fatalf("expected default coach role, got %s", created.Role)
	}
	if created.PasswordHash == "correct horse" || created.PasswordHash == "" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct horse")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_RegisterUser_ShortPassword(t *testing.T) {
	service := NewUserService(memory.NewUserRepository(nil), staticIDGenerator{id: "usr-002"})

	_, err := service.RegisterUser(t.Context(), RegisterUserInput{
		Email:    "coach@example.org",
		Password: "short",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	service := NewUserService(memory.NewUserRepository(memory.SeedUsers()), staticIDGenerator{id: "usr-003"})

	_, err := service.RegisterUser(t.Context(), RegisterUserInput{
		Email:    "coach@demo.club",
		Password: "long enough password",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for duplicate email, got %v", err)
	}
}

func TestUserService_VerifyCredentials(t *testing.T) {
	userRepo := memory.NewUserRepository(nil)
	service := NewUserService(userRepo, staticIDGenerator{id: "usr-004"})

	if _, err := service.RegisterUser(t.Context(), RegisterUserInput{
		Email:    "admin@example.org",
		Password: "correct horse",
		Role:     user.RoleAdmin,
		Plan:     user.PlanUnlimited,
	}); err != nil {
		t.Fatalf("register user failed: %v", err)
	}

	u, err := service.VerifyCredentials(t.Context(), "admin@example.org", "correct horse")
	if err != nil {
		t.Fatalf("verify credentials failed: %v", err)
	}
	if u.ID != "usr-004" {
		t.Fatalf("expected usr-004, got %s", u.ID)
	}

	if _, err := service.VerifyCredentials(t.Context(), "admin@example.org", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized for bad password, got %v", err)
	}
	if _, err := service.VerifyCredentials(t.Context(), "nobody@example.org", "correct horse"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown account, got %v", err)
	}
}

func TestUserService_UpdateUser_ValidatesEnums(t *testing.T) {
	service := NewUserService(memory.NewUserRepository(memory.SeedUsers()), staticIDGenerator{id: "usr-005"})

	badRole := user.Role("referee")
	_, err := service.UpdateUser(t.Context(), memory.UserIDDemoCoach, user.Patch{Role: &badRole})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown role, got %v", err)
	}

	plan := user.PlanFiveTeams
	updated, err := service.UpdateUser(t.Context(), memory.UserIDDemoCoach, user.Patch{Plan: &plan})
	if err != nil {
		t.Fatalf("update user failed: %v", err)
	}
	if updated.Plan != user.PlanFiveTeams {
		t.Fatalf("expected plan upgrade, got %s", updated.Plan)
	}
}
