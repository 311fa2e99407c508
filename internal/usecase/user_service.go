package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamtally/clubdesk/internal/domain/user"
	idgen "github.com/teamtally/clubdesk/internal/platform/id"
)

// RegisterUserInput is the incoming payload for account registration.
type RegisterUserInput struct {
	Email    string
	Password string
	Role     user.Role
	Plan     user.Plan
}

type UserService struct {
	userRepo user.Repository
	idGen    idgen.Generator
	now      func() time.Time
}

func NewUserService(userRepo user.Repository, idGen idgen.Generator) *UserService {
	return &UserService{
		userRepo: userRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

// RegisterUser creates an account with a bcrypt-hashed password. The plain
// password never reaches the repository.
func (s *UserService) RegisterUser(ctx context.Context, input RegisterUserInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "UserService.RegisterUser")
	defer span.End()

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.Email == "" {
		return user.User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(input.Email, "@") {
		return user.User{}, fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}
	if len(input.Password) < 8 {
		return user.User{}, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	if input.Role == "" {
		input.Role = user.RoleCoach
	}
	if input.Plan == "" {
		input.Plan = user.PlanFree
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	now := s.now().UTC()
	u := user.User{
		ID:           userID,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Plan:         input.Plan,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, fmt.Errorf("%w: email already registered", ErrInvalidInput)
		}
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

// VerifyCredentials checks an email/password pair against the stored hash.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return user.User{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	}
	if !exists || !u.IsActive {
		return user.User{}, fmt.Errorf("%w: unknown or inactive account", ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return user.User{}, fmt.Errorf("%w: password mismatch", ErrUnauthorized)
	}

	return u, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (user.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, notFound("User")
	}

	return u, nil
}

func (s *UserService) ListUsers(ctx context.Context, f user.Filter) ([]user.User, error) {
	if f.Role != "" {
		if _, ok := user.AllRoles[f.Role]; !ok {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, f.Role)
		}
	}
	if f.Plan != "" {
		if _, ok := user.AllPlans[f.Plan]; !ok {
			return nil, fmt.Errorf("%w: unknown plan %q", ErrInvalidInput, f.Plan)
		}
	}

	users, err := s.userRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, p user.Patch) (user.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if p.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*p.Email))
		if email == "" || !strings.Contains(email, "@") {
			return user.User{}, fmt.Errorf("%w: email is malformed", ErrInvalidInput)
		}
		p.Email = &email
	}
	if p.Role != nil {
		if _, ok := user.AllRoles[*p.Role]; !ok {
			return user.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *p.Role)
		}
	}
	if p.Plan != nil {
		if _, ok := user.AllPlans[*p.Plan]; !ok {
			return user.User{}, fmt.Errorf("%w: unknown plan %q", ErrInvalidInput, *p.Plan)
		}
	}

	updated, exists, err := s.userRepo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, fmt.Errorf("%w: email already registered", ErrInvalidInput)
		}
		return user.User{}, fmt.Errorf("update user: %w", err)
	}
	if !exists {
		return user.User{}, notFound("User")
	}

	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}
