package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"miniblog/internal/model"
	"miniblog/internal/repository"
)

// UserService handles registration, login and profile settings.
type UserService struct {
	repo     repository.UserRepository
	validate *validator.Validate
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{
		repo:     repo,
		validate: validator.New(),
	}
}

// Register creates a new user account.
//
// The uniqueness pre-check is check-then-act: two concurrent registrations
// with the same username can both pass it. The database unique constraint is
// the backstop; the repository maps that violation to model.ErrUserExists so
// the loser of the race sees the same "already taken" message, never a 500.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validate.Struct(req); err != nil {
		return nil, registrationMessages(err)
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, model.ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrUserExists) {
			return nil, model.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user with username and password.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, model.NewValidationError("Please enter both username and password")
	}

	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		// Don't reveal whether username exists or not
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByUsername retrieves a user by username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// UpdateSettings updates the viewer's bio and account privacy flag.
func (s *UserService) UpdateSettings(ctx context.Context, userID int64, req *model.SettingsRequest) (*model.User, error) {
	return s.repo.UpdateProfile(ctx, userID, req.Bio, req.IsPrivate)
}

// registrationMessages converts validator failures into the inline form
// messages the registration page shows.
func registrationMessages(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return model.NewValidationError("Invalid registration data")
	}

	var messages []string
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Username":
			messages = append(messages, "Username must be at least 3 characters")
		case "Email":
			messages = append(messages, "Please enter a valid email")
		case "Password":
			messages = append(messages, "Password must be at least 6 characters")
		}
	}
	if len(messages) == 0 {
		messages = append(messages, "Invalid registration data")
	}
	return &model.ValidationError{Messages: messages}
}
