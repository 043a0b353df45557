package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskboard/domain/apperrors"
	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) services.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, email, name, password string, flags models.UserFlags) (*models.User, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("email", "This field is required.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		ID:          uuid.New(),
		Email:       email,
		Name:        name,
		Password:    string(hashedPassword),
		IsActive:    true,
		IsStaff:     flags.IsStaff,
		IsSuperuser: flags.IsSuperuser,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "email", email, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User created", "user_id", user.ID, "email", user.Email)

	return user, nil
}

func (s *UserServiceImpl) CreateSuperuser(ctx context.Context, email, name, password string, flags *models.UserFlags) (*models.User, error) {
	if flags == nil {
		flags = &models.UserFlags{IsStaff: true, IsSuperuser: true}
	}
	if !flags.IsStaff {
		return nil, apperrors.NewValidationError("is_staff", "Superuser must have is_staff=true.")
	}
	if !flags.IsSuperuser {
		return nil, apperrors.NewValidationError("is_superuser", "Superuser must have is_superuser=true.")
	}

	return s.CreateUser(ctx, email, name, password, *flags)
}

func (s *UserServiceImpl) Register(ctx context.Context, form *dto.RegisterForm) (*models.User, error) {
	exists, err := s.userRepo.EmailExists(ctx, form.Email)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check email uniqueness", "error", err)
		return nil, err
	}
	if exists {
		logger.WarnContext(ctx, "Registration with existing email", "email", form.Email)
		return nil, apperrors.NewValidationError("email", "This email is already in use.")
	}

	return s.CreateUser(ctx, form.Email, form.Name, form.Password, models.UserFlags{})
}

func (s *UserServiceImpl) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.WarnContext(ctx, "Login failed - email not found", "email", email)
		return nil, &apperrors.AuthError{Message: apperrors.MsgInvalidLogin}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return nil, &apperrors.AuthError{Message: apperrors.MsgInvalidLogin}
	}

	if !user.IsActive {
		logger.WarnContext(ctx, "Login failed - account inactive", "user_id", user.ID)
		return nil, &apperrors.AuthError{Message: apperrors.MsgInactiveAccount}
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		// Login still succeeds when the timestamp write fails.
		logger.WarnContext(ctx, "Failed to record last login", "user_id", user.ID, "error", err)
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)

	return user, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}
