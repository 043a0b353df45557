package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type UserService interface {
	// CreateUser stores a user with a hashed password. Flags default to
	// a plain account; an empty email is a validation error.
	CreateUser(ctx context.Context, email, name, password string, flags models.UserFlags) (*models.User, error)
	// CreateSuperuser requires both flags to resolve true. Passing nil
	// flags uses the elevated defaults.
	CreateSuperuser(ctx context.Context, email, name, password string, flags *models.UserFlags) (*models.User, error)
	// Register runs the uniqueness check and creates a plain account.
	Register(ctx context.Context, form *dto.RegisterForm) (*models.User, error)
	// VerifyCredentials returns an AuthError that does not distinguish
	// an unknown email from a wrong password.
	VerifyCredentials(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
