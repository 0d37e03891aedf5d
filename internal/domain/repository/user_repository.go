// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when another user already owns the email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in the generated timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update saves every column of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user. Deleting a missing user returns ErrUserNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns users filtered by status and, when userType is non-empty, by type.
	List(ctx context.Context, userType entity.UserType, status entity.Status) ([]*entity.User, error)
}
