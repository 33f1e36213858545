// Package repository defines the persistence contracts the domain depends
// on. Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"pricewatch/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user lookup misses.
var ErrUserNotFound = errors.New("user not found")

// UserRepository reads the user rows synced by the external identity
// provider. The service never creates or mutates users.
type UserRepository interface {
	// FindByID retrieves a user by their identity-provider subject.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
