// Package usecase defines the application's use case interfaces and their
// input types. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"pricewatch/internal/domain/entity"
)

// UserUsecase exposes read access to the authenticated user's record.
type UserUsecase interface {
	// GetUser retrieves the user row behind an identity-provider subject.
	GetUser(ctx context.Context, id string) (*entity.User, error)
}
