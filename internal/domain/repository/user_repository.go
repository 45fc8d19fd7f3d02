package repository

import (
	"context"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	"github.com/google/uuid"
)

// UserRepository defines the interface for operator account operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
