package repository

import (
	"context"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	"github.com/fieldserve/restoration-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SearchByPhone returns customers whose canonical phone contains the
	// given digit fragment. Used by the intake resolver's fuzzy match.
	SearchByPhone(ctx context.Context, phoneDigits string) ([]entity.Customer, error)
	// List returns customers with page-based pagination and optional
	// name/phone/email search.
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// ListWithCursor returns customers using cursor-based pagination.
	ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Customer, error)
}

// PropertyRepository defines the interface for property data operations
type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	// ListByCustomer returns all properties owned by a customer
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Property, error)
}
