package service

import (
	"context"
	"time"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	"github.com/fieldserve/restoration-api/internal/domain/repository"
	"github.com/fieldserve/restoration-api/pkg/apperror"
	"github.com/fieldserve/restoration-api/pkg/pagination"
	"github.com/fieldserve/restoration-api/pkg/utils"
	"github.com/google/uuid"
)

// CustomerService handles customer CRM operations outside the intake flow
type CustomerService struct {
	customerRepo repository.CustomerRepository
	propertyRepo repository.PropertyRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, propertyRepo repository.PropertyRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, propertyRepo: propertyRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Phone   string
	Email   *string
	Company *string
	Source  *string
	Notes   *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:    input.Name,
		Phone:   utils.NormalizePhone(input.Phone),
		Email:   input.Email,
		Company: input.Company,
		Source:  input.Source,
		Notes:   input.Notes,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with page-based pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// ListCustomersWithCursor lists customers using cursor-based pagination
func (s *CustomerService) ListCustomersWithCursor(ctx context.Context, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Customer], error) {
	customers, err := s.customerRepo.ListWithCursor(ctx, params, search)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(customers, params.Limit,
		func(c entity.Customer) string { return c.ID.String() },
		func(c entity.Customer) time.Time { return c.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID              uuid.UUID
	Name            *string
	Phone           *string
	Email           *string
	Company         *string
	Status          *string
	Source          *string
	LastContactType *string
	Notes           *string
}

// UpdateCustomer updates a customer. This is the administrative edit path;
// the intake flow itself never rewrites identity fields.
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = utils.NormalizePhone(*input.Phone)
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Company != nil {
		customer.Company = input.Company
	}
	if input.Status != nil {
		customer.Status = *input.Status
	}
	if input.Source != nil {
		customer.Source = input.Source
	}
	if input.LastContactType != nil {
		now := time.Now()
		customer.LastContactAt = &now
		customer.LastContactType = input.LastContactType
	}
	if input.Notes != nil {
		customer.Notes = input.Notes
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, id)
}

// ListProperties returns all properties belonging to a customer
func (s *CustomerService) ListProperties(ctx context.Context, customerID uuid.UUID) ([]entity.Property, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	return s.propertyRepo.ListByCustomer(ctx, customerID)
}

// GetProperty retrieves a property by ID
func (s *CustomerService) GetProperty(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperror.NewNotFoundError("Property")
	}
	return property, nil
}

// UpdatePropertyInput represents the update property input
type UpdatePropertyInput struct {
	ID        uuid.UUID
	Address   *string
	City      *string
	State     *string
	Zip       *string
	Latitude  *float64
	Longitude *float64
	Notes     *string
}

// UpdateProperty edits an existing property (operator correction path)
func (s *CustomerService) UpdateProperty(ctx context.Context, input *UpdatePropertyInput) (*entity.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperror.NewNotFoundError("Property")
	}

	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.City != nil {
		city := *input.City
		if city == "" {
			city = "Unknown"
		}
		property.City = city
	}
	if input.State != nil {
		property.State = *input.State
	}
	if input.Zip != nil {
		property.Zip = *input.Zip
	}
	if input.Latitude != nil {
		property.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		property.Longitude = input.Longitude
	}
	if input.Notes != nil {
		property.Notes = input.Notes
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}
