package service

import (
	"context"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/andresproyectosx24/chayotex/internal/domain/repository"
	"github.com/andresproyectosx24/chayotex/pkg/apperror"
	"github.com/andresproyectosx24/chayotex/pkg/pagination"
	"github.com/google/uuid"
)

// ContactService manages the contact directory. Customers and suppliers
// share a shape but live in separate collections, so both repositories
// are held here and the handler picks the role.
type ContactService struct {
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
}

// NewContactService creates a new contact service
func NewContactService(
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
) *ContactService {
	return &ContactService{
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
	}
}

// ContactInput represents the create/update contact input
type ContactInput struct {
	Name  string
	Alias *string
	Phone *string
}

func (i *ContactInput) validate() error {
	if i.Name == "" {
		return apperror.NewValidationError("El nombre es obligatorio")
	}
	return nil
}

// CreateCustomer creates a customer contact
func (s *ContactService) CreateCustomer(ctx context.Context, input *ContactInput) (*entity.Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		Name:  input.Name,
		Alias: input.Alias,
		Phone: input.Phone,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *ContactService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Cliente no encontrado")
	}
	return customer, nil
}

// UpdateCustomer updates a customer contact
func (s *ContactService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *ContactInput) (*entity.Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.Alias = input.Alias
	customer.Phone = input.Phone

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer contact
func (s *ContactService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}

// ListCustomers lists customers with search and pagination
func (s *ContactService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// CreateSupplier creates a supplier contact
func (s *ContactService) CreateSupplier(ctx context.Context, input *ContactInput) (*entity.Supplier, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	supplier := &entity.Supplier{
		Name:  input.Name,
		Alias: input.Alias,
		Phone: input.Phone,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *ContactService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Proveedor no encontrado")
	}
	return supplier, nil
}

// UpdateSupplier updates a supplier contact
func (s *ContactService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *ContactInput) (*entity.Supplier, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	supplier, err := s.GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier.Name = input.Name
	supplier.Alias = input.Alias
	supplier.Phone = input.Phone

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier contact
func (s *ContactService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSupplier(ctx, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}

// ListSuppliers lists suppliers with search and pagination
func (s *ContactService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}
