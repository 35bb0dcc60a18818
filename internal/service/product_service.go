package service

import (
	"errors"
	"fmt"

	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"
	"github.com/maldura7/clover-inventory-system/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProductRequest mirrors the client payload. Reorder fields are
// pointers so an explicit 0 survives; nil falls back to the catalog
// defaults.
type CreateProductRequest struct {
	SKU             string  `json:"sku"`
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	CategoryName    string  `json:"categoryName"`
	CostPrice       float64 `json:"costPrice"`
	SellingPrice    float64 `json:"sellingPrice"`
	UnitOfMeasure   string  `json:"unitOfMeasure"`
	ReorderLevel    *int    `json:"reorderLevel"`
	ReorderQuantity *int    `json:"reorderQuantity"`
}

// UpdateProductRequest applies only the fields present in the body.
type UpdateProductRequest struct {
	SKU          *string  `json:"sku"`
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	CostPrice    *float64 `json:"costPrice"`
	SellingPrice *float64 `json:"sellingPrice"`
	ReorderLevel *int     `json:"reorderLevel"`
	IsActive     *bool    `json:"isActive"`
}

type ProductService interface {
	List() ([]repository.ProductWithStock, error)
	Get(id uuid.UUID) (*model.Product, error)
	Create(req *CreateProductRequest, actorID string) (*model.Product, error)
	Update(id uuid.UUID, req *UpdateProductRequest, actorID string) (*model.Product, error)
	Delete(id uuid.UUID) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) List() ([]repository.ProductWithStock, error) {
	return s.productRepo.FindAllWithStock()
}

func (s *productService) Get(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, apperr.NotFound("Product not found")
	}
	return product, nil
}

func (s *productService) Create(req *CreateProductRequest, actorID string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.Validation(fmt.Sprintf("Validation failed: field '%s' failed on '%s'", first.Field, first.Tag))
	}

	product := &model.Product{
		Name:            req.Name,
		Description:     req.Description,
		CategoryName:    req.CategoryName,
		CostPrice:       req.CostPrice,
		SellingPrice:    req.SellingPrice,
		UnitOfMeasure:   "unit",
		ReorderLevel:    10,
		ReorderQuantity: 50,
		IsActive:        true,
	}
	if req.UnitOfMeasure != "" {
		product.UnitOfMeasure = req.UnitOfMeasure
	}
	if req.ReorderLevel != nil {
		product.ReorderLevel = *req.ReorderLevel
	}
	if req.ReorderQuantity != nil {
		product.ReorderQuantity = *req.ReorderQuantity
	}
	if req.SKU != "" {
		if existing, _ := s.productRepo.FindBySKU(req.SKU); existing != nil {
			return nil, apperr.Conflict("SKU already exists")
		}
		sku := req.SKU
		product.SKU = &sku
	}
	product.CreatedBy = actorID
	product.UpdatedBy = actorID

	if err := s.productRepo.Create(product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("SKU already exists")
		}
		return nil, apperr.Internal(err)
	}

	return product, nil
}

func (s *productService) Update(id uuid.UUID, req *UpdateProductRequest, actorID string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, apperr.NotFound("Product not found")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperr.Validation("Product name is required")
		}
		product.Name = *req.Name
	}
	if req.SKU != nil {
		product.SKU = req.SKU
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.SellingPrice != nil {
		product.SellingPrice = *req.SellingPrice
	}
	if req.ReorderLevel != nil {
		product.ReorderLevel = *req.ReorderLevel
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.UpdatedBy = actorID

	if err := s.productRepo.Update(product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("SKU already exists")
		}
		return nil, apperr.Internal(err)
	}

	return product, nil
}

// Delete removes the product together with its inventory rows; the
// cascade lives in the repository transaction.
func (s *productService) Delete(id uuid.UUID) error {
	if err := s.productRepo.DeleteWithInventory(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Product not found")
		}
		return apperr.Internal(err)
	}
	return nil
}
