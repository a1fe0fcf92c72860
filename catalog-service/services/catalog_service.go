package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/aurora-jewelry/aurora-store/catalog-service/models"
	"github.com/aurora-jewelry/aurora-store/catalog-service/repository"
	"go.uber.org/zap"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// FeaturedCount is the size of the fixed featured window.
const FeaturedCount = 3

// CatalogService defines the business logic interface over the catalog.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, *ServiceError)
	GetProduct(ctx context.Context, id int) (*models.Product, *ServiceError)
	ListByCategory(ctx context.Context, category string) ([]models.Product, *ServiceError)
	Search(ctx context.Context, query string) ([]models.Product, *ServiceError)
	Featured(ctx context.Context) ([]models.Product, *ServiceError)
}

type catalogServiceImpl struct {
	repo   repository.CatalogRepository
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repository.CatalogRepository, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{repo: repo, logger: logger}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("ListProducts failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch products"}
	}
	return products, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id int) (*models.Product, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
		}
		s.logger.Error("GetProduct failed", zap.Int("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch product"}
	}
	return product, nil
}

func (s *catalogServiceImpl) ListByCategory(ctx context.Context, category string) ([]models.Product, *ServiceError) {
	products, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		s.logger.Error("ListByCategory failed", zap.String("category", category), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch products"}
	}
	return products, nil
}

func (s *catalogServiceImpl) Search(ctx context.Context, query string) ([]models.Product, *ServiceError) {
	products, err := s.repo.Search(ctx, query)
	if err != nil {
		s.logger.Error("Search failed", zap.String("query", query), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to search products"}
	}
	return products, nil
}

func (s *catalogServiceImpl) Featured(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.repo.Featured(ctx, FeaturedCount)
	if err != nil {
		s.logger.Error("Featured failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch featured products"}
	}
	return products, nil
}
