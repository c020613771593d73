package product

import (
	"context"
	"strings"

	"github.com/luxtime/luxtime-backend/internal/cart"
	pkgerrors "github.com/luxtime/luxtime-backend/pkg/errors"
)

// Service exposes catalog reads and supplies product snapshots to the cart.
type Service interface {
	ListProducts(ctx context.Context, input ListInput) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id string) (*ProductDTO, error)
	CartProduct(ctx context.Context, id string) (cart.Product, error)
}

type service struct {
	repo Repository
}

// NewService builds the catalog service over repo.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "product repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListProducts(ctx context.Context, input ListInput) ([]ProductDTO, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return input.Apply(products), nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*ProductDTO, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if p == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
			WithDetails(map[string]any{"product_id": id})
	}
	return p, nil
}

func (s *service) CartProduct(ctx context.Context, id string) (cart.Product, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return cart.Product{}, err
	}
	return p.CartProduct(), nil
}
