package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/luxtime/luxtime-backend/internal/repo"
	"github.com/luxtime/luxtime-backend/pkg/db"
	"github.com/luxtime/luxtime-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads catalog products. FindByID returns (nil, nil) for unknown ids.
type Repository interface {
	List(ctx context.Context) ([]ProductDTO, error)
	FindByID(ctx context.Context, id string) (*ProductDTO, error)
}

// GormRepository reads the products table in catalog position order.
type GormRepository struct {
	repo.Base
}

func NewRepository(conn *gorm.DB) *GormRepository {
	return &GormRepository{Base: repo.NewBase(conn)}
}

func (r *GormRepository) List(ctx context.Context) ([]ProductDTO, error) {
	var rows []models.Product
	if err := r.DB(ctx).Order("position ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]ProductDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dtoFromModel(row))
	}
	return out, nil
}

func (r *GormRepository) FindByID(ctx context.Context, id string) (*ProductDTO, error) {
	var row models.Product
	if err := r.DB(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	dto := dtoFromModel(row)
	return &dto, nil
}

// Seed upserts products keeping their slice order as catalog position.
func (r *GormRepository) Seed(ctx context.Context, products []ProductDTO) error {
	if len(products) == 0 {
		return nil
	}
	rows := make([]models.Product, 0, len(products))
	for i, p := range products {
		rows = append(rows, modelFromDTO(p, i+1))
	}
	if err := r.Upsert(ctx, &rows, []string{"id"}); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

// SeedCatalog upserts products in a single transaction so a failed seed
// leaves the previous catalog intact.
func SeedCatalog(ctx context.Context, client *db.Client, products []ProductDTO) error {
	return client.WithTx(ctx, func(tx *gorm.DB) error {
		return NewRepository(tx).Seed(ctx, products)
	})
}

// MemoryRepository serves a fixed product list.
type MemoryRepository struct {
	products []ProductDTO
	byID     map[string]int
}

func NewMemoryRepository(products []ProductDTO) *MemoryRepository {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[strings.TrimSpace(p.ID)] = i
	}
	return &MemoryRepository{products: products, byID: byID}
}

func (r *MemoryRepository) List(context.Context) ([]ProductDTO, error) {
	return append([]ProductDTO(nil), r.products...), nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*ProductDTO, error) {
	idx, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, nil
	}
	p := r.products[idx]
	return &p, nil
}
