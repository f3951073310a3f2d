package catalog

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/catalogd/catalogd/internal/domain"
)

// Pagination carries the page metadata returned alongside a product listing.
type Pagination struct {
	CurrentPage     int   `json:"current_page"`
	TotalPages      int   `json:"total_pages"`
	TotalProducts   int64 `json:"total_products"`
	ProductsPerPage int   `json:"products_per_page"`
}

// ProductPage is one page of the catalog listing.
type ProductPage struct {
	Products   []domain.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`
}

// SearchFilter holds the optional search constraints; zero/nil fields impose
// no constraint and all present filters are AND-combined.
type SearchFilter struct {
	Brand    string
	Color    string
	MinPrice *float64
	MaxPrice *float64
}

// Service is the read/clear facade over the product store.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns page (>=1) of at most limit records in insertion order plus
// pagination metadata. Pages past the end come back empty with the metadata
// still correct.
func (s *Service) List(ctx context.Context, page, limit int) (*ProductPage, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "count products")
	}

	products := make([]domain.Product, 0, limit)
	offset := (page - 1) * limit
	if err := s.db.WithContext(ctx).
		Order("id ASC").Offset(offset).Limit(limit).
		Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ProductPage{
		Products: products,
		Pagination: Pagination{
			CurrentPage:     page,
			TotalPages:      totalPages,
			TotalProducts:   total,
			ProductsPerPage: limit,
		},
	}, nil
}

// ilike applies a case-insensitive substring match on column. Postgres has
// ILIKE; other dialects fall back to LOWER LIKE.
func ilike(db *gorm.DB, column, term string) *gorm.DB {
	if strings.EqualFold(db.Name(), "postgres") {
		return db.Where(column+" ILIKE ?", "%"+term+"%")
	}
	return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(term)+"%")
}

// Search returns every record matching the filter, unpaginated.
func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]domain.Product, error) {
	db := s.db.WithContext(ctx).Model(&domain.Product{})

	if brand := strings.TrimSpace(filter.Brand); brand != "" {
		db = ilike(db, "brand", brand)
	}
	if color := strings.TrimSpace(filter.Color); color != "" {
		db = ilike(db, "color", color)
	}
	if filter.MinPrice != nil {
		db = db.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		db = db.Where("price <= ?", *filter.MaxPrice)
	}

	products := make([]domain.Product, 0)
	if err := db.Order("id ASC").Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "search products")
	}
	return products, nil
}

// GetBySku looks up a single product; gorm.ErrRecordNotFound passes through
// for the caller to map.
func (s *Service) GetBySku(ctx context.Context, sku string) (*domain.Product, error) {
	var p domain.Product
	if err := s.db.WithContext(ctx).Where("sku = ?", sku).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ClearAll deletes every product and reports how many went away.
func (s *Service) ClearAll(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("1 = 1").Delete(&domain.Product{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "clear products")
	}
	return result.RowsAffected, nil
}
