package catalog

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/catalogd/catalogd/internal/domain"
)

func seedProducts(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		p := domain.Product{
			Sku:      fmt.Sprintf("SKU%03d", i),
			Name:     fmt.Sprintf("Product %d", i),
			Brand:    "SeedBrand",
			Mrp:      100,
			Price:    float64(i * 10),
			Quantity: i,
		}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed product %d: %v", i, err)
		}
	}
}

func TestListPagination(t *testing.T) {
	db := setupTestDB(t)
	seedProducts(t, db, 25)
	svc := NewService(db)

	cases := []struct {
		page      int
		wantItems int
	}{
		{1, 10},
		{2, 10},
		{3, 5},
		{4, 0},
	}
	for _, tc := range cases {
		page, err := svc.List(context.Background(), tc.page, 10)
		if err != nil {
			t.Fatalf("List(page=%d) error = %v", tc.page, err)
		}
		if len(page.Products) != tc.wantItems {
			t.Errorf("page %d: expected %d items, got %d", tc.page, tc.wantItems, len(page.Products))
		}
		if page.Pagination.TotalPages != 3 {
			t.Errorf("page %d: expected total_pages 3, got %d", tc.page, page.Pagination.TotalPages)
		}
		if page.Pagination.TotalProducts != 25 {
			t.Errorf("page %d: expected total_products 25, got %d", tc.page, page.Pagination.TotalProducts)
		}
		if page.Pagination.CurrentPage != tc.page {
			t.Errorf("expected current_page %d, got %d", tc.page, page.Pagination.CurrentPage)
		}
		if page.Pagination.ProductsPerPage != 10 {
			t.Errorf("expected products_per_page 10, got %d", page.Pagination.ProductsPerPage)
		}
	}
}

func TestListStableOrder(t *testing.T) {
	db := setupTestDB(t)
	seedProducts(t, db, 12)
	svc := NewService(db)

	page2, err := svc.List(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page2.Products) != 2 {
		t.Fatalf("expected 2 items on page 2, got %d", len(page2.Products))
	}
	if page2.Products[0].Sku != "SKU011" || page2.Products[1].Sku != "SKU012" {
		t.Errorf("expected insertion order, got %s, %s", page2.Products[0].Sku, page2.Products[1].Sku)
	}
}

func TestListEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	page, err := NewService(db).List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page.Products) != 0 {
		t.Errorf("expected empty page, got %d items", len(page.Products))
	}
	if page.Pagination.TotalPages != 0 {
		t.Errorf("expected total_pages 0, got %d", page.Pagination.TotalPages)
	}
}

func strptr(s string) *string { return &s }

func fptr(f float64) *float64 { return &f }

func TestSearchBrandSubstringCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&domain.Product{Sku: "N1", Name: "Shoe", Brand: "Nike Air", Mrp: 100, Price: 90})
	db.Create(&domain.Product{Sku: "A1", Name: "Shoe", Brand: "Adidas", Mrp: 100, Price: 80})

	found, err := NewService(db).Search(context.Background(), SearchFilter{Brand: "nike"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(found) != 1 || found[0].Sku != "N1" {
		t.Errorf("expected only Nike Air product, got %v", found)
	}
}

func TestSearchColorAndPriceBounds(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&domain.Product{Sku: "P1", Name: "A", Brand: "B", Color: strptr("Dark Blue"), Mrp: 200, Price: 100})
	db.Create(&domain.Product{Sku: "P2", Name: "B", Brand: "B", Color: strptr("Red"), Mrp: 200, Price: 150})
	db.Create(&domain.Product{Sku: "P3", Name: "C", Brand: "B", Color: strptr("blue"), Mrp: 200, Price: 200})

	svc := NewService(db)

	blue, err := svc.Search(context.Background(), SearchFilter{Color: "BLUE"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(blue) != 2 {
		t.Errorf("expected 2 blue products, got %d", len(blue))
	}

	// Bounds are inclusive.
	bounded, err := svc.Search(context.Background(), SearchFilter{MinPrice: fptr(100), MaxPrice: fptr(150)})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(bounded) != 2 {
		t.Errorf("expected 2 products in [100,150], got %d", len(bounded))
	}

	combined, err := svc.Search(context.Background(), SearchFilter{Color: "blue", MinPrice: fptr(150)})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(combined) != 1 || combined[0].Sku != "P3" {
		t.Errorf("expected only P3 for blue>=150, got %v", combined)
	}
}

func TestSearchNoFilters(t *testing.T) {
	db := setupTestDB(t)
	seedProducts(t, db, 5)

	found, err := NewService(db).Search(context.Background(), SearchFilter{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(found) != 5 {
		t.Errorf("expected all 5 products, got %d", len(found))
	}
}

func TestGetBySku(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&domain.Product{Sku: "SKU001", Name: "One", Brand: "B", Mrp: 10, Price: 5})

	svc := NewService(db)
	p, err := svc.GetBySku(context.Background(), "SKU001")
	if err != nil {
		t.Fatalf("GetBySku() error = %v", err)
	}
	if p.Name != "One" {
		t.Errorf("expected product One, got %+v", p)
	}

	if _, err := svc.GetBySku(context.Background(), "NOPE"); err != gorm.ErrRecordNotFound {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestClearAll(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	deleted, err := svc.ClearAll(context.Background())
	if err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deleted on empty store, got %d", deleted)
	}

	seedProducts(t, db, 7)
	deleted, err = svc.ClearAll(context.Background())
	if err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}
	if deleted != 7 {
		t.Errorf("expected 7 deleted, got %d", deleted)
	}

	var count int64
	db.Model(&domain.Product{}).Count(&count)
	if count != 0 {
		t.Errorf("expected empty store after clear, found %d", count)
	}
}
