package catalog

import (
	"context"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/catalogd/catalogd/internal/domain"
)

// FormatError means the uploaded bytes could not be parsed as CSV at all.
// It is the only upload-fatal client error the pipeline produces; row-level
// problems are collected into the summary instead.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "Invalid CSV format: " + e.Reason
}

// RowError records the validation findings for one 1-indexed CSV data row.
type RowError struct {
	Row    int      `json:"row"`
	Errors []string `json:"errors"`
}

// ImportSummary is the structured result of one CSV upload.
type ImportSummary struct {
	Message               string     `json:"message"`
	TotalRows             int        `json:"total_rows"`
	ValidProductsStored   int        `json:"valid_products_stored"`
	ValidationErrorsCount int        `json:"validation_errors_count"`
	SkippedDuplicates     int        `json:"skipped_duplicates"`
	Errors                []RowError `json:"errors"`
}

// Importer runs the CSV ingestion pipeline: parse, per-row validation,
// duplicate-SKU skip, and a single-transaction batch insert.
type Importer struct {
	db *gorm.DB
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// ImportCSV processes one uploaded CSV document. Rows failing validation are
// reported in the summary and never abort the rest of the upload; rows whose
// SKU already exists (in the store or earlier in the same file) are counted
// as skipped duplicates, not errors. All surviving rows commit in one
// transaction, so a storage failure leaves nothing from the batch behind.
func (im *Importer) ImportCSV(ctx context.Context, r io.Reader) (*ImportSummary, error) {
	rows, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, &FormatError{Reason: err.Error()}
	}

	summary := &ImportSummary{
		Message: "Successfully processed CSV file",
		Errors:  []RowError{},
	}
	summary.TotalRows = len(rows)

	candidates := make([]domain.Product, 0, len(rows))
	for i, row := range rows {
		if rowErrs := ValidateRow(row); len(rowErrs) > 0 {
			summary.Errors = append(summary.Errors, RowError{Row: i + 1, Errors: rowErrs})
			continue
		}
		candidates = append(candidates, buildProduct(row))
	}
	summary.ValidationErrorsCount = len(summary.Errors)

	err = im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seen := make(map[string]struct{}, len(candidates))
		for i := range candidates {
			p := candidates[i]
			if _, dup := seen[p.Sku]; dup {
				summary.SkippedDuplicates++
				continue
			}

			var count int64
			if err := tx.Model(&domain.Product{}).Where("sku = ?", p.Sku).Count(&count).Error; err != nil {
				return errors.Wrap(err, "query existing sku")
			}
			if count > 0 {
				summary.SkippedDuplicates++
				continue
			}

			if err := tx.Create(&p).Error; err != nil {
				return errors.Wrapf(err, "insert product %s", p.Sku)
			}
			seen[p.Sku] = struct{}{}
			summary.ValidProductsStored++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("csv import processed",
		zap.Int("total_rows", summary.TotalRows),
		zap.Int("stored", summary.ValidProductsStored),
		zap.Int("validation_errors", summary.ValidationErrorsCount),
		zap.Int("skipped_duplicates", summary.SkippedDuplicates))

	return summary, nil
}

// buildProduct normalizes a row that already passed validation, so the
// numeric conversions here cannot fail.
func buildProduct(row map[string]string) domain.Product {
	mrp, _ := cast.ToFloat64E(strings.TrimSpace(row["mrp"]))
	price, _ := cast.ToFloat64E(strings.TrimSpace(row["price"]))

	return domain.Product{
		Sku:      strings.TrimSpace(row["sku"]),
		Name:     strings.TrimSpace(row["name"]),
		Brand:    strings.TrimSpace(row["brand"]),
		Color:    optionalField(row, "color"),
		Size:     optionalField(row, "size"),
		Mrp:      mrp,
		Price:    price,
		Quantity: quantityField(row),
	}
}

func optionalField(row map[string]string, field string) *string {
	v, ok := row[field]
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// quantityField defaults to 0 when the column is absent, blank, or not an
// integer.
func quantityField(row map[string]string) int {
	v, ok := row["quantity"]
	if !ok {
		return 0
	}
	n, err := cast.ToInt64E(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return int(n)
}
