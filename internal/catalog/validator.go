package catalog

import (
	"strings"

	"github.com/spf13/cast"
)

// RequiredFields are the columns every uploaded row must carry a
// non-blank value for.
var RequiredFields = []string{"sku", "name", "brand", "mrp", "price"}

func hasValue(row map[string]string, field string) bool {
	v, ok := row[field]
	return ok && strings.TrimSpace(v) != ""
}

// ValidateRow checks one header-keyed CSV row and returns all findings as
// human-readable messages. Every rule is evaluated, nothing short-circuits,
// and a fully valid row yields nil.
//
// A present but non-numeric mrp/price is reported as its own error so the
// record builder never sees an unparseable value; the price/MRP comparison
// and the quantity rule are silently skipped when their inputs do not parse.
func ValidateRow(row map[string]string) []string {
	var errs []string

	for _, field := range RequiredFields {
		if !hasValue(row, field) {
			errs = append(errs, "Missing required field: "+field)
		}
	}

	for _, field := range []string{"mrp", "price"} {
		if hasValue(row, field) {
			if _, err := cast.ToFloat64E(strings.TrimSpace(row[field])); err != nil {
				errs = append(errs, "Invalid number for field: "+field)
			}
		}
	}

	if hasValue(row, "price") && hasValue(row, "mrp") {
		price, perr := cast.ToFloat64E(strings.TrimSpace(row["price"]))
		mrp, merr := cast.ToFloat64E(strings.TrimSpace(row["mrp"]))
		if perr == nil && merr == nil && price > mrp {
			errs = append(errs, "Price must be less than or equal to MRP")
		}
	}

	if hasValue(row, "quantity") {
		if qty, err := cast.ToFloat64E(strings.TrimSpace(row["quantity"])); err == nil && qty < 0 {
			errs = append(errs, "Quantity must be greater than or equal to 0")
		}
	}

	return errs
}
