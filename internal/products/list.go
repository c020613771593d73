package product

import (
	"sort"
	"strings"

	"github.com/luxtime/luxtime-backend/pkg/enums"
	pkgerrors "github.com/luxtime/luxtime-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Sort orders accepted by ListInput.Sort.
const (
	SortCatalog   = enums.ProductSortCatalog
	SortPriceAsc  = enums.ProductSortPriceAsc
	SortPriceDesc = enums.ProductSortPriceDesc
	SortName      = enums.ProductSortName
)

// ListInput filters the catalog. Empty slices and nil bounds match everything.
// Brands, materials and styles match case-insensitively; a product matches the
// style filter when it carries any of the requested styles.
type ListInput struct {
	Brands     []string
	Styles     []string
	Materials  []string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Query      string
	Featured   bool
	Bestseller bool
	NewArrival bool
	Sort       enums.ProductSort
}

// Validate rejects inverted price ranges and unknown sort orders.
func (in ListInput) Validate() error {
	if in.MinPrice != nil && in.MinPrice.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "min_price cannot be negative")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && in.MinPrice.GreaterThan(*in.MaxPrice) {
		return pkgerrors.New(pkgerrors.CodeValidation, "min_price cannot exceed max_price")
	}
	if !in.Sort.IsValid() {
		return pkgerrors.Newf(pkgerrors.CodeValidation, "unsupported sort %q", in.Sort).
			WithDetails(map[string]any{"field": "sort"})
	}
	return nil
}

func (in ListInput) matches(p ProductDTO) bool {
	if len(in.Brands) > 0 && !containsFold(in.Brands, p.Brand) {
		return false
	}
	if len(in.Styles) > 0 && !anyFold(in.Styles, p.Styles) {
		return false
	}
	if len(in.Materials) > 0 && !containsFold(in.Materials, p.Specifications.CaseMaterial) {
		return false
	}
	if in.Featured && !p.Featured {
		return false
	}
	if in.Bestseller && !p.Bestseller {
		return false
	}
	if in.NewArrival && !p.NewArrival {
		return false
	}

	price := p.EffectivePrice()
	if in.MinPrice != nil && price.LessThan(*in.MinPrice) {
		return false
	}
	if in.MaxPrice != nil && price.GreaterThan(*in.MaxPrice) {
		return false
	}

	if term := strings.ToLower(strings.TrimSpace(in.Query)); term != "" {
		return strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
	}
	return true
}

// Apply filters and orders products without modifying the input slice.
func (in ListInput) Apply(products []ProductDTO) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		if in.matches(p) {
			out = append(out, p)
		}
	}

	switch in.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice().LessThan(out[j].EffectivePrice())
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice().GreaterThan(out[j].EffectivePrice())
		})
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}

func anyFold(wanted, have []string) bool {
	for _, h := range have {
		if containsFold(wanted, h) {
			return true
		}
	}
	return false
}
