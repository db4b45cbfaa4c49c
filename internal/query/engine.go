// Package query implements the stateless filter, search, sort and pagination
// engine over product snapshots. It only ever reads the slices handed to it
// and always returns freshly allocated result slices.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/arvela/catalog-service/internal/model"
)

// Filters narrows a product listing. Nil fields are skipped. The filters are
// applied conjunctively in a fixed order: category, minPrice, maxPrice,
// isActive, search, then pagination.
type Filters struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	IsActive *bool
	Search   string

	// Limit and Page only take effect when both are set; a lone value is
	// ignored entirely rather than half-applied.
	Limit *int
	Page  *int
}

// Options refines a search: post-match filters and an optional sort spec of
// the form "<field>:<direction>" (fields: price, name, date).
type Options struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
}

// Apply runs the Filters pipeline over a product snapshot.
func Apply(products []model.Product, f *Filters) []model.Product {
	result := append(make([]model.Product, 0, len(products)), products...)
	if f == nil {
		return result
	}

	if f.Category != "" {
		result = keep(result, func(p *model.Product) bool {
			return containsString(p.CategoryIDs, f.Category)
		})
	}
	if f.MinPrice != nil {
		result = keep(result, func(p *model.Product) bool { return p.Price >= *f.MinPrice })
	}
	if f.MaxPrice != nil {
		result = keep(result, func(p *model.Product) bool { return p.Price <= *f.MaxPrice })
	}
	if f.IsActive != nil {
		result = keep(result, func(p *model.Product) bool { return p.IsActive == *f.IsActive })
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		result = keep(result, func(p *model.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) ||
				strings.Contains(strings.ToLower(p.SKU), needle)
		})
	}
	if f.Limit != nil && f.Page != nil {
		result = Paginate(result, *f.Limit, *f.Page)
	}
	return result
}

// Search matches products by case-insensitive substring against name,
// description, SKU, and any string-typed attribute value, then applies the
// option filters and sort. An empty query yields an empty result: search
// requires a query, unlike Apply.
func Search(products []model.Product, queryText string, opts *Options) []model.Product {
	if queryText == "" {
		return []model.Product{}
	}

	needle := strings.ToLower(queryText)
	result := make([]model.Product, 0)
	for i := range products {
		if matches(&products[i], needle) {
			result = append(result, products[i])
		}
	}

	if opts == nil {
		return result
	}
	if opts.Category != "" {
		result = keep(result, func(p *model.Product) bool {
			return containsString(p.CategoryIDs, opts.Category)
		})
	}
	if opts.MinPrice != nil {
		result = keep(result, func(p *model.Product) bool { return p.Price >= *opts.MinPrice })
	}
	if opts.MaxPrice != nil {
		result = keep(result, func(p *model.Product) bool { return p.Price <= *opts.MaxPrice })
	}
	if opts.Sort != "" {
		Sort(result, opts.Sort)
	}
	return result
}

// Sort orders products in place by a "<field>:<direction>" spec. Supported
// fields are price (numeric), name (collation-aware), and date (dateCreated).
// Unrecognized fields leave the order unchanged; any direction other than
// "desc" sorts ascending.
func Sort(products []model.Product, spec string) {
	field, direction, _ := strings.Cut(spec, ":")
	asc := direction != "desc"

	var less func(a, b *model.Product) bool
	switch field {
	case "price":
		less = func(a, b *model.Product) bool { return a.Price < b.Price }
	case "name":
		cl := collate.New(language.English)
		less = func(a, b *model.Product) bool { return cl.CompareString(a.Name, b.Name) < 0 }
	case "date":
		less = func(a, b *model.Product) bool { return a.DateCreated.Before(b.DateCreated) }
	default:
		return
	}

	sort.SliceStable(products, func(i, j int) bool {
		if asc {
			return less(&products[i], &products[j])
		}
		return less(&products[j], &products[i])
	})
}

// Paginate slices out page (1-based) of size limit. Out-of-range pages yield
// an empty slice.
func Paginate(products []model.Product, limit, page int) []model.Product {
	if limit <= 0 || page <= 0 {
		return []model.Product{}
	}
	start := (page - 1) * limit
	if start >= len(products) {
		return []model.Product{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

func matches(p *model.Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.SKU), needle) {
		return true
	}
	for _, v := range p.Attributes {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func keep(products []model.Product, pred func(*model.Product) bool) []model.Product {
	out := products[:0]
	for i := range products {
		if pred(&products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
