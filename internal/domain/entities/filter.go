package entities

import "strings"

// FilterAll is the wildcard criterion value matching every product.
const FilterAll = "All"

// FilterCriteria narrows the catalog. Empty fields (or FilterAll) match
// everything; MaxPrice of zero means no price cap.
type FilterCriteria struct {
	Shape    string
	Clarity  string
	Color    string
	Type     string
	Query    string
	MaxPrice int64
}

// FilterProducts returns the products satisfying every active criterion,
// in catalog order. The query is trimmed and matched case-insensitively
// against the product's name, type, shape, clarity and colour.
func FilterProducts(catalog []Product, c FilterCriteria) []Product {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	matched := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if !criterionMatches(c.Shape, p.Shape) {
			continue
		}
		if !criterionMatches(c.Clarity, p.Clarity) {
			continue
		}
		if !criterionMatches(c.Color, p.Color) {
			continue
		}
		if !criterionMatches(c.Type, string(p.Type)) {
			continue
		}
		if c.MaxPrice > 0 && p.Price > c.MaxPrice {
			continue
		}
		if query != "" && !strings.Contains(searchText(p), query) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func criterionMatches(criterion, value string) bool {
	return criterion == "" || criterion == FilterAll || criterion == value
}

func searchText(p Product) string {
	return strings.ToLower(p.Name + " " + string(p.Type) + " " + p.Shape + " " + p.Clarity + " " + p.Color)
}
