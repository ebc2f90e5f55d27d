package catalog

import (
	"strings"

	"github.com/avasin/brewmart/internal/models"
)

// Filter derives the search/category view of a catalog. A product matches
// the term when the term (case-insensitive) is a substring of its title,
// description, or category; the empty term matches everything. A product
// matches the category when it is models.CategoryAll or equal to the
// product's category. The result preserves catalog order and is always a
// freshly allocated slice.
//
// Pure function of its inputs; safe to call on every keystroke.
func Filter(catalog []models.Product, searchTerm string, category models.Category) []models.Product {
	term := strings.ToLower(searchTerm)

	result := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(string(p.Category)), term) {
			continue
		}
		if category != models.CategoryAll && p.Category != category {
			continue
		}
		result = append(result, p)
	}
	return result
}
