package helpers

import (
	"sort"
	"strings"

	"go-foodie-storefront/models"
)

// GroupByCategory partitions menu items by their category key (lowercased).
func GroupByCategory(items []models.MenuItem) map[string][]models.MenuItem {
	grouped := make(map[string][]models.MenuItem)
	for _, item := range items {
		if item.Category == "" {
			continue
		}
		key := strings.ToLower(item.Category)
		grouped[key] = append(grouped[key], item)
	}
	return grouped
}

// FilterOptions returns the categories worth offering as filter buttons:
// only those with at least one item, ordered by display name.
func FilterOptions(categories []models.Category, items []models.MenuItem) []models.Category {
	grouped := GroupByCategory(items)
	options := make([]models.Category, 0, len(categories))
	for _, cat := range categories {
		if cat.Name == "" {
			continue
		}
		if len(grouped[strings.ToLower(cat.Name)]) > 0 {
			options = append(options, cat)
		}
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].DisplayName < options[j].DisplayName
	})
	return options
}

// DisplayName resolves a category key against the fetched category list.
// The formatted fallback only fires when the backend returned an item whose
// category has no matching record.
func DisplayName(categories []models.Category, key string) string {
	for _, cat := range categories {
		if strings.EqualFold(cat.Name, key) {
			return cat.DisplayName
		}
	}
	return TitleizeSlug(key)
}

// TitleizeSlug turns "main-course" into "Main course".
func TitleizeSlug(key string) string {
	if key == "" {
		return ""
	}
	s := strings.ReplaceAll(key, "-", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}
