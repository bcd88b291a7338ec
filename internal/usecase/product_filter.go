package usecase

import "ophelia-market/internal/data/entity"

// FilterProducts keeps the products matching every non-nil predicate, in
// their original order. Matching is exact.
func FilterProducts(products []*entity.Product, gender *entity.Gender, category *entity.Category) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if gender != nil && p.Gender != *gender {
			continue
		}
		if category != nil && p.Category != *category {
			continue
		}
		out = append(out, p)
	}
	return out
}
