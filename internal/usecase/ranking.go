package usecase

import (
	"sort"

	"github.com/cartwise/backend/internal/domain"
)

// DefaultTopN caps how many candidates per product reach the selection call.
const DefaultTopN = 10

// TopNPerProduct groups candidates by product, sorts each group ascending by
// unit price and keeps the n cheapest. The sort is stable, so equally priced
// listings keep the provider's original order. Groups come back concatenated
// in product name order.
func TopNPerProduct(candidates []domain.Candidate, n int) []domain.Candidate {
	if n <= 0 {
		n = DefaultTopN
	}

	groups := make(map[string][]domain.Candidate)
	products := make([]string, 0)
	for _, c := range candidates {
		if _, seen := groups[c.Product]; !seen {
			products = append(products, c.Product)
		}
		groups[c.Product] = append(groups[c.Product], c)
	}
	sort.Strings(products)

	ranked := make([]domain.Candidate, 0, len(candidates))
	for _, product := range products {
		group := groups[product]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].UnitPrice < group[j].UnitPrice
		})
		if len(group) > n {
			group = group[:n]
		}
		ranked = append(ranked, group...)
	}

	return ranked
}
