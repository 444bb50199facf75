// Package reporting aggregates raw sales, post and product records into the
// presentation-ready dashboard report. The aggregation functions are pure:
// they perform no I/O and keep no state between runs.
package reporting

import (
	"sort"

	"github.com/talentbms/talent-bms-api/internal/domain"
)

// topProductRows caps the product-performance table.
const topProductRows = 10

// TotalRevenue sums the kind-dependent value of every sale: GMV for general
// sales, revenue for content sales. Absent fields count as zero.
func TotalRevenue(sales []*domain.Sale) int64 {
	var total int64
	for _, sale := range sales {
		total += sale.Value()
	}
	return total
}

// TotalCommission sums the commission field across all sales.
func TotalCommission(sales []*domain.Sale) int64 {
	var total int64
	for _, sale := range sales {
		total += sale.Commission
	}
	return total
}

// GroupByTalent sums sale values per talent name, preserving the order in
// which each talent first appears in the input.
func GroupByTalent(sales []*domain.Sale) []domain.TalentRevenue {
	groups := make([]domain.TalentRevenue, 0)
	index := make(map[string]int)

	for _, sale := range sales {
		if i, ok := index[sale.TalentName]; ok {
			groups[i].Value += sale.Value()
			continue
		}
		index[sale.TalentName] = len(groups)
		groups = append(groups, domain.TalentRevenue{
			Name:  sale.TalentName,
			Value: sale.Value(),
		})
	}

	return groups
}

// GroupByPlatform counts posts per platform, first-seen order preserved.
func GroupByPlatform(posts []*domain.Post) []domain.PlatformCount {
	groups := make([]domain.PlatformCount, 0)
	index := make(map[string]int)

	for _, post := range posts {
		if i, ok := index[post.Platform]; ok {
			groups[i].Count++
			continue
		}
		index[post.Platform] = len(groups)
		groups = append(groups, domain.PlatformCount{
			Name:  post.Platform,
			Count: 1,
		})
	}

	return groups
}

// ProductPerformance builds the ranked product table. Each product gets the
// count of posts linking to it and the revenue attributed to it.
//
// Revenue attribution has two paths:
//   - direct: content sales whose productId matches the product;
//   - legacy indirect: content sales without a productId whose
//     legacyLinkedPostId matches one of the product's posts. This path
//     predates direct product linkage and is only honored on the all-time
//     view; the ranged view considers direct linkage alone.
//
// Rows are sorted descending by revenue (stable, catalog order on ties). The
// ranged view drops rows with no posts and no revenue before truncation;
// both views return at most the top 10 rows.
func ProductPerformance(
	products []*domain.Product,
	posts []*domain.Post,
	sales []*domain.Sale,
	ranged bool,
) []*domain.ProductPerformance {
	// Posts and sales indexed once; the table is rebuilt on every refresh.
	postsByProduct := make(map[string][]*domain.Post)
	for _, post := range posts {
		if post.ProductID != "" {
			postsByProduct[post.ProductID] = append(postsByProduct[post.ProductID], post)
		}
	}

	rows := make([]*domain.ProductPerformance, 0, len(products))
	for _, product := range products {
		relatedPosts := postsByProduct[product.ID]

		row := &domain.ProductPerformance{
			ProductID:   product.ID,
			Name:        product.Name,
			AccountName: product.AccountName,
			Posts:       len(relatedPosts),
		}

		row.Revenue = directRevenue(sales, product.ID)
		if !ranged {
			row.Revenue += legacyIndirectRevenue(sales, relatedPosts)
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})

	if ranged {
		filtered := rows[:0]
		for _, row := range rows {
			if row.Posts > 0 || row.Revenue > 0 {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	if len(rows) > topProductRows {
		rows = rows[:topProductRows]
	}

	return rows
}

// ActiveProductCount counts products that have activity. On the ranged view
// the rows are already filtered down to active ones.
func ActiveProductCount(rows []*domain.ProductPerformance, ranged bool) int {
	if ranged {
		return len(rows)
	}

	count := 0
	for _, row := range rows {
		if row.Posts > 0 || row.Revenue > 0 {
			count++
		}
	}
	return count
}

func directRevenue(sales []*domain.Sale, productID string) int64 {
	var total int64
	for _, sale := range sales {
		if sale.Kind == domain.SaleKindContent && sale.ProductID == productID {
			total += sale.Revenue
		}
	}
	return total
}

func legacyIndirectRevenue(sales []*domain.Sale, relatedPosts []*domain.Post) int64 {
	if len(relatedPosts) == 0 {
		return 0
	}

	postIDs := make(map[string]bool, len(relatedPosts))
	for _, post := range relatedPosts {
		postIDs[post.ID] = true
	}

	var total int64
	for _, sale := range sales {
		if sale.Kind == domain.SaleKindContent &&
			sale.ProductID == "" &&
			sale.LegacyLinkedPostID != "" &&
			postIDs[sale.LegacyLinkedPostID] {
			total += sale.Revenue
		}
	}
	return total
}
