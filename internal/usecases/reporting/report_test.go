package reporting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talentbms/talent-bms-api/internal/domain"
)

func generalSale(talent string, gmv int64) *domain.Sale {
	return &domain.Sale{
		Kind:       domain.SaleKindGeneral,
		TalentName: talent,
		GMV:        gmv,
	}
}

func contentSale(talent string, revenue int64, productID string) *domain.Sale {
	return &domain.Sale{
		Kind:       domain.SaleKindContent,
		TalentName: talent,
		Revenue:    revenue,
		ProductID:  productID,
	}
}

func legacySale(talent string, revenue int64, postID string) *domain.Sale {
	return &domain.Sale{
		Kind:               domain.SaleKindContent,
		TalentName:         talent,
		Revenue:            revenue,
		LegacyLinkedPostID: postID,
	}
}

func TestTotalRevenue_KindDependentValue(t *testing.T) {
	sales := []*domain.Sale{
		// General sales count GMV, content sales count revenue. The other
		// field must be ignored even when set.
		{Kind: domain.SaleKindGeneral, GMV: 100_000, Revenue: 999},
		{Kind: domain.SaleKindContent, Revenue: 50_000, GMV: 999},
		{Kind: domain.SaleKindGeneral}, // absent fields count as zero
	}

	assert.Equal(t, int64(150_000), TotalRevenue(sales))
}

func TestTotalRevenue_Empty(t *testing.T) {
	assert.Equal(t, int64(0), TotalRevenue(nil))
	assert.Equal(t, int64(0), TotalRevenue([]*domain.Sale{}))
}

func TestTotalCommission(t *testing.T) {
	sales := []*domain.Sale{
		{Kind: domain.SaleKindGeneral, Commission: 10_000},
		{Kind: domain.SaleKindContent, Commission: 5_000},
	}

	assert.Equal(t, int64(15_000), TotalCommission(sales))
}

func TestGroupByTalent_FirstSeenOrder(t *testing.T) {
	sales := []*domain.Sale{
		generalSale("Ana", 100),
		generalSale("Bia", 200),
		contentSale("Ana", 50, "p1"),
		generalSale("Cris", 300),
		contentSale("Bia", 25, "p1"),
	}

	groups := GroupByTalent(sales)

	assert.Equal(t, []domain.TalentRevenue{
		{Name: "Ana", Value: 150},
		{Name: "Bia", Value: 225},
		{Name: "Cris", Value: 300},
	}, groups)
}

func TestGroupByTalent_Empty(t *testing.T) {
	groups := GroupByTalent(nil)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupByPlatform_FirstSeenOrder(t *testing.T) {
	posts := []*domain.Post{
		{Platform: domain.PlatformTikTok},
		{Platform: domain.PlatformInstagram},
		{Platform: domain.PlatformTikTok},
		{Platform: domain.PlatformShopee},
		{Platform: domain.PlatformTikTok},
	}

	groups := GroupByPlatform(posts)

	assert.Equal(t, []domain.PlatformCount{
		{Name: domain.PlatformTikTok, Count: 3},
		{Name: domain.PlatformInstagram, Count: 1},
		{Name: domain.PlatformShopee, Count: 1},
	}, groups)
}

func TestProductPerformance_LegacyAttributionAllTimeOnly(t *testing.T) {
	products := []*domain.Product{
		{ID: "prod1", Name: "Serum"},
	}
	posts := []*domain.Post{
		{ID: "post1", ProductID: "prod1"},
	}
	sales := []*domain.Sale{
		contentSale("Ana", 1000, "prod1"), // direct
		legacySale("Ana", 500, "post1"),   // legacy, via post1 -> prod1
	}

	allTime := ProductPerformance(products, posts, sales, false)
	assert.Len(t, allTime, 1)
	assert.Equal(t, int64(1500), allTime[0].Revenue)
	assert.Equal(t, 1, allTime[0].Posts)

	// The ranged view honors direct attribution only.
	ranged := ProductPerformance(products, posts, sales, true)
	assert.Len(t, ranged, 1)
	assert.Equal(t, int64(1000), ranged[0].Revenue)
}

func TestProductPerformance_LegacyIgnoresSalesWithProductID(t *testing.T) {
	products := []*domain.Product{
		{ID: "prod1", Name: "Serum"},
		{ID: "prod2", Name: "Mask"},
	}
	posts := []*domain.Post{
		{ID: "post1", ProductID: "prod1"},
	}
	// Directly linked to prod2 but legacy-linked to prod1's post: the direct
	// link wins and the legacy path must not double-count it.
	sales := []*domain.Sale{
		{
			Kind:               domain.SaleKindContent,
			Revenue:            700,
			ProductID:          "prod2",
			LegacyLinkedPostID: "post1",
		},
	}

	rows := ProductPerformance(products, posts, sales, false)

	assert.Len(t, rows, 2)
	assert.Equal(t, "prod2", rows[0].ProductID)
	assert.Equal(t, int64(700), rows[0].Revenue)
	assert.Equal(t, "prod1", rows[1].ProductID)
	assert.Equal(t, int64(0), rows[1].Revenue)
}

func TestProductPerformance_SortAndTruncate(t *testing.T) {
	var products []*domain.Product
	var sales []*domain.Sale
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("prod%02d", i)
		products = append(products, &domain.Product{ID: id, Name: id})
		sales = append(sales, contentSale("Ana", int64(i*100), id))
	}

	rows := ProductPerformance(products, nil, sales, false)

	assert.Len(t, rows, topProductRows)
	assert.Equal(t, "prod14", rows[0].ProductID)
	assert.Equal(t, int64(1400), rows[0].Revenue)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Revenue, rows[i].Revenue)
	}
}

func TestProductPerformance_StableSortKeepsCatalogOrderOnTies(t *testing.T) {
	products := []*domain.Product{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "c", Name: "C"},
	}

	rows := ProductPerformance(products, nil, nil, false)

	assert.Equal(t, "a", rows[0].ProductID)
	assert.Equal(t, "b", rows[1].ProductID)
	assert.Equal(t, "c", rows[2].ProductID)
}

func TestProductPerformance_RangedDropsInactiveRows(t *testing.T) {
	products := []*domain.Product{
		{ID: "active", Name: "Active"},
		{ID: "idle", Name: "Idle"},
	}
	posts := []*domain.Post{
		{ID: "post1", ProductID: "active"},
	}

	rows := ProductPerformance(products, posts, nil, true)

	assert.Len(t, rows, 1)
	assert.Equal(t, "active", rows[0].ProductID)
}

func TestProductPerformance_AllTimeKeepsInactiveRows(t *testing.T) {
	products := []*domain.Product{
		{ID: "idle", Name: "Idle"},
	}

	rows := ProductPerformance(products, nil, nil, false)

	assert.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Posts)
	assert.Equal(t, int64(0), rows[0].Revenue)
}

func TestProductPerformance_Idempotent(t *testing.T) {
	products := []*domain.Product{
		{ID: "prod1", Name: "Serum"},
		{ID: "prod2", Name: "Mask"},
	}
	posts := []*domain.Post{
		{ID: "post1", ProductID: "prod1"},
	}
	sales := []*domain.Sale{
		contentSale("Ana", 1000, "prod1"),
		legacySale("Bia", 500, "post1"),
	}

	first := ProductPerformance(products, posts, sales, false)
	second := ProductPerformance(products, posts, sales, false)

	assert.Equal(t, first, second)
}

func TestActiveProductCount(t *testing.T) {
	rows := []*domain.ProductPerformance{
		{ProductID: "a", Posts: 1},
		{ProductID: "b", Revenue: 100},
		{ProductID: "c"},
	}

	assert.Equal(t, 2, ActiveProductCount(rows, false))
	// Ranged rows are pre-filtered, so the count is just the row count.
	assert.Equal(t, 3, ActiveProductCount(rows, true))
}
