package domain

import "time"

// ReportFilters bounds a report to an inclusive calendar-day range. Both
// dates set means the ranged view; both nil means the all-time view.
type ReportFilters struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Ranged reports whether both bounds are present.
func (f *ReportFilters) Ranged() bool {
	return f != nil && f.StartDate != nil && f.EndDate != nil
}

// TalentRevenue is one bar of the sales-by-talent chart.
type TalentRevenue struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// PlatformCount is one slice of the posts-by-platform chart.
type PlatformCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ProductPerformance is one row of the top-performing-products table.
// Revenue combines direct attribution and, on the all-time view only, legacy
// indirect attribution through linked posts.
type ProductPerformance struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	AccountName string `json:"account,omitempty"`
	Posts       int    `json:"posts"`
	Revenue     int64  `json:"revenue"`
}

// DashboardReport is the full aggregate served to the dashboard view.
type DashboardReport struct {
	TotalRevenue       int64                 `json:"totalRevenue"`
	TotalCommission    int64                 `json:"totalCommission"`
	TotalPosts         int                   `json:"totalPosts"`
	ActiveProductCount int                   `json:"activeProductCount"`
	SalesByTalent      []TalentRevenue       `json:"salesByTalent"`
	PostsByPlatform    []PlatformCount       `json:"postsByPlatform"`
	ProductPerformance []*ProductPerformance `json:"productPerformance"`
	RecentSales        []*Sale               `json:"recentSales"`
	Filters            *ReportFilters        `json:"filters,omitempty"`

	// SyncError marks that at least one collection failed to load and was
	// degraded to empty. The frontend shows a sync indicator off of it.
	SyncError bool `json:"syncError,omitempty"`
}

// BackfillResult summarizes a legacy product-link backfill run.
type BackfillResult struct {
	Resolved   int64     `json:"resolved"`
	Unresolved int64     `json:"unresolved"`
	RanAt      time.Time `json:"ranAt"`
}
