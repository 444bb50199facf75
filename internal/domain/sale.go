package domain

import "time"

// Sale kinds. General sales carry an aggregate GMV figure; content sales
// carry revenue attributed to a specific promoted product.
const (
	SaleKindGeneral = "general"
	SaleKindContent = "content"
)

// Sale is a single sales report submitted for a talent account.
// Sales are immutable after creation: they can only be deleted.
type Sale struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // YYYY-MM-DD
	TalentName  string `json:"talentName"`
	AccountName string `json:"accountName"`
	Kind        string `json:"type"`

	// General sales metrics
	GMV           int64 `json:"gmv,omitempty"`
	ProductViews  int64 `json:"productViews,omitempty"`
	ProductClicks int64 `json:"productClicks,omitempty"`

	// Content (product-linked) sales metrics
	ProductID string `json:"productId,omitempty"`
	// LegacyLinkedPostID attributes the sale to a product through a post.
	// Deprecated: records created after direct product linkage carry
	// ProductID instead. Kept readable for old rows only.
	LegacyLinkedPostID string `json:"linkedPostId,omitempty"`
	ProductName        string `json:"productName,omitempty"`

	// Shared metrics, in integer IDR units
	Quantity   int64 `json:"quantity"`
	Revenue    int64 `json:"revenue"`
	Commission int64 `json:"commission"`

	CreatedAt time.Time `json:"createdAt"`
}

// Value returns the monetary contribution of the sale: GMV for general
// sales, revenue for content sales. Absent fields count as zero.
func (s *Sale) Value() int64 {
	if s.Kind == SaleKindGeneral {
		return s.GMV
	}
	return s.Revenue
}
