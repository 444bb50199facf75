package domain

import "time"

// Supported social platforms for posts.
const (
	PlatformTikTok    = "TikTok"
	PlatformInstagram = "Instagram"
	PlatformShopee    = "Shopee"
	PlatformYouTube   = "YouTube"
	PlatformOther     = "Other"
)

// Platforms lists the accepted platform values in display order.
var Platforms = []string{
	PlatformTikTok,
	PlatformInstagram,
	PlatformShopee,
	PlatformYouTube,
	PlatformOther,
}

// Post is a social-media content entry published by a talent account,
// optionally promoting a registered product.
type Post struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // YYYY-MM-DD
	TalentName  string `json:"talentName"`
	AccountName string `json:"accountName"`
	Platform    string `json:"platform"`
	Link        string `json:"link"`

	ProductID   string `json:"productId,omitempty"`
	ProductName string `json:"productName,omitempty"`

	Views int64 `json:"views,omitempty"`
	Likes int64 `json:"likes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ValidPlatform reports whether p is one of the accepted platform values.
func ValidPlatform(p string) bool {
	for _, platform := range Platforms {
		if p == platform {
			return true
		}
	}
	return false
}
