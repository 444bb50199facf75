package domain

import "time"

// Product is a promoted product registered in the catalog. A product may be
// owned by a talent account (TalentName + AccountName) or be global when the
// owner fields are empty. The link is by name, not by talent ID, so renaming
// a talent does not propagate here.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url,omitempty"`
	TalentName  string    `json:"talentName,omitempty"`
	AccountName string    `json:"accountName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
