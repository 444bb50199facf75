package domain

// TalentReference is the registry entry for a content creator and the
// social/storefront accounts they own. Accounts is always a list, never nil:
// the repository normalizes missing data before returning it, because every
// consumer indexes into it. Account name uniqueness is not enforced.
type TalentReference struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Accounts []string `json:"accounts"`
}
