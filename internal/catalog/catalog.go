package catalog

import "context"

// User is the minimal user representation returned by the listing endpoint.
type User struct {
	Name string `json:"name"`
}

// ItemSummary is the minimal item representation returned by the listing endpoint.
type ItemSummary struct {
	Name string `json:"name"`
}

// SearchHit is a single search result entry.
type SearchHit struct {
	ItemID string `json:"item_id"`
}

// Repository defines the interface for catalog data operations.
type Repository interface {
	Users(ctx context.Context) ([]User, error)
	Items(ctx context.Context) ([]ItemSummary, error)
	Search(ctx context.Context, query string) ([]SearchHit, error)
}
