package catalog

import "context"

// MemoryRepo implements Repository over a fixed in-memory dataset. The
// service intentionally carries no persistence; the data is initialized
// once at process start and never mutated, so the repo is safe for
// concurrent use without locking.
type MemoryRepo struct {
	users []User
	items []ItemSummary
	hits  []SearchHit
}

// NewMemoryRepo creates a MemoryRepo populated with the demo dataset.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users: []User{
			{Name: "Harry"},
			{Name: "Ron"},
		},
		items: []ItemSummary{
			{Name: "wand"},
			{Name: "flying broom"},
		},
		hits: []SearchHit{
			{ItemID: "Foo"},
			{ItemID: "Bar"},
		},
	}
}

// Compile-time check to ensure MemoryRepo implements Repository
var _ Repository = (*MemoryRepo)(nil)

func (r *MemoryRepo) Users(ctx context.Context) ([]User, error) {
	out := make([]User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *MemoryRepo) Items(ctx context.Context) ([]ItemSummary, error) {
	out := make([]ItemSummary, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Search returns the full demo result set; the query only scopes the
// response envelope, it does not filter the hits.
func (r *MemoryRepo) Search(ctx context.Context, query string) ([]SearchHit, error) {
	out := make([]SearchHit, len(r.hits))
	copy(out, r.hits)
	return out, nil
}
