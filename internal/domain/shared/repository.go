package shared

// Page describes limit/offset pagination for list operations.
// Listings order by creation time descending with the entity ID as a
// tiebreaker, so consecutive pages neither duplicate nor skip rows as
// long as no concurrent writes interleave.
type Page struct {
	Limit  int
	Offset int
}

// DefaultPageSize is used when a caller passes a non-positive limit
const DefaultPageSize = 20

// MaxPageSize caps a single page
const MaxPageSize = 500

// Normalize clamps the page to sane bounds
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
