package domain

// Play is catalog metadata for a single play. Genre is an open-ended tag that
// selects the pricing rule; it is not a closed enum.
type Play struct {
	Name  string `json:"name"  yaml:"name"`
	Genre string `json:"type"  yaml:"type"`
}

// Performance is one raw invoice line: a play reference and its audience.
type Performance struct {
	PlayID   string `json:"play_id"`
	Audience int    `json:"audience"`
}

// Invoice lists the performances booked by one customer.
type Invoice struct {
	Customer     string        `json:"customer"`
	Performances []Performance `json:"performances"`
}

// Catalog maps play identifiers to plays. It is never mutated while
// statements are computed, so concurrent reads need no locking.
type Catalog map[string]Play

// Lookup returns the play registered under id.
func (c Catalog) Lookup(id string) (Play, error) {
	p, ok := c[id]
	if !ok {
		return Play{}, &PlayNotFoundError{PlayID: id}
	}
	return p, nil
}
