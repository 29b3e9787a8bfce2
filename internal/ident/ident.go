// Package ident allocates identifiers for news items and votes.
package ident

import (
	"math/rand"
	"strconv"
	"time"

	"newsverify/internal/model"
)

// NextNewsID returns the next free news id: 1 for an empty collection,
// otherwise max(existing)+1. Scanning instead of counting tolerates
// externally seeded ids with gaps.
func NextNewsID(existing []model.News) int {
	if len(existing) == 0 {
		return 1
	}
	max := existing[0].ID
	for _, n := range existing[1:] {
		if n.ID > max {
			max = n.ID
		}
	}
	return max + 1
}

// Generator produces opaque vote ids from a random component and a
// time-derived component. Both sources are injected so tests can pin them.
// Collisions are structurally possible but the birthday bound at demo scale
// is accepted, not eliminated.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a Generator. A nil rng or now falls back to a
// time-seeded source and time.Now.
func NewGenerator(rng *rand.Rand, now func() time.Time) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now}
}

// VoteID returns a new opaque vote id: a random base-36 component
// concatenated with the current time in base 36.
func (g *Generator) VoteID() string {
	r := strconv.FormatUint(g.rng.Uint64(), 36)
	t := strconv.FormatInt(g.now().UnixMilli(), 36)
	return r + t
}
