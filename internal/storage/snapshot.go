package storage

import (
	"context"
	"encoding/json"

	"newsverify/internal/model"
)

const (
	votesKey = "votes"
	likesKey = "likes_by_news"
)

// Snapshots reads and writes the two persisted collections. Loads never
// fail: any missing key or malformed payload yields an empty collection and
// ok=false, leaving the fallback policy to the caller.
type Snapshots struct {
	kv KV
}

func NewSnapshots(kv KV) *Snapshots {
	return &Snapshots{kv: kv}
}

// LoadVotes returns the persisted vote collection. Entries that fail to
// decode, reference a non-positive news id, or carry an unknown choice are
// dropped individually; no partial-record repair is attempted.
func (s *Snapshots) LoadVotes(ctx context.Context) ([]model.Vote, bool) {
	b, err := s.kv.Get(ctx, votesKey)
	if err != nil {
		return nil, false
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, false
	}
	votes := make([]model.Vote, 0, len(raw))
	for _, r := range raw {
		var v model.Vote
		if err := json.Unmarshal(r, &v); err != nil {
			continue
		}
		if v.NewsID <= 0 || !v.Choice.Valid() {
			continue
		}
		votes = append(votes, v)
	}
	return votes, true
}

// SaveVotes overwrites the votes blob with the full in-memory collection.
func (s *Snapshots) SaveVotes(ctx context.Context, votes []model.Vote) error {
	b, err := json.Marshal(votes)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, votesKey, b)
}

// LoadLikes returns the persisted like counters. Non-positive counters are
// dropped: absent and zero are equivalent for callers.
func (s *Snapshots) LoadLikes(ctx context.Context) (map[int]int, bool) {
	b, err := s.kv.Get(ctx, likesKey)
	if err != nil {
		return nil, false
	}
	var parsed map[int]int
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, false
	}
	likes := make(map[int]int, len(parsed))
	for id, n := range parsed {
		if id > 0 && n > 0 {
			likes[id] = n
		}
	}
	return likes, true
}

// SaveLikes overwrites the likes blob with the full counter map.
func (s *Snapshots) SaveLikes(ctx context.Context, likes map[int]int) error {
	b, err := json.Marshal(likes)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, likesKey, b)
}
