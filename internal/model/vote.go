package model

import "time"

// Choice is a user's fake/not-fake judgement on a news item.
type Choice string

const (
	ChoiceFake    Choice = "fake"
	ChoiceNotFake Choice = "not_fake"
)

// Valid reports whether c is one of the two known enumerators. Used when
// loading persisted votes to drop corrupted or hand-edited entries.
func (c Choice) Valid() bool {
	return c == ChoiceFake || c == ChoiceNotFake
}

// Status is the derived majority verdict for a news item, computed from
// votes at query time and never stored.
type Status string

const (
	StatusFake      Status = "Fake"
	StatusNotFake   Status = "Not Fake"
	StatusUndecided Status = "Undecided"
)

// Vote is one judgement on a news item, optionally bundled with a comment,
// an image reference and a voter display name. Votes are append-only.
//
// NewsID is not a foreign key: a vote may outlive the item it references,
// in which case it simply never matches any by-id query.
type Vote struct {
	ID        string    `json:"id"`
	NewsID    int       `json:"newsId"`
	Choice    Choice    `json:"choice"`
	Comment   string    `json:"comment,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Voter     string    `json:"voter,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// VoteCounts is the per-item tally of both choices.
type VoteCounts struct {
	Fake    int `json:"fake"`
	NotFake int `json:"not_fake"`
}

// Total returns the number of votes counted.
func (c VoteCounts) Total() int { return c.Fake + c.NotFake }
