package model

import "time"

// News represents a single reported story, independent of its verification
// status. The ID is stable for the item's lifetime; content fields change
// only through explicit collaborator calls, never through votes.
type News struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Reporter  string    `json:"reporter"`
	CreatedAt time.Time `json:"created_at"`
	ImageURL  string    `json:"image_url,omitempty"`
	Source    string    `json:"source,omitempty"`
	Link      string    `json:"link,omitempty"`

	// Translations holds optional per-language display overrides keyed by
	// language code (e.g. "en").
	Translations map[string]Translation `json:"translations,omitempty"`

	// Provenance flags. Never serialized; they only matter for bulk removal
	// and demo bootstrap.
	IsSeed     bool `json:"-"`
	IsImported bool `json:"-"`
}

// Translation is a display-ready override bundle for one language.
type Translation struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Reporter string `json:"reporter,omitempty"`
	Source   string `json:"source,omitempty"`
}
