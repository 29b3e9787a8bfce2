package feed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileArticle mirrors one entry of a YAML article list.
type fileArticle struct {
	Title     string    `yaml:"title"`
	Summary   string    `yaml:"summary"`
	Content   string    `yaml:"content"`
	Reporter  string    `yaml:"reporter"`
	ImageURL  string    `yaml:"image_url"`
	Source    string    `yaml:"source"`
	Link      string    `yaml:"link"`
	CreatedAt time.Time `yaml:"created_at"`
}

// LoadFile reads a YAML list of articles from disk. Entries without a title
// are rejected rather than silently dropped: the file is an explicit import
// request, not an opportunistic cache.
func LoadFile(path string) ([]Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []fileArticle
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("feed: parse %s: %w", path, err)
	}
	out := make([]Item, 0, len(raw))
	for i, a := range raw {
		if a.Title == "" {
			return nil, fmt.Errorf("feed: %s entry %d has no title", path, i)
		}
		out = append(out, Item{
			Title:       a.Title,
			Summary:     a.Summary,
			Content:     a.Content,
			Reporter:    a.Reporter,
			ImageURL:    a.ImageURL,
			Source:      a.Source,
			Link:        a.Link,
			PublishedAt: a.CreatedAt,
		})
	}
	return out, nil
}
