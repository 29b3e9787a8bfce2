package store

import (
	"fmt"

	"newsverify/internal/model"
)

// displayLanguage is the language the demo UI renders in.
const displayLanguage = "en"

// Localize returns a display-ready copy of the item with title, summary,
// content, reporter and source overridden from its translation bundle when
// one exists. Items without a usable bundle get generic placeholder strings
// keyed by id. Pure projection: the stored item is never mutated.
func Localize(n model.News) model.News {
	t, ok := n.Translations[displayLanguage]
	if !ok || t.Title == "" {
		n.Title = fmt.Sprintf("News Report %d", n.ID)
		n.Summary = fmt.Sprintf("Summary for news %d", n.ID)
		n.Content = fmt.Sprintf("Content for news %d", n.ID)
		return n
	}
	n.Title = t.Title
	n.Summary = t.Summary
	n.Content = t.Content
	if t.Reporter != "" {
		n.Reporter = t.Reporter
	}
	if t.Source != "" {
		n.Source = t.Source
	}
	return n
}
