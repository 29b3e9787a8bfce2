// Package feed ingests external articles for import into the store. It
// understands RSS 2.0 and Atom over HTTP plus a local YAML article list;
// fields arrive pre-validated for the store, which only allocates ids and
// marks provenance.
package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Item is one external article, normalized for import.
type Item struct {
	Title       string
	Summary     string
	Content     string
	Reporter    string
	Link        string
	ImageURL    string
	Source      string
	PublishedAt time.Time
}

// Client fetches and parses remote feeds.
type Client struct {
	client *http.Client
}

// NewClient creates a feed client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{client: &http.Client{Timeout: timeout}}
}

// Fetch downloads the feed at url and returns its items in document order.
func (c *Client) Fetch(ctx context.Context, url string) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return Parse(body)
}

// Parse decodes an RSS 2.0 or Atom document.
func Parse(body []byte) ([]Item, error) {
	var rss rssDoc
	if err := xml.Unmarshal(body, &rss); err == nil && len(rss.Channel.Items) > 0 {
		return rss.items(), nil
	}
	var atom atomFeed
	if err := xml.Unmarshal(body, &atom); err == nil && len(atom.Entries) > 0 {
		return atom.items(), nil
	}
	return nil, fmt.Errorf("feed: unrecognized or empty document")
}

type rssDoc struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Title string    `xml:"title"`
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Author      string `xml:"author"`
	Creator     string `xml:"creator"` // dc:creator
	PubDate     string `xml:"pubDate"`
	Enclosure   struct {
		URL  string `xml:"url,attr"`
		Type string `xml:"type,attr"`
	} `xml:"enclosure"`
}

func (d rssDoc) items() []Item {
	source := strings.TrimSpace(d.Channel.Title)
	out := make([]Item, 0, len(d.Channel.Items))
	for _, it := range d.Channel.Items {
		desc := strings.TrimSpace(it.Description)
		reporter := strings.TrimSpace(it.Creator)
		if reporter == "" {
			reporter = strings.TrimSpace(it.Author)
		}
		item := Item{
			Title:       strings.TrimSpace(it.Title),
			Summary:     desc,
			Content:     desc,
			Reporter:    reporter,
			Link:        strings.TrimSpace(it.Link),
			Source:      source,
			PublishedAt: parseFeedTime(it.PubDate),
		}
		if strings.HasPrefix(it.Enclosure.Type, "image/") {
			item.ImageURL = it.Enclosure.URL
		}
		out = append(out, item)
	}
	return out
}

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Title   string      `xml:"title"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title   string `xml:"title"`
	Summary string `xml:"summary"`
	Content string `xml:"content"`
	Author  struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Links []struct {
		Rel  string `xml:"rel,attr"`
		Href string `xml:"href,attr"`
	} `xml:"link"`
	Published string `xml:"published"`
	Updated   string `xml:"updated"`
}

func (f atomFeed) items() []Item {
	source := strings.TrimSpace(f.Title)
	out := make([]Item, 0, len(f.Entries))
	for _, e := range f.Entries {
		var link string
		for _, l := range e.Links {
			if l.Rel == "" || l.Rel == "alternate" {
				link = l.Href
				break
			}
		}
		content := strings.TrimSpace(e.Content)
		if content == "" {
			content = strings.TrimSpace(e.Summary)
		}
		ts := e.Published
		if ts == "" {
			ts = e.Updated
		}
		out = append(out, Item{
			Title:       strings.TrimSpace(e.Title),
			Summary:     strings.TrimSpace(e.Summary),
			Content:     content,
			Reporter:    strings.TrimSpace(e.Author.Name),
			Link:        link,
			Source:      source,
			PublishedAt: parseFeedTime(ts),
		})
	}
	return out
}

// parseFeedTime tries the date layouts seen in the wild. A zero time means
// the caller should fall back to "now".
func parseFeedTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC1123Z,
		time.RFC1123,
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
