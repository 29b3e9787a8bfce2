package seed

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func testGenerator(seedVal int64) *Generator {
	now := func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return New(rand.New(rand.NewSource(seedVal)), now)
}

func TestCorpusShape(t *testing.T) {
	g := testGenerator(1)
	items := g.Corpus(60)
	if len(items) != 60 {
		t.Fatalf("corpus size = %d, want 60", len(items))
	}
	for i, n := range items {
		if n.ID != i+1 {
			t.Errorf("item %d: id = %d, want %d", i, n.ID, i+1)
		}
		if !n.IsSeed {
			t.Errorf("item %d: IsSeed = false", i)
		}
		if n.IsImported {
			t.Errorf("item %d: IsImported = true", i)
		}
		if n.Title == "" || n.Summary == "" || n.Content == "" {
			t.Errorf("item %d: empty content fields", i)
		}
		if !strings.HasPrefix(n.ImageURL, "https://picsum.photos/seed/") {
			t.Errorf("item %d: unexpected image ref %q", i, n.ImageURL)
		}
		if want := fmt.Sprintf("https://example.com/news/%d", n.ID); n.Link != want {
			t.Errorf("item %d: link = %q, want %q", i, n.Link, want)
		}
		if _, ok := n.Translations["en"]; !ok {
			t.Errorf("item %d: missing en translation bundle", i)
		}
		if i > 0 {
			prev := items[i-1]
			if got := prev.CreatedAt.Sub(n.CreatedAt); got != time.Hour {
				t.Errorf("item %d: timestamp step = %v, want 1h", i, got)
			}
		}
	}
	if items[0].Reporter != "Reporter A" {
		t.Errorf("first reporter = %q, want %q", items[0].Reporter, "Reporter A")
	}
}

func TestCorpusDeterministic(t *testing.T) {
	a := testGenerator(7).Corpus(20)
	b := testGenerator(7).Corpus(20)
	for i := range a {
		if a[i].Title != b[i].Title || a[i].ImageURL != b[i].ImageURL {
			t.Fatalf("item %d differs across identically seeded runs", i)
		}
	}
}

func TestCorpusDefaultTotal(t *testing.T) {
	if got := len(testGenerator(1).Corpus(0)); got != DefaultTotal {
		t.Fatalf("Corpus(0) size = %d, want %d", got, DefaultTotal)
	}
}

func TestCategoryWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, cw := range categoryWeights {
		sum += cw.Weight
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("category weights sum = %v, want 1.0", sum)
	}
}

func TestTranslateFallback(t *testing.T) {
	if got := subjectEnglish("某某机构"); got != "某某机构" {
		t.Errorf("unmapped subject = %q, want original", got)
	}
	if got := sourceEnglish("新华社"); got != "Xinhua News Agency" {
		t.Errorf("mapped source = %q", got)
	}
	if got := sourceEnglish("CNN"); got != "CNN" {
		t.Errorf("identity source = %q, want CNN", got)
	}
}
