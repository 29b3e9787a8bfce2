package engage

import (
	"math/rand"
	"strings"
	"testing"

	"newsverify/internal/model"
)

func testItems(n int) []model.News {
	items := make([]model.News, n)
	for i := range items {
		items[i] = model.News{ID: i + 1}
	}
	return items
}

func TestPlanBounds(t *testing.T) {
	sim := New(rand.New(rand.NewSource(1)))
	items := testItems(10)
	opts := Options{LikeMin: 2, LikeMax: 9, VoteMin: 1, VoteMax: 4, CommentRate: 0.35, ImageRate: 0.12}

	likes, votes := sim.Plan(items, opts)
	if len(likes) != len(items) {
		t.Fatalf("likes planned for %d items, want %d", len(likes), len(items))
	}
	perItem := map[int]int{}
	for _, n := range items {
		if l := likes[n.ID]; l < 2 || l > 9 {
			t.Errorf("item %d: like delta %d out of [2,9]", n.ID, l)
		}
	}
	for _, v := range votes {
		perItem[v.NewsID]++
		if !v.Choice.Valid() {
			t.Errorf("invalid planned choice %q", v.Choice)
		}
		if v.ImageURL != "" && !strings.HasPrefix(v.ImageURL, "https://picsum.photos/seed/cmt-") {
			t.Errorf("unexpected image ref %q", v.ImageURL)
		}
		if v.Voter != "" && !strings.HasPrefix(v.Voter, "User") {
			t.Errorf("unexpected voter %q", v.Voter)
		}
	}
	for _, n := range items {
		if c := perItem[n.ID]; c < 1 || c > 4 {
			t.Errorf("item %d: %d votes out of [1,4]", n.ID, c)
		}
	}
}

func TestPlanRateExtremes(t *testing.T) {
	sim := New(rand.New(rand.NewSource(2)))
	items := testItems(5)

	_, votes := sim.Plan(items, Options{VoteMin: 3, VoteMax: 3, CommentRate: 1, ImageRate: 1})
	if len(votes) != 15 {
		t.Fatalf("votes = %d, want 15", len(votes))
	}
	for _, v := range votes {
		if v.Comment == "" {
			t.Error("comment missing at rate 1.0")
		}
		if v.ImageURL == "" {
			t.Error("image missing at rate 1.0")
		}
	}

	_, votes = sim.Plan(items, Options{VoteMin: 3, VoteMax: 3})
	for _, v := range votes {
		if v.Comment != "" || v.ImageURL != "" {
			t.Errorf("extras present at rate 0: %+v", v)
		}
	}
}

func TestPlanLikesOnly(t *testing.T) {
	sim := New(rand.New(rand.NewSource(3)))
	likes, votes := sim.Plan(testItems(8), LikesOnly())
	if len(votes) != 0 {
		t.Fatalf("likes-only profile planned %d votes", len(votes))
	}
	for id, l := range likes {
		if l < 5 || l > 60 {
			t.Errorf("item %d: like delta %d out of [5,60]", id, l)
		}
	}
}

func TestPlanCommentsFromPhrasePool(t *testing.T) {
	sim := New(rand.New(rand.NewSource(4)))
	pool := map[string]bool{}
	for _, p := range commentPhrases {
		pool[p] = true
	}
	_, votes := sim.Plan(testItems(6), Options{VoteMin: 5, VoteMax: 5, CommentRate: 1})
	for _, v := range votes {
		if !pool[v.Comment] {
			t.Fatalf("comment %q not from phrase pool", v.Comment)
		}
	}
}

func TestPlanDeterministic(t *testing.T) {
	opts := DefaultOptions()
	_, a := New(rand.New(rand.NewSource(9))).Plan(testItems(4), opts)
	_, b := New(rand.New(rand.NewSource(9))).Plan(testItems(4), opts)
	if len(a) != len(b) {
		t.Fatalf("draft counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draft %d differs across identically seeded runs", i)
		}
	}
}
