package ident

import (
	"math/rand"
	"testing"
	"time"

	"newsverify/internal/model"
)

func TestNextNewsIDEmpty(t *testing.T) {
	if got := NextNewsID(nil); got != 1 {
		t.Fatalf("NextNewsID(nil) = %d, want 1", got)
	}
}

func TestNextNewsIDStrictlyGreater(t *testing.T) {
	cases := [][]int{
		{1, 2, 3},
		{3, 1, 2},
		{10},
		{7, 2, 42, 5}, // gaps from external seeding
	}
	for _, ids := range cases {
		news := make([]model.News, 0, len(ids))
		max := 0
		for _, id := range ids {
			news = append(news, model.News{ID: id})
			if id > max {
				max = id
			}
		}
		got := NextNewsID(news)
		if got != max+1 {
			t.Errorf("NextNewsID(%v) = %d, want %d", ids, got, max+1)
		}
		for _, id := range ids {
			if got <= id {
				t.Errorf("NextNewsID(%v) = %d not strictly greater than %d", ids, got, id)
			}
		}
	}
}

func TestVoteIDDistinct(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)), func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	})
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := g.VoteID()
		if id == "" {
			t.Fatal("empty vote id")
		}
		if seen[id] {
			t.Fatalf("duplicate vote id after %d draws: %s", i, id)
		}
		seen[id] = true
	}
}
