package storage

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"newsverify/internal/model"
)

func TestLoadVotesMissingKey(t *testing.T) {
	s := NewSnapshots(NewMemoryKV())
	votes, ok := s.LoadVotes(context.Background())
	if ok {
		t.Fatal("expected ok=false on missing key")
	}
	if len(votes) != 0 {
		t.Fatalf("expected empty collection, got %d", len(votes))
	}
}

func TestLoadVotesMalformedBlob(t *testing.T) {
	kv := NewMemoryKV()
	if err := kv.Set(context.Background(), "votes", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	s := NewSnapshots(kv)
	if _, ok := s.LoadVotes(context.Background()); ok {
		t.Fatal("expected ok=false on malformed blob")
	}
}

func TestVotesRoundTripDropsCorruptEntry(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := NewSnapshots(kv)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	votes := []model.Vote{
		{ID: "a", NewsID: 1, Choice: model.ChoiceFake, CreatedAt: now},
		{ID: "b", NewsID: 1, Choice: model.ChoiceNotFake, Comment: "looks off", CreatedAt: now},
		{ID: "c", NewsID: 2, Choice: model.ChoiceFake, CreatedAt: now},
	}
	if err := s.SaveVotes(ctx, votes); err != nil {
		t.Fatalf("SaveVotes: %v", err)
	}

	// Corrupt one entry's choice as a hand-edited blob would.
	b, _ := kv.Get(ctx, "votes")
	corrupted := strings.Replace(string(b), `"choice":"not_fake"`, `"choice":"maybe"`, 1)
	if corrupted == string(b) {
		t.Fatal("corruption did not apply")
	}
	if err := kv.Set(ctx, "votes", []byte(corrupted)); err != nil {
		t.Fatal(err)
	}

	loaded, ok := s.LoadVotes(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d votes, want 2", len(loaded))
	}
	for _, v := range loaded {
		if v.ID == "b" {
			t.Fatal("corrupt entry survived load")
		}
		if !v.Choice.Valid() {
			t.Fatalf("invalid choice survived: %q", v.Choice)
		}
	}
}

func TestLoadVotesDropsBadNewsID(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	blob := `[
		{"id":"a","newsId":1,"choice":"fake","createdAt":"2024-03-01T12:00:00Z"},
		{"id":"b","newsId":"one","choice":"fake","createdAt":"2024-03-01T12:00:00Z"},
		{"id":"c","newsId":0,"choice":"fake","createdAt":"2024-03-01T12:00:00Z"}
	]`
	if err := kv.Set(ctx, "votes", []byte(blob)); err != nil {
		t.Fatal(err)
	}
	loaded, ok := NewSnapshots(kv).LoadVotes(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if len(loaded) != 1 || loaded[0].ID != "a" {
		t.Fatalf("loaded %+v, want only entry a", loaded)
	}
}

func TestLikesRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewSnapshots(NewMemoryKV())
	in := map[int]int{1: 5, 7: 2}
	if err := s.SaveLikes(ctx, in); err != nil {
		t.Fatalf("SaveLikes: %v", err)
	}
	out, ok := s.LoadLikes(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if len(out) != 2 || out[1] != 5 || out[7] != 2 {
		t.Fatalf("loaded %v, want %v", out, in)
	}
}

func TestLoadLikesDropsNonPositive(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	b, _ := json.Marshal(map[int]int{1: 3, 2: 0, 3: -4})
	if err := kv.Set(ctx, "likes_by_news", b); err != nil {
		t.Fatal(err)
	}
	out, ok := NewSnapshots(kv).LoadLikes(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if len(out) != 1 || out[1] != 3 {
		t.Fatalf("loaded %v, want only 1:3", out)
	}
}

func TestLoadLikesMalformed(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	if err := kv.Set(ctx, "likes_by_news", []byte(`[1,2,3]`)); err != nil {
		t.Fatal(err)
	}
	if _, ok := NewSnapshots(kv).LoadLikes(ctx); ok {
		t.Fatal("expected ok=false on wrong-shape blob")
	}
}
