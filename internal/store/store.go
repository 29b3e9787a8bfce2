// Package store owns the authoritative in-memory collections (news, votes,
// likes) and every mutation and query operation on them. In-memory state is
// the source of truth; the key-value persistence layer is best-effort
// mirroring, so a failed write is logged and swallowed while the mutation
// that preceded it stands.
package store

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"newsverify/internal/engage"
	"newsverify/internal/ident"
	"newsverify/internal/model"
	"newsverify/internal/seed"
	"newsverify/internal/storage"
)

// Store is the domain engine. All operations are synchronous and
// immediately consistent; the mutex serializes callers so there is no
// operation interleaving to reason about inside the store.
type Store struct {
	mu    sync.Mutex
	news  []model.News
	votes []model.Vote
	likes map[int]int

	snap      *storage.Snapshots
	seeder    *seed.Generator
	ids       *ident.Generator
	sim       *engage.Simulator
	rng       *rand.Rand
	now       func() time.Time
	seedTotal int
}

// Options wire the store's collaborators. Nil fields fall back to
// production defaults (time-seeded randomness, time.Now, in-memory KV).
type Options struct {
	Snapshots *storage.Snapshots
	Rand      *rand.Rand
	Now       func() time.Time
	SeedTotal int
}

// New constructs an empty store. Call Init to load persisted state and
// seed the demo corpus.
func New(opts Options) *Store {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	snap := opts.Snapshots
	if snap == nil {
		snap = storage.NewSnapshots(storage.NewMemoryKV())
	}
	total := opts.SeedTotal
	if total <= 0 {
		total = seed.DefaultTotal
	}
	s := &Store{
		likes:     map[int]int{},
		snap:      snap,
		seeder:    seed.New(rng, now),
		ids:       ident.NewGenerator(rng, now),
		sim:       engage.New(rng),
		rng:       rng,
		now:       now,
		seedTotal: total,
	}
	return s
}

// Init seeds the corpus, loads the persisted vote and like collections, and
// runs the one-time demo bootstrap: if no votes survived persistence the
// seed statuses are primed and engagement randomized, and if no likes exist
// a likes-only engagement pass fills the counters.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.news = s.seeder.Corpus(s.seedTotal)
	if votes, ok := s.snap.LoadVotes(ctx); ok {
		s.votes = votes
	} else {
		s.votes = nil
	}
	if likes, ok := s.snap.LoadLikes(ctx); ok {
		s.likes = likes
	} else {
		s.likes = map[int]int{}
	}

	if len(s.votes) == 0 {
		s.primeSeedStatuses()
		s.boostSeedVotes(18, 24)
		s.randomizeEngagement(engage.DefaultOptions())
		s.persistVotes(ctx)
		s.persistLikes(ctx)
	}
	if !s.hasAnyLikes() {
		s.randomizeEngagement(engage.LikesOnly())
		s.persistLikes(ctx)
	}
	s.boostSeedVotes(5, 15)
	s.persistVotes(ctx)
}

// News returns the news collection, most recent first.
func (s *Store) News() []model.News {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.News, len(s.news))
	copy(out, s.news)
	return out
}

// NewsByID returns the item with the given id.
func (s *Store) NewsByID(id int) (model.News, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.news {
		if n.ID == id {
			return n, true
		}
	}
	return model.News{}, false
}

// Votes returns the vote collection, most recent first.
func (s *Store) Votes() []model.Vote {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Vote, len(s.votes))
	copy(out, s.votes)
	return out
}

// NewsInput carries the fields of a manually reported item. Inputs are
// assumed pre-validated by the caller.
type NewsInput struct {
	Title    string
	Summary  string
	Content  string
	Reporter string
	ImageURL string
}

// AddNews trims the fields, allocates an id, stamps the current time and
// prepends the item to the collection.
func (s *Store) AddNews(in NewsInput) model.News {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := model.News{
		ID:        ident.NextNewsID(s.news),
		Title:     strings.TrimSpace(in.Title),
		Summary:   strings.TrimSpace(in.Summary),
		Content:   strings.TrimSpace(in.Content),
		Reporter:  strings.TrimSpace(in.Reporter),
		CreatedAt: s.now(),
		ImageURL:  strings.TrimSpace(in.ImageURL),
	}
	s.news = append([]model.News{item}, s.news...)
	return item
}

// ImportedNewsInput carries pre-validated fields supplied by the import
// ingestion collaborator.
type ImportedNewsInput struct {
	Title     string
	Summary   string
	Content   string
	Reporter  string
	ImageURL  string
	Source    string
	Link      string
	CreatedAt time.Time // zero value falls back to now
}

// AddImportedNews is AddNews for externally ingested items: it marks the
// item imported, passes source and link through, and accepts an external
// creation timestamp.
func (s *Store) AddImportedNews(in ImportedNewsInput) model.News {
	s.mu.Lock()
	defer s.mu.Unlock()
	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	item := model.News{
		ID:         ident.NextNewsID(s.news),
		Title:      in.Title,
		Summary:    in.Summary,
		Content:    in.Content,
		Reporter:   in.Reporter,
		CreatedAt:  createdAt,
		ImageURL:   in.ImageURL,
		Source:     in.Source,
		Link:       in.Link,
		IsImported: true,
	}
	s.news = append([]model.News{item}, s.news...)
	return item
}

// VoteInput carries one judgement. Optional text fields are trimmed and
// dropped when empty.
type VoteInput struct {
	NewsID   int
	Choice   model.Choice
	Comment  string
	ImageURL string
	Voter    string
}

// AddVote allocates a vote id, stamps the current time, prepends the vote
// and immediately persists the full vote collection.
func (s *Store) AddVote(ctx context.Context, in VoteInput) model.Vote {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.appendVote(in)
	s.persistVotes(ctx)
	return v
}

func (s *Store) appendVote(in VoteInput) model.Vote {
	v := model.Vote{
		ID:        s.ids.VoteID(),
		NewsID:    in.NewsID,
		Choice:    in.Choice,
		Comment:   strings.TrimSpace(in.Comment),
		ImageURL:  strings.TrimSpace(in.ImageURL),
		Voter:     strings.TrimSpace(in.Voter),
		CreatedAt: s.now(),
	}
	s.votes = append([]model.Vote{v}, s.votes...)
	return v
}

// VoteCounts tallies both choices for an item with a linear scan. There is
// no cached aggregate: repeated calls re-derive from scratch.
func (s *Store) VoteCounts(newsID int) model.VoteCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voteCounts(newsID)
}

func (s *Store) voteCounts(newsID int) model.VoteCounts {
	var c model.VoteCounts
	for _, v := range s.votes {
		if v.NewsID != newsID {
			continue
		}
		switch v.Choice {
		case model.ChoiceFake:
			c.Fake++
		case model.ChoiceNotFake:
			c.NotFake++
		}
	}
	return c
}

// Status derives the majority verdict at query time. Ties, including 0/0,
// are Undecided.
func (s *Store) Status(newsID int) model.Status {
	c := s.VoteCounts(newsID)
	switch {
	case c.Fake > c.NotFake:
		return model.StatusFake
	case c.NotFake > c.Fake:
		return model.StatusNotFake
	default:
		return model.StatusUndecided
	}
}

// Comments returns the votes for an item that carry a comment or an image,
// in reverse-chronological (insertion) order.
func (s *Store) Comments(newsID int) []model.Vote {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Vote
	for _, v := range s.votes {
		if v.NewsID == newsID && (v.Comment != "" || v.ImageURL != "") {
			out = append(out, v)
		}
	}
	return out
}

// ClearImported removes every imported item and every vote referencing a
// removed item, then persists the votes. Everything else is untouched.
func (s *Store) ClearImported(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := map[int]struct{}{}
	kept := s.news[:0]
	for _, n := range s.news {
		if n.IsImported {
			removed[n.ID] = struct{}{}
		} else {
			kept = append(kept, n)
		}
	}
	s.news = kept
	keptVotes := s.votes[:0]
	for _, v := range s.votes {
		if _, gone := removed[v.NewsID]; !gone {
			keptVotes = append(keptVotes, v)
		}
	}
	s.votes = keptVotes
	s.persistVotes(ctx)
}

// RemoveAllNews unconditionally empties news, votes and likes and persists
// the empty collections. It never leaves a mixed state: any panic along the
// way still ends with all three collections empty.
func (s *Store) RemoveAllNews(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("store: remove all recovered", "panic", r)
			s.news = nil
			s.votes = nil
			s.likes = map[int]int{}
		}
	}()
	s.news = nil
	s.votes = nil
	s.likes = map[int]int{}
	s.persistVotes(ctx)
	s.persistLikes(ctx)
}

// AddLike increments the like counter for an item and persists the
// counters.
func (s *Store) AddLike(ctx context.Context, newsID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes[newsID]++
	s.persistLikes(ctx)
}

// RemoveLike decrements the like counter, deleting the key instead of
// storing zero. Absent counters are left alone: the floor is zero.
func (s *Store) RemoveLike(ctx context.Context, newsID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.likes[newsID] <= 0 {
		return
	}
	s.likes[newsID]--
	if s.likes[newsID] == 0 {
		delete(s.likes, newsID)
	}
	s.persistLikes(ctx)
}

// Likes returns the current counter, 0 when absent.
func (s *Store) Likes(newsID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes[newsID]
}

// BoostSeedVotes tops every seed item up to a randomly drawn target vote
// count in [min, max]. It only ever adds: an item already at or above its
// target is left alone, and the target is redrawn on every call.
func (s *Store) BoostSeedVotes(ctx context.Context, min, max int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boostSeedVotes(min, max)
	s.persistVotes(ctx)
}

func (s *Store) boostSeedVotes(min, max int) {
	for _, n := range s.news {
		if !n.IsSeed {
			continue
		}
		target := s.randRange(min, max)
		add := target - s.voteCounts(n.ID).Total()
		for i := 0; i < add; i++ {
			choice := model.ChoiceNotFake
			if s.rng.Float64() < 0.5 {
				choice = model.ChoiceFake
			}
			s.appendVote(VoteInput{NewsID: n.ID, Choice: choice})
		}
	}
}

// RandomizeEngagement adds synthetic likes, votes and comments to every
// item and persists likes and votes once at the end.
func (s *Store) RandomizeEngagement(ctx context.Context, opts engage.Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.randomizeEngagement(opts)
	s.persistLikes(ctx)
	s.persistVotes(ctx)
}

func (s *Store) randomizeEngagement(opts engage.Options) {
	likes, drafts := s.sim.Plan(s.news, opts)
	for id, delta := range likes {
		if delta > 0 {
			s.likes[id] += delta
		}
	}
	for _, d := range drafts {
		s.appendVote(VoteInput{
			NewsID:   d.NewsID,
			Choice:   d.Choice,
			Comment:  d.Comment,
			ImageURL: d.ImageURL,
			Voter:    d.Voter,
		})
	}
}

// ResetOptions control ResetMockData.
type ResetOptions struct {
	// RegenerateNews rebuilds the seed corpus; when false the existing
	// items are kept and only engagement is rebuilt.
	RegenerateNews bool
}

// ResetMockData performs a full demo reset: optionally regenerates the seed
// corpus, always clears votes and likes, guarantees a full corpus exists,
// re-primes the status split, reboosts votes, re-randomizes engagement and
// persists the results. A panic mid-reset degrades to cleared collections
// rather than propagating.
func (s *Store) ResetMockData(ctx context.Context, opts ResetOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("store: reset recovered", "panic", r)
			if opts.RegenerateNews {
				s.news = s.seeder.Corpus(s.seedTotal)
			}
			s.votes = nil
			s.likes = map[int]int{}
		}
	}()
	if opts.RegenerateNews {
		s.news = s.seeder.Corpus(s.seedTotal)
	}
	s.votes = nil
	s.likes = map[int]int{}
	if len(s.news) < s.seedTotal {
		s.news = s.seeder.Corpus(s.seedTotal)
	}
	s.primeSeedStatuses()
	s.boostSeedVotes(18, 24)
	s.randomizeEngagement(engage.DefaultOptions())
	s.persistVotes(ctx)
	s.persistLikes(ctx)
	slog.Info("store: mock data reset", "regenerated", opts.RegenerateNews, "news", len(s.news), "votes", len(s.votes))
}

// primeSeedStatuses gives the first half of the collection a fake-majority
// split (14/6) and the second half the reverse, so a fresh demo shows every
// verdict before anyone votes. One-time bootstrap policy, not an invariant.
func (s *Store) primeSeedStatuses() {
	half := len(s.news) / 2
	for i, n := range s.news {
		if !n.IsSeed {
			continue
		}
		fake, notFake := 14, 6
		if i >= half {
			fake, notFake = 6, 14
		}
		for f := 0; f < fake; f++ {
			s.appendVote(VoteInput{NewsID: n.ID, Choice: model.ChoiceFake})
		}
		for nf := 0; nf < notFake; nf++ {
			s.appendVote(VoteInput{NewsID: n.ID, Choice: model.ChoiceNotFake})
		}
	}
}

func (s *Store) hasAnyLikes() bool {
	for _, n := range s.likes {
		if n > 0 {
			return true
		}
	}
	return false
}

// randRange draws uniformly from [min, max]; a degenerate range yields min.
func (s *Store) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

func (s *Store) persistVotes(ctx context.Context) {
	if err := s.snap.SaveVotes(ctx, s.votes); err != nil {
		slog.Warn("store: persist votes failed", "err", err)
	}
}

func (s *Store) persistLikes(ctx context.Context) {
	if err := s.snap.SaveLikes(ctx, s.likes); err != nil {
		slog.Warn("store: persist likes failed", "err", err)
	}
}
