// Package engage generates synthetic likes, votes and comments so a
// freshly seeded corpus looks organically engaged. It only plans additions;
// the domain store applies them, so repeated runs keep adding and never
// correct earlier engagement.
package engage

import (
	"fmt"
	"math/rand"
	"time"

	"newsverify/internal/model"
)

// voterRate is the fixed probability that a synthetic vote carries a
// display name.
const voterRate = 0.4

var commentPhrases = []string{
	"Needs more evidence", "Looks suspicious", "Seems legitimate", "Source is reliable",
	"Unverified claim", "Eyewitness report", "Possible misinformation", "Cross-check required",
}

// Options bound the per-item engagement draw.
type Options struct {
	LikeMin, LikeMax int
	VoteMin, VoteMax int
	CommentRate      float64
	ImageRate        float64
}

// DefaultOptions returns the bootstrap engagement profile.
func DefaultOptions() Options {
	return Options{LikeMin: 5, LikeMax: 60, VoteMin: 8, VoteMax: 24, CommentRate: 0.35, ImageRate: 0.12}
}

// LikesOnly returns a profile that adds likes but no votes or comments,
// used when persisted likes are empty but votes are not.
func LikesOnly() Options {
	return Options{LikeMin: 5, LikeMax: 60}
}

// VoteDraft is a synthetic vote before the store assigns id and timestamp.
type VoteDraft struct {
	NewsID   int
	Choice   model.Choice
	Comment  string
	ImageURL string
	Voter    string
}

// Simulator draws synthetic engagement from an injected random source.
type Simulator struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{rng: rng}
}

// Plan produces a like increment and a batch of vote drafts for every item.
// Like increments are in [LikeMin, LikeMax], vote counts in
// [VoteMin, VoteMax], each vote with an independently drawn choice, a
// comment from the phrase pool at CommentRate, a synthesized image
// reference at ImageRate, and a display name at the fixed voter rate.
func (s *Simulator) Plan(items []model.News, opts Options) (likes map[int]int, votes []VoteDraft) {
	likes = make(map[int]int, len(items))
	for _, n := range items {
		likes[n.ID] += s.intn(opts.LikeMin, opts.LikeMax)
		count := s.intn(opts.VoteMin, opts.VoteMax)
		for i := 0; i < count; i++ {
			d := VoteDraft{NewsID: n.ID, Choice: model.ChoiceNotFake}
			if s.rng.Float64() < 0.5 {
				d.Choice = model.ChoiceFake
			}
			if s.rng.Float64() < opts.CommentRate {
				d.Comment = commentPhrases[s.rng.Intn(len(commentPhrases))]
			}
			if s.rng.Float64() < opts.ImageRate {
				d.ImageURL = fmt.Sprintf("https://picsum.photos/seed/cmt-%d-%d/400/240", n.ID, i)
			}
			if s.rng.Float64() < voterRate {
				d.Voter = fmt.Sprintf("User%d", s.intn(1000, 9999))
			}
			votes = append(votes, d)
		}
	}
	return likes, votes
}

// intn draws uniformly from [min, max]; a degenerate range yields min.
func (s *Simulator) intn(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}
