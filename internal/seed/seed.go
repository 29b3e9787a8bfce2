// Package seed generates the demo news corpus. Generation is pure local
// computation: no network, no storage, only the injected randomness and
// clock, so a seeded source reproduces the same corpus shape.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"newsverify/internal/model"
)

// DefaultTotal is the corpus size produced on a cold start.
const DefaultTotal = 60

// Category is a news topic bucket.
type Category string

const (
	Politics   Category = "politics"
	Technology Category = "technology"
	Culture    Category = "culture"
	Weather    Category = "weather"
	Economy    Category = "economy"
)

// categoryWeights drive the weighted topic draw. Weights sum to 1.0.
var categoryWeights = []struct {
	Cat    Category
	Weight float64
}{
	{Politics, 0.25},
	{Technology, 0.25},
	{Culture, 0.20},
	{Weather, 0.15},
	{Economy, 0.15},
}

// domesticBias is the probability that a politics item draws from the
// domestic subject and outlet pools rather than the international ones.
const domesticBias = 0.6

var imageTags = map[Category][]string{
	Politics:   {"government", "leaders", "protest", "meeting", "flag", "building"},
	Technology: {"tech", "computer", "gadget", "robot", "internet", "innovation"},
	Culture:    {"art", "music", "theater", "dance", "festival", "museum"},
	Weather:    {"rain", "snow", "storm", "sun", "cloud", "temperature"},
	Economy:    {"money", "stock", "business", "bank", "trade", "market"},
}

// bodyTemplates frame the subject and action in a category-specific
// rhetorical register. Arguments: subject, action.
var bodyTemplates = map[Category]string{
	Politics:   "%s recently %s, attracting widespread attention both domestically and internationally. Relevant experts analyze that this move will have a profound impact on international relations and regional stability. At a press conference, the spokesperson stated that efforts will continue to advance related work and safeguard national interests and international peace.",
	Technology: "%s successfully %s, marking a major breakthrough in related fields. The application of this technology will greatly enhance production efficiency and improve people's quality of life. The research team stated that this achievement represents years of hard work, and they will continue to deepen their research in the future.",
	Culture:    "%s will soon %s, bringing a cultural feast to the audience. The event aims to promote traditional culture, facilitate cultural exchanges, and enhance cultural confidence. Organizers revealed that this event has been in preparation for a long time and will feature several wonderful performances.",
	Weather:    "%s today %s, reminding citizens to take precautions. Weather is expected to continue changing in the next few days, and relevant departments have activated emergency plans. Meteorological experts suggest that the public should pay close attention to weather changes and take protective measures.",
	Economy:    "%s's latest %s shows that the overall economic operation is stable and improving. Analysis points out that multiple economic indicators have shown positive changes, and market confidence is gradually recovering. Industry insiders expect economic growth to remain resilient in the future, laying a foundation for high-quality development.",
}

// Generator produces seed news items.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New creates a Generator. A nil rng or now falls back to a time-seeded
// source and time.Now.
func New(rng *rand.Rand, now func() time.Time) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now}
}

// Corpus generates total seed items with strictly decreasing creation
// timestamps, one hour apart, newest first. Ids start at 1.
func (g *Generator) Corpus(total int) []model.News {
	if total <= 0 {
		total = DefaultTotal
	}
	now := g.now()
	list := make([]model.News, 0, total)
	for i := 0; i < total; i++ {
		id := i + 1
		createdAt := now.Add(-time.Duration(i) * time.Hour)
		cat := g.pickCategory()

		var subject string
		international := false
		if cat == Politics {
			international = g.rng.Float64() >= domesticBias
			if international {
				subject = pick(g.rng, politicsInternationalSubjects)
			} else {
				subject = pick(g.rng, politicsDomesticSubjects)
			}
		} else {
			subject = pick(g.rng, subjectPools[cat])
		}
		action := pick(g.rng, actionPools[cat])

		var outlet string
		if international {
			outlet = pick(g.rng, internationalOutlets)
		} else {
			outlet = pick(g.rng, domesticOutlets)
		}

		enSubject := subjectEnglish(subject)
		enAction := actionEnglish(action)
		enSource := sourceEnglish(outlet)
		title := enSubject + " " + enAction
		summary := fmt.Sprintf("%s %s. This development has significant implications for various sectors.", enSubject, enAction)
		content := fmt.Sprintf(bodyTemplates[cat], enSubject, enAction)
		reporter := fmt.Sprintf("Reporter %c", 'A'+rune(i%26))

		list = append(list, model.News{
			ID:        id,
			Title:     title,
			Summary:   summary,
			Content:   content,
			Reporter:  reporter,
			CreatedAt: createdAt,
			ImageURL:  g.imageRef(cat, id),
			Source:    enSource,
			Link:      fmt.Sprintf("https://example.com/news/%d", id),
			Translations: map[string]model.Translation{
				"en": {
					Title:    title,
					Summary:  summary,
					Content:  content,
					Reporter: reporter,
					Source:   enSource,
				},
			},
			IsSeed: true,
		})
	}
	return list
}

// pickCategory draws a category by cumulative weight against a single
// uniform number. If rounding keeps every cumulative weight below the draw,
// the first category wins deterministically.
func (g *Generator) pickCategory() Category {
	r := g.rng.Float64()
	cum := 0.0
	for _, cw := range categoryWeights {
		cum += cw.Weight
		if r < cum {
			return cw.Cat
		}
	}
	return categoryWeights[0].Cat
}

// imageRef synthesizes a plausible-looking illustrative image reference.
// The seed embeds category, tag, item id and a random int so repeated runs
// vary while staying recognizably tied to the item.
func (g *Generator) imageRef(cat Category, id int) string {
	tags := imageTags[cat]
	tag := pick(g.rng, tags)
	return fmt.Sprintf("https://picsum.photos/seed/%s-%s-%d-%d/960/540", cat, tag, id, g.rng.Intn(1000))
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}
