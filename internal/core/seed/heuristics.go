package seed

import (
	"strings"

	"github.com/smereddy/vibetrail/internal/core/model"
)

// Keyword tables for the no-collaborator path. Static, read-only.

var seedVocabulary = []struct {
	word     string
	category string
}{
	{"coffee", model.SeedFood},
	{"brunch", model.SeedFood},
	{"cocktails", model.SeedFood},
	{"wine", model.SeedFood},
	{"ramen", model.SeedFood},
	{"tacos", model.SeedFood},
	{"bakery", model.SeedFood},
	{"dinner", model.SeedFood},
	{"jazz", model.SeedActivity},
	{"live music", model.SeedActivity},
	{"hiking", model.SeedActivity},
	{"museum", model.SeedActivity},
	{"gallery", model.SeedActivity},
	{"dancing", model.SeedActivity},
	{"picnic", model.SeedActivity},
	{"movie", model.SeedMedia},
	{"film", model.SeedMedia},
	{"book", model.SeedMedia},
	{"reading", model.SeedMedia},
	{"podcast", model.SeedMedia},
	{"series", model.SeedMedia},
	{"game", model.SeedMedia},
}

var indoorWords = []string{"cozy", "indoor", "museum", "cafe", "reading", "rainy", "gallery", "home"}
var outdoorWords = []string{"outdoor", "hike", "hiking", "park", "beach", "sunny", "trail", "picnic", "rooftop"}

var timeWords = map[string][]string{
	model.TimeMorning:   {"morning", "sunrise", "brunch"},
	model.TimeAfternoon: {"afternoon", "lunch"},
	model.TimeEvening:   {"evening", "sunset", "dinner"},
	model.TimeNight:     {"night", "late-night", "midnight"},
}

var seasonWords = map[string][]string{
	model.SeasonSpring: {"spring", "blossom"},
	model.SeasonSummer: {"summer", "beach"},
	model.SeasonFall:   {"fall", "autumn"},
	model.SeasonWinter: {"winter", "snow"},
}

var relevanceHints = map[string]map[string]float64{
	model.SeedFood:     {model.CategoryPlace: 0.8},
	model.SeedActivity: {model.CategoryPlace: 0.6, model.CategoryArtist: 0.6},
	model.SeedMedia:    {model.CategoryMovie: 0.6, model.CategoryBook: 0.6, model.CategoryPodcast: 0.5},
}

// heuristicConfidence marks context produced without the collaborator, so
// the prioritizer dampens boosts accordingly.
const heuristicConfidence = 0.4

func heuristicExtract(vibe string) ([]model.ExtractedSeed, model.VibeContext) {
	lower := strings.ToLower(vibe)

	var seeds []model.ExtractedSeed
	relevance := make(map[string]float64)
	for _, entry := range seedVocabulary {
		if !strings.Contains(lower, entry.word) {
			continue
		}
		seeds = append(seeds, model.ExtractedSeed{
			Text:        entry.word,
			Category:    entry.category,
			Confidence:  0.6,
			SearchTerms: []string{entry.word},
		})
		for key, boost := range relevanceHints[entry.category] {
			if boost > relevance[key] {
				relevance[key] = boost
			}
		}
		if len(seeds) == 5 {
			break
		}
	}

	if len(seeds) == 0 {
		seeds = []model.ExtractedSeed{{
			Text:        vibe,
			Category:    model.SeedGeneral,
			Confidence:  0.5,
			SearchTerms: strings.Fields(lower),
		}}
	}

	vctx := model.VibeContext{
		IsIndoor:  containsAny(lower, indoorWords),
		IsOutdoor: containsAny(lower, outdoorWords),
		TimeOfDay: firstMatch(lower, timeWords, []string{model.TimeMorning, model.TimeAfternoon, model.TimeEvening, model.TimeNight}),
		Season:    firstMatch(lower, seasonWords, []string{model.SeasonSpring, model.SeasonSummer, model.SeasonFall, model.SeasonWinter}),
	}
	vctx.IsHybrid = vctx.IsIndoor && vctx.IsOutdoor
	if len(relevance) > 0 {
		vctx.EntityRelevance = relevance
	}
	conf := heuristicConfidence
	vctx.ConfidenceScore = &conf

	return seeds, vctx
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

func firstMatch(text string, table map[string][]string, order []string) string {
	for _, key := range order {
		if containsAny(text, table[key]) {
			return key
		}
	}
	return ""
}
