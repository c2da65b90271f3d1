package tabs

import "github.com/smereddy/vibetrail/internal/core/model"

// Static configuration tables. Loaded once, never mutated at runtime, so
// they are safe to read from concurrent fetch fan-out without locking.

// Categories is the supported category table in stable display order.
// Place carries the highest base priority so location content survives even
// a fully empty context.
var Categories = []model.CategoryConfig{
	{Key: model.CategoryPlace, DisplayName: "Places", Icon: "map-pin", BasePriority: 9,
		QueryTags: []string{"restaurant", "cafe", "bar", "venue"}},
	{Key: model.CategoryDestination, DisplayName: "Destinations", Icon: "compass", BasePriority: 8,
		QueryTags: []string{"travel", "neighborhood", "landmark"}},
	{Key: model.CategoryMovie, DisplayName: "Movies", Icon: "film", BasePriority: 7,
		QueryTags: []string{"film", "cinema"}},
	{Key: model.CategoryArtist, DisplayName: "Artists", Icon: "music", BasePriority: 7,
		QueryTags: []string{"music", "concert", "performer"}},
	{Key: model.CategoryBook, DisplayName: "Books", Icon: "book-open", BasePriority: 6,
		QueryTags: []string{"literature", "author"}},
	{Key: model.CategoryTVShow, DisplayName: "TV Shows", Icon: "tv", BasePriority: 6,
		QueryTags: []string{"series", "streaming"}},
	{Key: model.CategoryPodcast, DisplayName: "Podcasts", Icon: "mic", BasePriority: 5,
		QueryTags: []string{"podcast", "audio"}},
	{Key: model.CategoryVideogame, DisplayName: "Games", Icon: "gamepad", BasePriority: 4,
		QueryTags: []string{"videogame", "interactive"}},
}

// QueryTags returns the provider tags configured for a category key.
func QueryTags(key string) []string {
	for _, cfg := range Categories {
		if cfg.Key == key {
			return cfg.QueryTags
		}
	}
	return nil
}

// Situational boosts per category. Pairs not listed contribute 0.
var indoorBoosts = map[string]float64{
	model.CategoryBook:      0.3,
	model.CategoryMovie:     0.3,
	model.CategoryTVShow:    0.3,
	model.CategoryVideogame: 0.3,
	model.CategoryPodcast:   0.2,
	model.CategoryPlace:     0.1,
}

var outdoorBoosts = map[string]float64{
	model.CategoryPlace:       0.3,
	model.CategoryDestination: 0.3,
	model.CategoryArtist:      0.2,
}

var hybridBoosts = map[string]float64{
	model.CategoryPlace:       0.15,
	model.CategoryDestination: 0.1,
	model.CategoryArtist:      0.1,
}

// Time-of-day adjustments, small and additive (−0.2…+0.3). Podcasts lean
// into commutes, artists into evening shows, movies into late screenings.
var timeOfDayBoosts = map[string]map[string]float64{
	model.CategoryPodcast: {
		model.TimeMorning: 0.3,
		model.TimeEvening: -0.1,
	},
	model.CategoryArtist: {
		model.TimeMorning: -0.2,
		model.TimeEvening: 0.25,
		model.TimeNight:   0.3,
	},
	model.CategoryPlace: {
		model.TimeMorning: 0.1,
		model.TimeEvening: 0.2,
	},
	model.CategoryMovie: {
		model.TimeEvening: 0.15,
		model.TimeNight:   0.2,
	},
	model.CategoryBook: {
		model.TimeMorning: 0.1,
		model.TimeNight:   0.1,
	},
	model.CategoryTVShow: {
		model.TimeEvening: 0.2,
	},
	model.CategoryVideogame: {
		model.TimeNight: 0.15,
	},
	model.CategoryDestination: {
		model.TimeMorning: 0.15,
		model.TimeNight:   -0.1,
	},
}

// Seasonal adjustments, same scale as time-of-day.
var seasonBoosts = map[string]map[string]float64{
	model.CategoryDestination: {
		model.SeasonSummer: 0.25,
		model.SeasonWinter: -0.1,
	},
	model.CategoryPlace: {
		model.SeasonSummer: 0.15,
	},
	model.CategoryArtist: {
		model.SeasonSummer: 0.2,
	},
	model.CategoryBook: {
		model.SeasonFall:   0.1,
		model.SeasonWinter: 0.2,
	},
	model.CategoryMovie: {
		model.SeasonWinter: 0.15,
	},
	model.CategoryTVShow: {
		model.SeasonWinter: 0.1,
	},
	model.CategoryVideogame: {
		model.SeasonWinter: 0.1,
	},
	model.CategoryPodcast: {
		model.SeasonFall: 0.05,
	},
}

// Base result-count estimates per category, scaled by relevance and clamped
// to [3,20] at selection time.
var baseEstimates = map[string]int{
	model.CategoryPlace:       12,
	model.CategoryDestination: 8,
	model.CategoryMovie:       10,
	model.CategoryArtist:      10,
	model.CategoryBook:        8,
	model.CategoryTVShow:      8,
	model.CategoryPodcast:     6,
	model.CategoryVideogame:   6,
}
