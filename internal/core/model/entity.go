package model

// Category keys for the supported content domains.
const (
	CategoryPlace       = "place"
	CategoryMovie       = "movie"
	CategoryTVShow      = "tv_show"
	CategoryArtist      = "artist"
	CategoryBook        = "book"
	CategoryPodcast     = "podcast"
	CategoryVideogame   = "videogame"
	CategoryDestination = "destination"
)

// Entity is a single recommended item returned by the fetch collaborator.
// The engine only ever reads it after normalization.
type Entity struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Location    string                 `json:"location,omitempty"`
	Score       float64                `json:"score"`
	Category    string                 `json:"category"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}
