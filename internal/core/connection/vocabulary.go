package connection

// Fixed cultural/tonal vocabulary scanned against entity descriptions.
// Immutable after init, shared safely across requests.
var culturalKeywords = []string{
	"artisanal", "craft", "indie", "vintage", "retro", "cozy", "intimate",
	"minimalist", "experimental", "underground", "local", "organic",
	"atmospheric", "nostalgic", "immersive", "dystopian", "whimsical",
	"acoustic", "jazz", "outdoor", "rooftop", "hidden", "eclectic",
	"moody", "vibrant", "handmade", "seasonal", "curated",
}

// genreGroup is a small curated synonym cluster; two descriptions matching
// anywhere in the same group count as a genre-level overlap.
type genreGroup struct {
	name    string
	members []string
}

var genreGroups = []genreGroup{
	{"action", []string{"action", "adventure", "thriller"}},
	{"jazz", []string{"jazz", "blues", "soul", "funk"}},
	{"indie", []string{"indie", "alternative", "underground"}},
	{"comedy", []string{"comedy", "humor", "satirical"}},
	{"drama", []string{"drama", "emotional", "poignant"}},
	{"fantasy", []string{"fantasy", "magical", "mythic"}},
	{"horror", []string{"horror", "eerie", "macabre"}},
	{"romance", []string{"romance", "romantic", "heartfelt"}},
	{"scifi", []string{"sci-fi", "futuristic", "dystopian", "cyberpunk"}},
}

// Known neighborhood/area markers for the location-overlap heuristic.
var neighborhoodKeywords = []string{
	"downtown", "uptown", "midtown", "old town", "riverside", "waterfront",
	"arts district", "historic district", "warehouse district", "main street",
}
