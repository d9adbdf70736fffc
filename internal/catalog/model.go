package catalog

// Movie mirrors the catalog record served to clients. IDs follow the
// external catalog (TMDB) numbering.
type Movie struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	PosterPath   string   `json:"posterPath"`
	BackdropPath string   `json:"backdropPath"`
	Genres       []string `json:"genres"`
	Rating       float64  `json:"rating"`
	IsPremium    bool     `json:"isPremium"`
	Year         int      `json:"year"`
	TrailerURL   string   `json:"trailerUrl,omitempty"`
}
