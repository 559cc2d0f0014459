package types

type Restaurant struct {
	ID         string   `json:"id" redis:"id"`
	Name       string   `json:"name" redis:"name"`
	Location   string   `json:"location" redis:"location"`
	ViewCount  int64    `json:"view_count" redis:"viewCount"`
	TotalStars int64    `json:"total_stars" redis:"totalStars"`
	AvgStars   float64  `json:"avg_stars" redis:"avgStars"`
	Cuisines   []string `json:"cuisines" redis:"-"`
}

// RestaurantSummary is the projection returned by cuisine and ranking
// lookups, where only the identity and score matter.
type RestaurantSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	AvgStars float64 `json:"avg_stars"`
}
