package types

// RatingEntry is one member of the global rating index.
type RatingEntry struct {
	RestaurantID string
	Score        float64
}
