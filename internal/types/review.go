package types

type Review struct {
	ID           string `json:"id" redis:"id"`
	RestaurantID string `json:"restaurant_id" redis:"restaurantId"`
	Review       string `json:"review" redis:"review"`
	Rating       int64  `json:"rating" redis:"rating"`
	// Timestamp is set server-side at creation, unix milliseconds.
	Timestamp int64 `json:"timestamp" redis:"timestamp"`
}
