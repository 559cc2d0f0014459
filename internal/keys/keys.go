// Package keys builds every Redis key the service uses. All keys share the
// "bites" prefix and a ":" separator so different entity kinds can never
// collide on the same identifier.
package keys

import "strings"

const (
	prefix    = "bites"
	separator = ":"
)

func Key(parts ...string) string {
	return prefix + separator + strings.Join(parts, separator)
}

func Restaurant(id string) string {
	return Key("restaurants", id)
}

func ReviewList(restaurantID string) string {
	return Key("reviews", restaurantID)
}

func ReviewDetails(reviewID string) string {
	return Key("review_details", reviewID)
}

func Cuisines() string {
	return Key("cuisines")
}

func Cuisine(name string) string {
	return Key("cuisine", name)
}

func RestaurantCuisines(restaurantID string) string {
	return Key("restaurant_cuisines", restaurantID)
}

func RestaurantsByRating() string {
	return Key("restaurants_by_rating")
}

func Weather(restaurantID string) string {
	return Key("weather", restaurantID)
}
