package model

const (
	DefaultRatingKey = "default"
	DefaultRating    = 1
)

// RatingTable maps a check type to its weight in folder rollups.
type RatingTable map[string]int

// RatingFor returns the weight of checkType, falling back to the "default" entry and then to 1.
// Non-positive weights are ignored.
func (t RatingTable) RatingFor(checkType string) int {
	if rating, ok := t[checkType]; ok && rating > 0 {
		return rating
	}
	if rating, ok := t[DefaultRatingKey]; ok && rating > 0 {
		return rating
	}
	return DefaultRating
}
