package catalog

// Category groups activities for filtering and variety scoring.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryOutdoor       Category = "outdoor"
	CategoryEntertainment Category = "entertainment"
	CategoryWellness      Category = "wellness"
	CategorySocial        Category = "social"
	CategoryCreative      Category = "creative"
)

// Categories lists every category in the order used for gap detection.
var Categories = []Category{
	CategoryFood,
	CategoryOutdoor,
	CategoryEntertainment,
	CategoryWellness,
	CategorySocial,
	CategoryCreative,
}

// Mood classifies the energy level of an activity.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodRelaxed   Mood = "relaxed"
	MoodEnergetic Mood = "energetic"
)

// Activity is a single entry in the catalog. Activities are immutable;
// planners only ever read them.
type Activity struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	DurationHours float64  `json:"duration"` // in hours, always > 0
	Mood          Mood     `json:"mood"`
	Icon          string   `json:"icon"`
	Description   string   `json:"description"`
	IsIndoor      bool     `json:"isIndoor"`
}
