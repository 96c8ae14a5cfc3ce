package catalog

// RenderTag identifies which glyph a client should render for an activity.
// The set is closed: unknown icon identifiers resolve to TagDefault instead
// of being looked up dynamically at render time.
type RenderTag string

const (
	TagDefault    RenderTag = "calendar"
	TagCoffee     RenderTag = "coffee"
	TagChefHat    RenderTag = "chef-hat"
	TagCart       RenderTag = "cart"
	TagMountain   RenderTag = "mountain"
	TagTrees      RenderTag = "trees"
	TagWaves      RenderTag = "waves"
	TagBike       RenderTag = "bike"
	TagFilm       RenderTag = "film"
	TagGamepad    RenderTag = "gamepad"
	TagMusic      RenderTag = "music"
	TagBuilding   RenderTag = "building"
	TagHeart      RenderTag = "heart"
	TagActivity   RenderTag = "activity"
	TagBook       RenderTag = "book"
	TagBrain      RenderTag = "brain"
	TagUsers      RenderTag = "users"
	TagHome       RenderTag = "home"
	TagDice       RenderTag = "dice"
	TagPalette    RenderTag = "palette"
	TagCamera     RenderTag = "camera"
	TagGraduation RenderTag = "graduation"
)

var renderTags = map[string]RenderTag{
	"Coffee":        TagCoffee,
	"ChefHat":       TagChefHat,
	"ShoppingCart":  TagCart,
	"Mountain":      TagMountain,
	"Trees":         TagTrees,
	"Waves":         TagWaves,
	"Bike":          TagBike,
	"Film":          TagFilm,
	"Gamepad2":      TagGamepad,
	"Music":         TagMusic,
	"Building":      TagBuilding,
	"Heart":         TagHeart,
	"Activity":      TagActivity,
	"Book":          TagBook,
	"Brain":         TagBrain,
	"Users":         TagUsers,
	"Home":          TagHome,
	"Dice1":         TagDice,
	"Palette":       TagPalette,
	"Camera":        TagCamera,
	"GraduationCap": TagGraduation,
}

// Tag resolves an activity's icon identifier to its render tag.
func Tag(a Activity) RenderTag {
	if tag, ok := renderTags[a.Icon]; ok {
		return tag
	}
	return TagDefault
}
