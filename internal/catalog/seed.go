package catalog

// Seed is the built-in activity catalog. IDs are assigned by the repository
// on insert; the order here is the canonical catalog order used by the
// suggestion engine for tie-breaking.
var Seed = []Activity{
	// Food & Dining
	{Name: "Brunch", Category: CategoryFood, DurationHours: 2, Mood: MoodRelaxed, Icon: "Coffee", Description: "Enjoy a leisurely brunch", IsIndoor: true},
	{Name: "Cook Together", Category: CategoryFood, DurationHours: 3, Mood: MoodHappy, Icon: "ChefHat", Description: "Prepare a meal together", IsIndoor: true},
	{Name: "Food Market", Category: CategoryFood, DurationHours: 2, Mood: MoodEnergetic, Icon: "ShoppingCart", Description: "Explore local food markets", IsIndoor: false},

	// Outdoor
	{Name: "Hiking", Category: CategoryOutdoor, DurationHours: 4, Mood: MoodEnergetic, Icon: "Mountain", Description: "Nature trail adventure", IsIndoor: false},
	{Name: "Park Picnic", Category: CategoryOutdoor, DurationHours: 3, Mood: MoodRelaxed, Icon: "Trees", Description: "Relaxing outdoor meal", IsIndoor: false},
	{Name: "Beach Day", Category: CategoryOutdoor, DurationHours: 5, Mood: MoodHappy, Icon: "Waves", Description: "Sun, sand, and relaxation", IsIndoor: false},
	{Name: "Bike Ride", Category: CategoryOutdoor, DurationHours: 2, Mood: MoodEnergetic, Icon: "Bike", Description: "Cycling adventure", IsIndoor: false},

	// Entertainment
	{Name: "Movie Night", Category: CategoryEntertainment, DurationHours: 3, Mood: MoodRelaxed, Icon: "Film", Description: "Cozy movie watching", IsIndoor: true},
	{Name: "Board Games", Category: CategoryEntertainment, DurationHours: 2, Mood: MoodHappy, Icon: "Gamepad2", Description: "Fun board game session", IsIndoor: true},
	{Name: "Concert", Category: CategoryEntertainment, DurationHours: 4, Mood: MoodEnergetic, Icon: "Music", Description: "Live music experience", IsIndoor: false},
	{Name: "Museum Visit", Category: CategoryEntertainment, DurationHours: 3, Mood: MoodRelaxed, Icon: "Building", Description: "Cultural exploration", IsIndoor: true},

	// Wellness & Relaxation
	{Name: "Spa Day", Category: CategoryWellness, DurationHours: 4, Mood: MoodRelaxed, Icon: "Heart", Description: "Pampering and relaxation", IsIndoor: true},
	{Name: "Yoga Session", Category: CategoryWellness, DurationHours: 1, Mood: MoodRelaxed, Icon: "Activity", Description: "Mindful movement", IsIndoor: true},
	{Name: "Reading", Category: CategoryWellness, DurationHours: 2, Mood: MoodRelaxed, Icon: "Book", Description: "Quiet reading time", IsIndoor: true},
	{Name: "Meditation", Category: CategoryWellness, DurationHours: 1, Mood: MoodRelaxed, Icon: "Brain", Description: "Mindfulness practice", IsIndoor: true},

	// Social & Family
	{Name: "Friends Gathering", Category: CategorySocial, DurationHours: 4, Mood: MoodHappy, Icon: "Users", Description: "Social time with friends", IsIndoor: true},
	{Name: "Family Time", Category: CategorySocial, DurationHours: 3, Mood: MoodHappy, Icon: "Home", Description: "Quality family moments", IsIndoor: true},
	{Name: "Game Night", Category: CategorySocial, DurationHours: 3, Mood: MoodHappy, Icon: "Dice1", Description: "Fun games with others", IsIndoor: true},

	// Creative & Learning
	{Name: "Art & Craft", Category: CategoryCreative, DurationHours: 3, Mood: MoodHappy, Icon: "Palette", Description: "Creative expression", IsIndoor: true},
	{Name: "Photography", Category: CategoryCreative, DurationHours: 3, Mood: MoodEnergetic, Icon: "Camera", Description: "Capture memories", IsIndoor: false},
	{Name: "Learn Something New", Category: CategoryCreative, DurationHours: 2, Mood: MoodEnergetic, Icon: "GraduationCap", Description: "Skill development", IsIndoor: true},
}
