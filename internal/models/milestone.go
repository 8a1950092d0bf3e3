package models

// Milestone is a named tier unlocked once accumulated points cross its
// threshold. The catalog is static and ascending by MinXP.
type Milestone struct {
	ID          string
	Name        string
	Icon        string
	MinXP       int
	Description string
}

// Milestones is the built-in catalog, ascending by MinXP.
var Milestones = []Milestone{
	{ID: "seedling", Name: "Seedling", Icon: "🌱", MinXP: 0, Description: "Every journey starts with a single day."},
	{ID: "sprout", Name: "Sprout", Icon: "🌿", MinXP: 100, Description: "Ten completions in, momentum is building."},
	{ID: "sapling", Name: "Sapling", Icon: "🌳", MinXP: 500, Description: "Fifty completions. Habits are taking root."},
	{ID: "evergreen", Name: "Evergreen", Icon: "🏔️", MinXP: 1000, Description: "A hundred completions. This is who you are now."},
}
