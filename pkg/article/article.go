package article

import "fmt"

// Category is the news desk an article is filed under.
type Category string

const (
	CategoryPolitics      Category = "POLITICS"
	CategoryEconomy       Category = "ECONOMY"
	CategorySociety       Category = "SOCIETY"
	CategoryWorld         Category = "WORLD"
	CategoryCulture       Category = "CULTURE"
	CategoryITScience     Category = "IT_SCIENCE"
	CategorySports        Category = "SPORTS"
	CategoryEntertainment Category = "ENTERTAINMENT"
)

// DefaultCategory is substituted whenever the model returns a category
// outside the known set.
const DefaultCategory = CategorySociety

var knownCategories = map[Category]bool{
	CategoryPolitics:      true,
	CategoryEconomy:       true,
	CategorySociety:       true,
	CategoryWorld:         true,
	CategoryCulture:       true,
	CategoryITScience:     true,
	CategorySports:        true,
	CategoryEntertainment: true,
}

// Categories returns the known category set in display order.
func Categories() []Category {
	return []Category{
		CategoryPolitics,
		CategoryEconomy,
		CategorySociety,
		CategoryWorld,
		CategoryCulture,
		CategoryITScience,
		CategorySports,
		CategoryEntertainment,
	}
}

// ParseCategory coerces a raw category string to a known Category.
// Unknown values fall back to DefaultCategory; this never errors.
func ParseCategory(raw string) Category {
	c := Category(raw)
	if knownCategories[c] {
		return c
	}
	return DefaultCategory
}

// Valid reports whether c is a member of the known category set.
func (c Category) Valid() bool {
	return knownCategories[c]
}

// Article is a snapshot of the reporter's draft plus the game-mode
// flags active when the request was made. The engine treats it as an
// immutable input; builders and the simulator never modify it.
type Article struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
	Author   string   `json:"author,omitempty"`

	EmergencyMode   bool `json:"emergency_mode,omitempty"`
	CrazyMode       bool `json:"crazy_mode,omitempty"`
	FakeNewsMode    bool `json:"fake_news_mode,omitempty"`
	TimeMachineMode bool `json:"time_machine_mode,omitempty"`

	// TargetYear is the time-machine destination. Kept as a string
	// because it arrives from a free-text input; unparseable values
	// fall back to the current year.
	TargetYear string `json:"target_year,omitempty"`

	// PreviousContext is a short summary of the reporter's previous
	// article, used for continuity in reaction generation.
	PreviousContext string `json:"previous_context,omitempty"`
}

// Draft is the partial article returned by random generation.
type Draft struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
}

// Validate checks that an article is complete enough to simulate.
func (a *Article) Validate() error {
	if a.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if a.Content == "" {
		return fmt.Errorf("content cannot be empty")
	}
	return nil
}
