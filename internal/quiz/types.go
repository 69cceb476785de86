package quiz

// ChoiceSlots is the fixed number of answer slots every question carries.
// Questions with fewer real options pad the remainder with empty strings.
const ChoiceSlots = 4

// Difficulty bounds for imported and generated questions.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question is a single quiz item. Immutable once constructed; the correct
// answer always appears among the non-empty choices.
type Question struct {
	// ID is unique within a content pack.
	ID int

	// Text is the prompt shown to the player.
	Text string

	// Answer is the correct answer text, matching one of Choices.
	Answer string

	// Choices holds exactly ChoiceSlots entries in display order.
	Choices []string

	// Difficulty is in [MinDifficulty, MaxDifficulty].
	Difficulty int

	// CategoryID is the owning category.
	CategoryID int

	// SectionID is the owning section within the category.
	SectionID int
}

// Category groups questions under a display name. The Point record is
// joined on at read time by the progress repository; a Category value is
// never mutated in place after that enrichment.
type Category struct {
	ID            int
	Name          string
	Info          string
	Image         string
	QuestionCount int
	Ordinal       int
	Point         Point
}

// Section is a sub-range of a category's questions used for progressive
// unlocking in arcade mode. Sections are ordered by ID.
type Section struct {
	ID            int
	CategoryID    int
	QuestionCount int
	Point         Point
}

// Point carries the accumulated best results for one category or section.
// Count is the total question count of the entity the point is attached to,
// filled in by the join so percent math needs no second lookup.
type Point struct {
	ArcadeBest   int
	MarathonBest int
	SprintBest   int
	Attempts     int
	Count        int
}
