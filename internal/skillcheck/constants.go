package skillcheck

// Target bounds. No check is ever certain or hopeless.
const (
	MinTarget = 5
	MaxTarget = 95

	// LevelWeight is the target bonus per level the actor is above the recipe
	LevelWeight = 2
)

// Quality tier margin thresholds (exclusive upper bounds)
const (
	PoorBelow        = 20
	NormalBelow      = 40
	FineBelow        = 60
	ExceptionalBelow = 80
)

// Improvement rates handed to the skill-improvement subsystem. Larger is slower.
const (
	RateEasy   = 4
	RateMedium = 3
	RateHard   = 2

	// Level differences (recipe - actor) separating the rates
	EasyBelowDiff   = -10
	MediumBelowDiff = 5
)
