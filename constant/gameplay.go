package constant

// Scoring and Lifecycle
const (
	// LifeMax is the life a new session starts with
	LifeMax = 10

	// HitScore is awarded per matched symbol at the judgment line
	HitScore = 1

	// MissPenalty is the life lost per missed or mismatched real symbol
	MissPenalty = 1
)

// Spawn and Lane
const (
	// DefaultAlphabetSize is Neutral plus the four wearable gestures
	DefaultAlphabetSize = 5

	// ButtonAlphabetSize is Neutral plus the three-button variant (up, select, down)
	ButtonAlphabetSize = 4

	// DefaultSpawnInterval is the number of ticks between spawns
	DefaultSpawnInterval = 12

	// DefaultQueueDepth is the lane depth, the display height of the original front-end
	DefaultQueueDepth = 40
)
