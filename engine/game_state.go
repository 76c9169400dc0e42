package engine

// GameState is the scoring state of one session
// Owned by the game loop goroutine; everything outside it sees copies
type GameState struct {
	Score     int    `json:"score"`
	Streak    int    `json:"streak"`
	Life      int    `json:"life"`
	LifeMax   int    `json:"life_max"`
	TickCount uint64 `json:"tick_count"`
	Terminal  bool   `json:"terminal"`
}

// NewGameState creates the start-of-game state
func NewGameState(lifeMax int) GameState {
	return GameState{
		Life:    lifeMax,
		LifeMax: lifeMax,
	}
}
