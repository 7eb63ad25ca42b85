package core

// RuntimeConfig contains the per-program settings handed to a game on reset.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed, 0 means time based
}

// GameState is the compact status the platform needs between frames.
type GameState struct {
	Score    int
	Level    int
	Playing  bool
	GameOver bool
}
