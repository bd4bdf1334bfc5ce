package components

import "github.com/yohamta/donburi"

// MatchData stores the frame counter and round timer.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	CurrentFrame int     // Frame being simulated; advanced once per Update
	RoundTimer   float64 // Seconds remaining
	Err          error   // First failure raised by a system; stops the game loop
}

var Match = donburi.NewComponentType[MatchData]()

// Fail records err unless an earlier failure is already recorded.
func (m *MatchData) Fail(err error) {
	if m.Err == nil {
		m.Err = err
	}
}
