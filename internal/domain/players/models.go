package players

import "strings"

// Player is a rostered player of the tracked team.
type Player struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Jersey    string `json:"jersey"`
	Position  string `json:"position"`
}

// Name is the player's display name.
func (p Player) Name() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
