package model

// Team is an ordered roster of players competing together
type Team struct {
	Name    string
	Players []Player

	// PlayerTurnIndex is this team's player rotation cursor: the index of
	// the player due the next time the team rotation reaches this team.
	PlayerTurnIndex int
}

// PlayerByID returns the roster entry with the given id, or nil
func (t *Team) PlayerByID(id PlayerID) *Player {
	for i := range t.Players {
		if t.Players[i].ID == id {
			return &t.Players[i]
		}
	}
	return nil
}

// PlayerByName returns the roster entry with the given name, or nil
func (t *Team) PlayerByName(name string) *Player {
	for i := range t.Players {
		if t.Players[i].Name == name {
			return &t.Players[i]
		}
	}
	return nil
}
