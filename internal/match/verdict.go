package match

import (
	"encoding/json"

	"github.com/mrsobakin/battleship/internal/game"
)

type Result int

const (
	None Result = iota
	PlayerOneWon
	PlayerTwoWon
)

func (r Result) String() string {
	switch r {
	case None:
		return "none"
	case PlayerOneWon:
		return "player 1"
	case PlayerTwoWon:
		return "player 2"
	default:
		panic("invalid result")
	}
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func ResultFromWinner(role game.Role) Result {
	if role == game.RolePlayerOne {
		return PlayerOneWon
	}
	if role == game.RolePlayerTwo {
		return PlayerTwoWon
	}
	panic("unknown role")
}

type Verdict struct {
	MatchID string `json:"match_id"`
	Winner  Result `json:"winner"`

	// Shots fired by the winner.
	Shots int `json:"shots"`
}
