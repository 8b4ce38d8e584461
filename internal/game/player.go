package game

import "errors"

type Role int

const (
	RolePlayerOne Role = iota
	RolePlayerTwo
)

func (r Role) Other() Role {
	if r == RolePlayerOne {
		return RolePlayerTwo
	} else {
		return RolePlayerOne
	}
}

func (r Role) String() string {
	if r == RolePlayerOne {
		return "Player 1"
	} else {
		return "Player 2"
	}
}

var (
	ErrPlayerLeft = errors.New("player left the game")
	ErrBadFormat  = errors.New("response does not match format")
)

type Player interface {
	// Sends a prompt and receives the player's response to it.
	//
	// If the player has gone away (e.g. input was closed),
	// `ErrPlayerLeft` will be returned.
	SendCommand(string) (string, error)

	// Shows text to the player without waiting for a response.
	Show(string) error

	// Terminates player session.
	Close() error
}
