package console

import (
	"bufio"
	"io"
	"strings"

	"github.com/mrsobakin/battleship/internal/game"
)

// Player talks to a human over a line oriented text stream, normally the
// process stdin and stdout. A single Player may take both seats of a
// hotseat match.
type Player struct {
	out     io.Writer
	scanner *bufio.Scanner
	closer  io.Closer
}

var _ game.Player = (*Player)(nil)

func NewPlayer(in io.Reader, out io.Writer) *Player {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanLines)

	p := &Player{
		out:     out,
		scanner: scanner,
	}

	if c, ok := in.(io.Closer); ok {
		p.closer = c
	}

	return p
}

func (p *Player) SendCommand(cmd string) (string, error) {
	if err := p.Show(cmd); err != nil {
		return "", err
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", game.ErrPlayerLeft
	}

	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}

func (p *Player) Show(msg string) error {
	_, err := io.WriteString(p.out, msg+"\n")
	return err
}

func (p *Player) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}
