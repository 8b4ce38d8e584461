package game

import (
	"fmt"
	"strings"
)

type PlayerExt struct {
	Player
}

func (p *PlayerExt) Showf(format string, a ...any) error {
	return p.Show(fmt.Sprintf(format, a...))
}

// Sends cmd until the player answers with a non-blank line.
func (p *PlayerExt) SendNonEmpty(cmd string) (string, error) {
	for {
		resp, err := p.SendCommand(cmd)
		if err != nil || strings.TrimSpace(resp) != "" {
			return resp, err
		}
	}
}

// Sends cmd and scans the response into a. Blank responses are skipped.
//
// A response that does not match format yields an error wrapping
// `ErrBadFormat`; I/O errors are returned as is.
func (p *PlayerExt) SendScanf(cmd string, format string, a ...any) error {
	resp, err := p.SendNonEmpty(cmd)
	if err != nil {
		return err
	}

	n, err := fmt.Sscanf(resp, format, a...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadFormat, err)
	}
	if n != len(a) {
		return ErrBadFormat
	}

	return nil
}

// Waits until the player sends any line, e.g. to acknowledge a handoff.
func (p *PlayerExt) WaitAck(prompt string) error {
	_, err := p.SendCommand(prompt)
	return err
}
