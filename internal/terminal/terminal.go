package terminal

import "io"

// Controller clears the visible terminal. Implementations are chosen per
// platform at build time.
type Controller interface {
	Clear()
}

// New returns the controller for the running platform writing to w.
func New(w io.Writer) Controller {
	return newPlatformController(w)
}

// Noop never touches the terminal.
type Noop struct{}

func (Noop) Clear() {}
