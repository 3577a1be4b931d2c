//go:build linux || darwin

package terminal

import (
	"io"

	"github.com/muesli/termenv"
)

// ansiController clears the screen with ANSI escape sequences
type ansiController struct {
	out *termenv.Output
}

func newPlatformController(w io.Writer) Controller {
	return &ansiController{out: termenv.NewOutput(w)}
}

func (c *ansiController) Clear() {
	c.out.ClearScreen()
}
