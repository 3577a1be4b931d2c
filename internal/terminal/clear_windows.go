//go:build windows

package terminal

import (
	"io"
	"log/slog"
	"os/exec"
)

// cmdController clears the console through cmd's builtin cls
type cmdController struct {
	w io.Writer
}

func newPlatformController(w io.Writer) Controller {
	return &cmdController{w: w}
}

func (c *cmdController) Clear() {
	cmd := exec.Command("cmd", "/c", "cls")
	cmd.Stdout = c.w
	if err := cmd.Run(); err != nil {
		slog.Warn("failed to clear terminal", "error", err)
	}
}
