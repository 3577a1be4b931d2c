//go:build linux || darwin

package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_ClearsWithANSI(t *testing.T) {
	var buf bytes.Buffer

	New(&buf).Clear()

	if !strings.Contains(buf.String(), "\x1b[2J") {
		t.Errorf("Clear() wrote %q, want erase display sequence", buf.String())
	}
}

func TestNoop_Clear(t *testing.T) {
	var c Controller = Noop{}
	c.Clear()
}
