package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pixel-blaster/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	if got, want := RenderScreen(s), "ab  \n cd "; got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestRenderScreenKeepsColoredRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "██", core.ColorGray)
	s.DrawTextColored(2, 0, "[]", core.ColorCyan)
	s.DrawTextColored(4, 0, "**", core.ColorOrange)

	out := RenderScreen(s)
	for _, part := range []string{"██", "[]", "**"} {
		if !strings.Contains(out, part) {
			t.Errorf("RenderScreen() = %q, missing %q", out, part)
		}
	}
	if strings.Contains(out, "\n") {
		t.Errorf("single row rendered with a newline: %q", out)
	}
}
