package tui

import (
	"fmt"
	"strings"

	"github.com/fnwatchdog/fnwatchdog/internal/domain"
)

// RenderHistory renders recorded runs, oldest first, with the change in
// finding count against the previous run.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := shortHash(e.CommitHash)
		if hash == "" {
			hash = "·······"
		}

		gate := passStyle.Render("PASS")
		if e.Gate == domain.GateFail {
			gate = failStyle.Render("FAIL")
		}

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			gate,
			fmt.Sprintf("%d finding(s)", e.Findings),
		)

		if i > 0 {
			diff := e.Findings - entries[i-1].Findings
			if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
