package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fnwatchdog/fnwatchdog/internal/domain"
)

// RenderRunResult renders a RunResult as a styled TUI string.
func RenderRunResult(r *domain.RunResult) string {
	var b strings.Builder

	// ── Header ──
	verdict, verdictColor := "PASS", success
	if r.Gate == domain.GateFail {
		verdict, verdictColor = "FAIL", danger
	}
	verdictStyled := lipgloss.NewStyle().Bold(true).Foreground(verdictColor).Render(verdict)

	title := headerStyle.Render("fnwatchdog")
	subtitle := dimStyle.Render("Naming Convention Check")
	summary := dimStyle.Render(fmt.Sprintf("%d finding(s) in %d source root(s)", len(r.Findings), len(r.Result.Reports)))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdictStyled + "\n" + summary))
	b.WriteString("\n\n")

	if len(r.Result.Reports) == 0 {
		b.WriteString("  " + warnStyle.Render("No source roots scanned.") + "\n")
		return b.String()
	}

	// ── Roots ──
	byRoot := groupByRoot(r.Findings)
	for _, report := range r.Result.Reports {
		renderRoot(&b, report.Root, byRoot[report.Root])
	}

	b.WriteString("  " + separatorLine + "\n\n")

	switch {
	case !r.Result.HasViolations:
		b.WriteString("  " + passStyle.Render("No violations found.") + "\n")
	case r.Gate == domain.GatePass:
		b.WriteString("  " + hintStyle.Render("Violations are reported only (fail_on_violation is off).") + "\n")
	default:
		b.WriteString("  " + failStyle.Render("Naming conventions violated.") + "\n")
	}

	if r.CommitHash != "" {
		b.WriteString("  " + dimStyle.Render("commit "+shortHash(r.CommitHash)) + "\n")
	}

	return b.String()
}

func renderRoot(b *strings.Builder, root string, findings []domain.Finding) {
	icon := passStyle.Render("●")
	if len(findings) > 0 {
		icon = failStyle.Render("●")
	}
	fmt.Fprintf(b, "  %s %s %s\n", icon, titleStyle.Render(root),
		dimStyle.Render(fmt.Sprintf("(%d)", len(findings))))

	for _, f := range findings {
		switch f.Kind {
		case domain.FindingPackage:
			fmt.Fprintf(b, "    %s package %s\n", errorTagStyle.Render("pkg "), f.Package)
		case domain.FindingFile:
			fmt.Fprintf(b, "    %s %s  %s\n", warnTagStyle.Render("file"), f.File, fileStyle.Render(f.Package))
		}
	}
	b.WriteString("\n")
}

func groupByRoot(findings []domain.Finding) map[string][]domain.Finding {
	out := make(map[string][]domain.Finding)
	for _, f := range findings {
		out[f.Root] = append(out[f.Root], f)
	}
	return out
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}
