package dashboard

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"admissions-dashboard/internal/admissions"
)

// Tier is the highlight level used for headline numbers.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Highlight thresholds; a count strictly above a threshold reaches its tier.
const (
	HighlightHighOver   = 1000
	HighlightMediumOver = 500
)

// Highlight classifies a count into a display tier.
func Highlight(v int64) Tier {
	switch {
	case v > HighlightHighOver:
		return TierHigh
	case v > HighlightMediumOver:
		return TierMedium
	default:
		return TierLow
	}
}

const barWidth = 40

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Render writes a text rendering of the view: headline cards, the
// per-program bar chart, the filtered trend line and the program table.
func Render(w io.Writer, v View) error {
	var b strings.Builder
	b.WriteString("Admission Analytics Dashboard\n")
	b.WriteString("University Admin Portal\n\n")

	if v.Snapshot == nil && v.Loading() {
		b.WriteString("Loading analytics…\n")
	}
	if v.Err != "" {
		fmt.Fprintf(&b, "%s\nUse refresh to try again.\n\n", v.Err)
	}
	if v.Snapshot == nil {
		_, err := io.WriteString(w, b.String())
		return err
	}
	snap := v.Snapshot
	if v.Loading() {
		b.WriteString("Refreshing...\n\n")
	}

	tw := tabwriter.NewWriter(&b, 0, 4, 3, ' ', 0)
	fmt.Fprintln(tw, "Total Applicants\tVerified Applicants\tRejected Applicants")
	fmt.Fprintf(tw, "%s\t%s\t%s\n", card(snap.TotalApplicants), card(snap.VerifiedApplicants), card(snap.RejectedApplicants))
	if err := tw.Flush(); err != nil {
		return err
	}

	b.WriteString("\nApplications per Program\n")
	if len(snap.PerProgram) == 0 {
		b.WriteString("  No data available\n")
	} else {
		writeBars(&b, snap.PerProgram)
	}

	b.WriteString("\nApplication Trends")
	if v.Range.From != "" || v.Range.To != "" {
		fmt.Fprintf(&b, " (%s .. %s)", orDash(v.Range.From), orDash(v.Range.To))
	}
	b.WriteString("\n")
	if len(v.FilteredTrends) == 0 {
		b.WriteString("  No data in selected range\n")
	} else {
		writeTrendLine(&b, v.FilteredTrends)
	}

	b.WriteString("\nPrograms Summary\n")
	if len(snap.PerProgram) == 0 {
		b.WriteString("  No data available\n")
	} else {
		tw = tabwriter.NewWriter(&b, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "Program\tApplicants\t")
		for _, row := range snap.PerProgram {
			fmt.Fprintf(tw, "%s\t%s\t\n", row.Program, card(row.Applications))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if snap.GeneratedAt != "" {
		fmt.Fprintf(&b, "\nGenerated at %s\n", snap.GeneratedAt)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderTrendTable writes one date/applications row per point.
func RenderTrendTable(w io.Writer, points []admissions.TrendPoint) error {
	if len(points) == 0 {
		_, err := io.WriteString(w, "No data in selected range\n")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tAPPLICATIONS")
	for _, p := range points {
		fmt.Fprintf(tw, "%s\t%s\n", p.Date, humanize.Comma(p.Applications))
	}
	return tw.Flush()
}

func card(v int64) string {
	return fmt.Sprintf("%s [%s]", humanize.Comma(v), Highlight(v))
}

func writeBars(b *strings.Builder, rows []admissions.ProgramCount) {
	var maxVal int64
	nameWidth := 0
	for _, r := range rows {
		if r.Applications > maxVal {
			maxVal = r.Applications
		}
		if n := len([]rune(r.Program)); n > nameWidth {
			nameWidth = n
		}
	}
	for _, r := range rows {
		n := 0
		if maxVal > 0 {
			n = int(r.Applications * barWidth / maxVal)
		}
		pad := nameWidth - len([]rune(r.Program))
		fmt.Fprintf(b, "  %s%s  %s %s\n", r.Program, strings.Repeat(" ", pad), strings.Repeat("█", n), humanize.Comma(r.Applications))
	}
}

func writeTrendLine(b *strings.Builder, points []admissions.TrendPoint) {
	lo, hi := points[0].Applications, points[0].Applications
	for _, p := range points[1:] {
		lo = min(lo, p.Applications)
		hi = max(hi, p.Applications)
	}
	span := hi - lo
	line := make([]rune, 0, len(points))
	for _, p := range points {
		idx := 0
		if span > 0 {
			idx = int((p.Applications - lo) * int64(len(sparkRunes)-1) / span)
		}
		line = append(line, sparkRunes[idx])
	}
	fmt.Fprintf(b, "  %s\n", string(line))
	fmt.Fprintf(b, "  %s .. %s  min %s  max %s  days %d\n",
		points[0].Date, points[len(points)-1].Date,
		humanize.Comma(lo), humanize.Comma(hi), len(points))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
