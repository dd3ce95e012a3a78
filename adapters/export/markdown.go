package export

import (
	"fmt"
	"strings"

	"stratasample/domain/audit"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// RenderMarkdown renders an audit record as human-readable documentation:
// which IDs were selected, under what formula inputs and seed. The structured
// record stays the source of truth; this is presentation only.
func RenderMarkdown(record *audit.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Sampling Run %s\n\n", record.RunID)
	fmt.Fprintf(&b, "- Created: %s\n", record.CreatedAt)
	fmt.Fprintf(&b, "- Population fingerprint: `%s`\n", record.PopulationFingerprint)
	fmt.Fprintf(&b, "- Base seed: `%d` (per-stratum derivation: %s)\n", record.BaseSeed, record.SeedDerivation)
	fmt.Fprintf(&b, "- Confidence z: %g, margin of error: %g, small-population threshold: %d\n",
		record.Parameters.ConfidenceZ, record.Parameters.MarginOfError, record.Parameters.SmallPopulationThreshold)
	fmt.Fprintf(&b, "- Total selected: %d\n\n", record.TotalSelected())

	b.WriteString("## Size decisions\n\n")
	b.WriteString("| Stratum | N | Std dev | Computed n | Applied n | Method |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, d := range record.Decisions {
		fmt.Fprintf(&b, "| %s | %d | %g | %d | %d | %s |\n",
			d.Stratum, d.PopulationSize, d.StdDev, d.ComputedN, d.AppliedN, d.Method)
	}
	b.WriteString("\n")

	b.WriteString("## Selections\n\n")
	for _, r := range record.Results {
		fmt.Fprintf(&b, "### %s (seed %d, drawn %s)\n\n", r.Stratum, r.Seed, r.Timestamp)
		for i, id := range r.SelectedIDs {
			fmt.Fprintf(&b, "%d. %s\n", i+1, id)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderHTML converts the Markdown rendering to standalone HTML
func RenderHTML(record *audit.Record) []byte {
	md := RenderMarkdown(record)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	return markdown.Render(doc, renderer)
}
