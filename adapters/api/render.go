package api

import (
	"fmt"
	"strings"

	"effsample/models"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// RenderMarkdown formats a completeness report as a markdown document
func RenderMarkdown(report *models.CompletenessReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Completeness Report: %s\n\n", report.StudyName)
	fmt.Fprintf(&b, "Generated %s\n\n", report.CreatedAt.Format("2006-01-02 15:04 UTC"))

	b.WriteString("## Effective Sample\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Total observations | %d |\n", report.NTotal)
	fmt.Fprintf(&b, "| Effective sample size | %d |\n", report.NEffective)
	fmt.Fprintf(&b, "| Units with any missing value | %d |\n", report.NMissing)
	fmt.Fprintf(&b, "| Completeness | %.1f%% |\n", report.ProportionComplete*100)
	fmt.Fprintf(&b, "| Missingness | %.1f%% |\n\n", report.ProportionMissing*100)

	b.WriteString("## Missing Values by Variable\n\n")
	b.WriteString("| Variable | Missing |\n|---|---|\n")
	for i, name := range report.VariableNames {
		missing := int64(0)
		if i < len(report.MissingByVariable) {
			missing = report.MissingByVariable[i]
		}
		fmt.Fprintf(&b, "| %s | %d |\n", name, missing)
	}
	b.WriteString("\n")

	if report.HasEstimate {
		b.WriteString("## Proportion Estimate\n\n")
		fmt.Fprintf(&b, "- Successes: %d of %d complete cases\n", report.Successes, report.NEffective)
		fmt.Fprintf(&b, "- p-hat: %.4f\n", report.PHat)
		fmt.Fprintf(&b, "- Standard error: %.4f\n", report.StandardError)
		fmt.Fprintf(&b, "- %.0f%% CI: [%.4f, %.4f]\n", report.ConfidenceLevel*100, report.CILower, report.CIUpper)
	}

	return b.String()
}

// RenderHTML renders the markdown report to HTML
func RenderHTML(report *models.CompletenessReport) []byte {
	doc := RenderMarkdown(report)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})

	return markdown.ToHTML([]byte(doc), p, renderer)
}
