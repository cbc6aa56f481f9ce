package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// RenderDocx writes a document with one paragraph per transcript summary
func RenderDocx(title string, rows []SummaryRow, generatedAt time.Time, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	addStyledRun(doc.AddParagraph(""), "Generated "+generatedAt.Format("2006-01-02 15:04"), false, fontSize)
	doc.AddParagraph("")

	if len(rows) == 0 {
		addStyledRun(doc.AddParagraph(""), "No transcripts analysed yet.", false, fontSize)
	}

	for _, row := range rows {
		p := doc.AddParagraph("")
		addStyledRun(p, row.Date+": ", true, fontSize)
		addStyledRun(p, fmt.Sprintf("%s (positive %s, neutral %s, negative %s)",
			capitalize(string(row.Dominant())),
			formatPercent(row.Positive),
			formatPercent(row.Neutral),
			formatPercent(row.Negative),
		), false, fontSize)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
