package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/phylokit/astralmap/internal/model"
)

// MarkdownWriter outputs a scan summary in GitHub-flavored Markdown,
// for sharing alongside the generated map file.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the scan summary. Returns the number of bytes rendered.
func (w *MarkdownWriter) Write(report *model.ScanReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeFormatChart(md, report)
	w.writeFiles(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the summary table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ScanReport) {
	md.H1("Taxon Map Scan Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Input Directory", "`" + report.Root + "`"},
			{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
			{"Files Scanned", strconv.Itoa(report.FileCount())},
			{"Files Skipped", strconv.Itoa(report.SkippedCount())},
			{"Unique Taxa", strconv.Itoa(report.TaxonCount())},
		},
	})
	md.PlainText("")
}

// writeFormatChart writes a mermaid pie chart of the detected format
// distribution. Skipped when no files were found.
func (w *MarkdownWriter) writeFormatChart(md *markdown.Markdown, report *model.ScanReport) {
	if report.FileCount() == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Alignment Format Distribution"),
		piechart.WithShowData(true),
	)

	for _, format := range []model.Format{model.FormatFASTA, model.FormatNexus, model.FormatUnknown} {
		if n := report.CountByFormat(format); n > 0 {
			chart.LabelAndIntValue(format.String(), uint64(n))
		}
	}

	md.H2("Formats")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFiles writes the per-file result table.
func (w *MarkdownWriter) writeFiles(md *markdown.Markdown, report *model.ScanReport) {
	if report.FileCount() == 0 {
		return
	}

	rows := make([][]string, 0, report.FileCount())
	for _, f := range report.Files {
		status := "ok"
		if f.Skipped {
			status = "skipped: " + f.Error
		}
		rows = append(rows, []string{
			"`" + f.Path + "`",
			f.Format.String(),
			strconv.Itoa(f.TaxaCount),
			status,
		})
	}

	md.H2("Files")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"File", "Format", "Taxa", "Status"},
		Rows:   rows,
	})
}

// WriteMarkdownFile writes the Markdown summary to path, creating parent
// directories as needed.
func WriteMarkdownFile(path string, report *model.ScanReport) error {
	return writeFile(path, func(f io.Writer) error {
		_, err := NewMarkdownWriter(f).Write(report)
		return err
	})
}
