package display

import (
	"fmt"
	"strings"
)

// ListRow is one line of the candidate listing: the winning original
// for a base name, plus its sidecar and metadata when requested.
type ListRow struct {
	Base    string
	Path    string
	Ext     string
	Rank    int
	Sidecar string
	Rating  string
	Label   string
}

// RenderList renders the candidate listing for a reference tree. Rows
// are rendered in the order given; index.BaseNames already sorts them.
func (r *Renderer) RenderList(referenceRoot string, rows []ListRow) string {
	var b strings.Builder

	header := fmt.Sprintf("%d originals in %s", len(rows), referenceRoot)
	b.WriteString(r.styled("Header", header))

	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString("  ")
		b.WriteString(r.styled("Base", row.Base))
		b.WriteString(" -> ")
		b.WriteString(r.styled("FilePath", row.Path))
		b.WriteString(" ")
		b.WriteString(r.styled("Muted", fmt.Sprintf("[%s #%d]", row.Ext, row.Rank)))

		if row.Sidecar != "" {
			b.WriteString(" ")
			b.WriteString(r.styled("Success", "+sidecar"))
		}
		if meta := renderMeta(row); meta != "" {
			b.WriteString(" ")
			b.WriteString(r.styled("Muted", meta))
		}
	}

	return b.String()
}

func renderMeta(row ListRow) string {
	var parts []string
	if row.Rating != "" {
		parts = append(parts, "rating="+row.Rating)
	}
	if row.Label != "" {
		parts = append(parts, "label="+row.Label)
	}
	return strings.Join(parts, " ")
}
