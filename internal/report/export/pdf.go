package export

import (
	"fmt"
	"time"

	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDF renders the paginated artifact from the same Document the CSV
// serializer uses. productLabel lands in the footer.
func PDF(rep *reportdomain.Report, productLabel string, now time.Time) ([]byte, error) {
	doc, err := Compose(rep)
	if err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, doc.Title, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, "Period: "+doc.Period, props.Text{Size: 10}),
	)

	addSummary(m, doc.Cards)
	for _, table := range doc.Tables {
		addTable(m, table)
	}

	m.AddRow(12,
		text.NewCol(12, fmt.Sprintf("%s - generated %s", productLabel, now.Format("2006-01-02 15:04")), props.Text{
			Size: 8,
			Top:  6,
		}),
	)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate document: %w", err)
	}
	return out.GetBytes(), nil
}

// addSummary lays the scalar cards out three to a row.
func addSummary(m core.Maroto, cards []Card) {
	for start := 0; start < len(cards); start += 3 {
		end := start + 3
		if end > len(cards) {
			end = len(cards)
		}

		cols := make([]core.Col, 0, 3)
		for _, card := range cards[start:end] {
			cols = append(cols, col.New(4).Add(
				text.New(card.Label, props.Text{Size: 8}),
				text.New(card.Value, props.Text{Size: 13, Style: fontstyle.Bold, Top: 4}),
			))
		}
		m.AddRow(14, cols...)
	}
}

func addTable(m core.Maroto, table Table) {
	m.AddRow(10,
		text.NewCol(12, table.Title, props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Top:   3,
		}),
	)

	widths := columnWidths(len(table.Header))
	m.AddRow(6, headerCols(table.Header, widths)...)

	pageCap := table.PageCap
	if pageCap <= 0 {
		pageCap = defaultPageCap
	}
	rows := table.Rows
	truncated := 0
	if len(rows) > pageCap {
		truncated = len(rows) - pageCap
		rows = rows[:pageCap]
	}

	for _, row := range rows {
		cols := make([]core.Col, 0, len(row))
		for i, cell := range row {
			alignment := align.Left
			if i > 0 {
				alignment = align.Right
			}
			cols = append(cols, text.NewCol(widths[i], cell, props.Text{Size: 9, Align: alignment}))
		}
		m.AddRow(5, cols...)
	}

	// Truncation is data, not an error.
	if truncated > 0 {
		m.AddRow(6,
			text.NewCol(12, fmt.Sprintf("... and %d more records", truncated), props.Text{
				Size:  8,
				Style: fontstyle.Italic,
			}),
		)
	}
}

func headerCols(header []string, widths []int) []core.Col {
	cols := make([]core.Col, 0, len(header))
	for i, h := range header {
		alignment := align.Left
		if i > 0 {
			alignment = align.Right
		}
		cols = append(cols, text.NewCol(widths[i], h, props.Text{Size: 9, Style: fontstyle.Bold, Align: alignment}))
	}
	return cols
}

// columnWidths splits the 12-unit grid, giving the first column any
// remainder so label columns stay widest.
func columnWidths(n int) []int {
	if n == 0 {
		return nil
	}
	base := 12 / n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
	}
	widths[0] += 12 - base*n
	return widths
}
