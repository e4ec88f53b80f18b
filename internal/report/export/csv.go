package export

import (
	"bytes"
	"encoding/csv"
	"time"

	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
)

// utf8BOM keeps diacritics readable when the file lands in common
// spreadsheet tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV renders the delimited-text artifact: a BOM, a header block, then
// every section in the same order the screen shows them, with no row
// caps.
func CSV(rep *reportdomain.Report, now time.Time) ([]byte, error) {
	doc, err := Compose(rep)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	write := func(record ...string) {
		_ = w.Write(record)
	}
	blank := func() {
		w.Flush()
		buf.WriteByte('\n')
	}

	write(doc.Title)
	write("Period", doc.Period)
	write("Generated", now.Format("2006-01-02 15:04"))
	blank()

	if len(doc.Cards) > 0 {
		write("Summary")
		for _, card := range doc.Cards {
			write(card.Label, card.Value)
		}
		blank()
	}

	for _, table := range doc.Tables {
		write(table.Title)
		write(table.Header...)
		for _, row := range table.Rows {
			write(row...)
		}
		blank()
	}

	w.Flush()
	return buf.Bytes(), nil
}
