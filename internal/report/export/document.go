// Package export serializes report aggregates into the two durable
// artifact formats. Both serializers render the same intermediate
// Document, so the section order, labels and number formatting of the
// delimited-text and paginated outputs can never drift apart.
package export

import (
	"fmt"

	"github.com/estatehub/backoffice/internal/report/daterange"
	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
)

// defaultPageCap bounds table rows in the paginated document; longer
// tables end with an "and N more records" notice. The delimited text
// export always carries every row.
const defaultPageCap = 20

// Card is one labeled scalar of the summary block.
type Card struct {
	Label string
	Value string
}

// Table is one titled section.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
	// PageCap overrides defaultPageCap for the paginated rendering.
	PageCap int
}

// Document is the format-independent shape of one export artifact.
type Document struct {
	Title  string
	Period string
	Cards  []Card
	Tables []Table
}

// composerFor looks up the section composer for a report type. The
// registry keeps adding a report type a data change, not a new branch
// in every serializer.
type composer func(*reportdomain.Report) (Document, error)

var composers = map[reportdomain.Type]composer{
	reportdomain.TypeOrders:    composeOrders,
	reportdomain.TypeRevenue:   composeRevenue,
	reportdomain.TypeValuators: composeValuators,
	reportdomain.TypeClients:   composeClients,
	reportdomain.TypeGeography: composeGeography,
}

// Compose turns a built report into the shared document shape.
func Compose(rep *reportdomain.Report) (Document, error) {
	c, ok := composers[rep.Type]
	if !ok {
		return Document{}, reportdomain.ErrUnknownReportType
	}
	return c(rep)
}

func periodText(r daterange.Range) string {
	return fmt.Sprintf("%s - %s", r.From.Format("2006-01-02"), r.To.Format("2006-01-02"))
}

func aggregateError(t reportdomain.Type, agg any) error {
	return fmt.Errorf("report %s carries unexpected aggregate %T", t, agg)
}
