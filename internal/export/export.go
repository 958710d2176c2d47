// Package export renders expenses as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
)

// ContentType is the media type of the export.
const ContentType = "text/csv; charset=utf-8"

var header = []string{"Date", "Category", "Amount", "Description"}

// Write writes the header and one row per expense in the order given.
// Fields are quoted when they contain a comma, a quote or a line break.
func Write(w io.Writer, expenses []models.Expense) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}

	for _, e := range expenses {
		err := writer.Write([]string{
			e.Date.String(),
			string(e.Category),
			e.Amount.StringFixed(2),
			e.Description,
		})
		if err != nil {
			return fmt.Errorf("could not write expense %s: %w", e.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Filename returns the file name for an export created on a day.
func Filename(day types.Date) string {
	return fmt.Sprintf("expenses_%s.csv", day)
}
