// Package importer reads expenses from CSV files.
//
// The expected format is the one written by the export: a header line
// followed by one expense per line. Columns are identified by their header,
// so they can be in any order. The Description column is optional.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/validation"
)

const (
	columnDate        = "date"
	columnCategory    = "category"
	columnAmount      = "amount"
	columnDescription = "description"
)

var required = []string{columnDate, columnCategory, columnAmount}

// Parse reads all expenses from the CSV. Every line is validated like an
// expense created through the API. The first invalid line aborts parsing.
func Parse(r io.Reader, v validation.Validator) ([]models.Expense, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	reader.FieldsPerRecord = -1

	expenses := make([]models.Expense, 0)

	head, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return expenses, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read the CSV header: %w", err)
	}

	columns := make(map[string]int, len(head))
	for i, name := range head {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}

	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("the CSV header has no %s column", name)
		}
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Parse errors carry their line already
			return nil, fmt.Errorf("could not read line in CSV: %w", err)
		}

		expense, err := v.Expense(validation.ExpenseInput{
			Date:        field(record, columnDate),
			Category:    field(record, columnCategory),
			Amount:      field(record, columnAmount),
			Description: field(record, columnDescription),
		})
		if err != nil {
			return nil, readError(reader, err)
		}

		expenses = append(expenses, expense)
	}

	return expenses, nil
}

// readError adds the line of the input the error occurred in to the message.
func readError(r *csv.Reader, err error) error {
	line, _ := r.FieldPos(0)
	return fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
