package cli

import (
	"fmt"
	"os"

	"github.com/ledgerbook/backend/internal/export"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/ledgerbook/backend/internal/validation"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	from        string
	until       string
	category    string
	description string
	out         string
}

func (a *app) exportCmd() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses as CSV",
		Long: `Export the expenses matching the filters as CSV, newest first.

The file is written to expenses_<today>.csv unless --out is given.
Use --out - to write to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "only expenses on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.until, "until", "", "only expenses on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "only expenses of this category")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "only expenses whose description matches this pattern, * is a wildcard")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file")

	return cmd
}

// filter validates the options the same way the API validates query strings.
func (o exportOptions) filter(v validation.Validator) (models.ExpenseFilter, error) {
	r, err := v.DateRange(o.from, o.until)
	if err != nil {
		return models.ExpenseFilter{}, err
	}

	var category types.Category
	if o.category != "" {
		category, err = v.Category(o.category)
		if err != nil {
			return models.ExpenseFilter{}, err
		}
	}

	return models.ExpenseFilter{
		Range:       r,
		Category:    category,
		Description: o.description,
	}, nil
}

func (a *app) runExport(cmd *cobra.Command, opts exportOptions) error {
	vopts := a.cfg.Validation
	vopts.Now = a.now

	f, err := opts.filter(validation.New(vopts))
	if err != nil {
		return err
	}

	if err := a.connect(); err != nil {
		return err
	}

	expenses, err := models.NewStore(models.DB).ListExpenses(cmd.Context(), f)
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = export.Filename(types.DateOf(a.now()))
	}

	if out == "-" {
		return export.Write(cmd.OutOrStdout(), expenses)
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", out, err)
	}

	err = export.Write(file, expenses)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	log.Info().Str("file", out).Int("expenses", len(expenses)).Msg("Export written")
	return nil
}
