package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ledgerbook/backend/internal/importer"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/validation"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func (a *app) importCmd() *cobra.Command {
	var dryRun, progress bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import expenses from CSV",
		Long: `Import expenses from a CSV file in the format written by export.

All lines are validated before anything is stored. If one line is invalid,
no expense is imported. Use - to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runImport(cmd, args[0], dryRun, progress)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without storing anything")
	cmd.Flags().BoolVar(&progress, "progress", false, "show the progress of reading the file on stderr")

	return cmd
}

func (a *app) runImport(cmd *cobra.Command, path string, dryRun, progress bool) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("could not open %s: %w", path, err)
		}
		defer file.Close()
		r = file

		if progress {
			bar, err := progressBar(cmd, file)
			if err != nil {
				return err
			}
			defer bar.Finish()

			pr := progressbar.NewReader(file, bar)
			r = &pr
		}
	}

	vopts := a.cfg.Validation
	vopts.Now = a.now

	expenses, err := importer.Parse(r, validation.New(vopts))
	if err != nil {
		return err
	}

	if !dryRun {
		if err := a.connect(); err != nil {
			return err
		}

		if err := models.NewStore(models.DB).CreateExpenses(cmd.Context(), expenses); err != nil {
			return err
		}
	}

	log.Info().Str("file", path).Int("expenses", len(expenses)).Bool("dry-run", dryRun).Msg("Import done")
	fmt.Fprintf(cmd.OutOrStdout(), "%d expenses imported\n", len(expenses))
	return nil
}

// progressBar returns a bar over the size of the file.
func progressBar(cmd *cobra.Command, file *os.File) (*progressbar.ProgressBar, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("could not read size of %s: %w", file.Name(), err)
	}

	return progressbar.NewOptions64(info.Size(),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("Reading "+file.Name()),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(cmd.ErrOrStderr())
		}),
	), nil
}
