package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skeeto/showerthoughts/internal/domain"
	"github.com/skeeto/showerthoughts/internal/fortune"
	"github.com/skeeto/showerthoughts/internal/infra/logger"
	"github.com/skeeto/showerthoughts/internal/infra/reportstore"
	"github.com/skeeto/showerthoughts/internal/usecase"
)

func runCmd() *cobra.Command {
	var workspace string
	var input string
	var output string
	var strategy string
	var k int
	var width int
	var noSave bool

	c := &cobra.Command{
		Use:   "run",
		Short: "Select the top K records from a dump and write a fortune file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			k, st, width, err := resolveRunOptions(ws.cfg, k, strategy, width)
			if err != nil {
				return err
			}

			in, label, err := openInput(input)
			if err != nil {
				return err
			}
			defer in.Close()

			uc := usecase.NewSelectTop(logger.L())
			sel, err := uc.Execute(cmd.Context(), in, usecase.Params{
				K:        k,
				Strategy: st,
				Fields:   ws.cfg.Fields,
				Input:    label,
			})
			if err != nil {
				return err
			}

			// Output is written only after finalize, so an i/o failure can
			// never leave a truncated-but-plausible fortune file behind.
			if err := writeFortunes(output, sel.Candidates, width); err != nil {
				return err
			}

			if ws.root != "" && !noSave {
				store := reportstore.NewJSONStore(ws.root, ws.cfg, reportstore.WithIndex(true))
				if id, serr := store.SaveReport(sel.Report); serr != nil {
					logger.L().Warn("report.save_failed", "err", serr)
				} else {
					logger.L().Info("report.saved", "id", id)
				}
			}

			printReport(os.Stderr, sel.Report)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&input, "input", "i", "", "Record dump to read (default stdin)")
	c.Flags().StringVarP(&output, "output", "o", "", "Fortune file to write (default stdout)")
	c.Flags().IntVarP(&k, "k", "k", 0, "How many entries to select (default from config, 10000)")
	c.Flags().StringVar(&strategy, "strategy", "", "Selector strategy: heap|tree|sort (default from config, heap)")
	c.Flags().IntVar(&width, "width", 0, "Wrap column for titles (default from config, 78)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save a run report under runs/")

	return c
}

func writeFortunes(output string, candidates []domain.Candidate, width int) error {
	if output == "" || output == "-" {
		return fortune.WriteAll(os.Stdout, candidates, width)
	}

	f, err := os.Create(output)
	if err != nil {
		return &domain.OpError{
			Op:   "cli.create_output",
			Kind: domain.KindIO,
			Path: output,
			Err:  err,
		}
	}
	if err := fortune.WriteAll(f, candidates, width); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &domain.OpError{
			Op:   "cli.close_output",
			Kind: domain.KindIO,
			Path: output,
			Err:  err,
		}
	}
	return nil
}

func printReport(w io.Writer, r domain.RunReport) {
	fmt.Fprintf(w, "selected %d of %d valid records (%d malformed, strategy=%s, k=%d) in %s\n",
		r.Selected, r.Offered, r.Malformed, r.Strategy, r.K, r.Duration())
}
