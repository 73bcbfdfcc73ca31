package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skeeto/showerthoughts/internal/domain"
	"github.com/skeeto/showerthoughts/internal/infra/logger"
	"github.com/skeeto/showerthoughts/internal/topk"
	"github.com/skeeto/showerthoughts/internal/usecase"
)

// benchCmd runs every selector strategy over the same corpus, checks that
// they finalize to the same sequence, and reports timings. Comparing the
// strategies is the whole point of keeping three of them around.
func benchCmd() *cobra.Command {
	var workspace string
	var input string
	var k int

	c := &cobra.Command{
		Use:   "bench",
		Short: "Time all selector strategies over one corpus and verify they agree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			k, _, _, err := resolveRunOptions(ws.cfg, k, "", 0)
			if err != nil {
				return err
			}

			data, label, err := readAllInput(input)
			if err != nil {
				return err
			}

			uc := usecase.NewSelectTop(logger.L())

			type result struct {
				strategy   topk.Strategy
				report     domain.RunReport
				candidates []domain.Candidate
			}
			var results []result

			for _, st := range topk.Strategies() {
				sel, err := uc.Execute(cmd.Context(), bytes.NewReader(data), usecase.Params{
					K:        k,
					Strategy: st,
					Fields:   ws.cfg.Fields,
					Input:    label,
				})
				if err != nil {
					return err
				}
				results = append(results, result{
					strategy:   st,
					report:     sel.Report,
					candidates: sel.Candidates,
				})
			}

			base := results[0]
			for _, r := range results[1:] {
				if err := sameSelection(base.candidates, r.candidates); err != nil {
					return fmt.Errorf("strategies %s and %s disagree: %w", base.strategy, r.strategy, err)
				}
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "STRATEGY\tDECODED\tMALFORMED\tSELECTED\tDURATION")
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n",
					r.strategy, r.report.Decoded, r.report.Malformed, r.report.Selected, r.report.Duration())
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Println("all strategies agree on the finalized sequence")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&input, "input", "i", "", "Record dump to read (default stdin)")
	c.Flags().IntVarP(&k, "k", "k", 0, "Selection capacity (default from config, 10000)")

	return c
}

// readAllInput buffers the whole corpus so each strategy sees an identical
// stream.
func readAllInput(path string) ([]byte, string, error) {
	in, label, err := openInput(path)
	if err != nil {
		return nil, "", err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, "", &domain.OpError{
			Op:   "cli.read_input",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}
	return data, label, nil
}

// sameSelection verifies two finalized sequences are equal up to
// tie-equivalence (candidates equal on every ranking key may swap places).
func sameSelection(a, b []domain.Candidate) error {
	if len(a) != len(b) {
		return fmt.Errorf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !domain.Equivalent(a[i], b[i]) {
			return fmt.Errorf("position %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
	return nil
}
