package cli

import (
	"github.com/spf13/cobra"

	"github.com/skeeto/showerthoughts/internal/infra/logger"
	"github.com/skeeto/showerthoughts/internal/ui/tui"
	"github.com/skeeto/showerthoughts/internal/usecase"
)

func browseCmd() *cobra.Command {
	var workspace string
	var input string
	var strategy string
	var k int
	var width int

	c := &cobra.Command{
		Use:   "browse",
		Short: "Select the top K records and browse them interactively",
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

			return tui.Run(tui.Deps{
				Candidates: sel.Candidates,
				Width:      width,
				Logger:     logger.L(),
			})
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&input, "input", "i", "", "Record dump to read (default stdin)")
	c.Flags().IntVarP(&k, "k", "k", 0, "How many entries to select (default from config, 10000)")
	c.Flags().StringVar(&strategy, "strategy", "", "Selector strategy: heap|tree|sort (default from config, heap)")
	c.Flags().IntVar(&width, "width", 0, "Wrap column for previews (default from config, 78)")

	return c
}
