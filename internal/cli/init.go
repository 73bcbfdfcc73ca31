package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skeeto/showerthoughts/internal/domain"
	"github.com/skeeto/showerthoughts/internal/infra/fsworkspace"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a showerthoughts workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			initializer := fsworkspace.NewInitializer()
			if err := initializer.Init(domain.WorkspaceSpec{Root: dir}, force); err != nil {
				return err
			}

			fmt.Printf("initialized workspace in %s\n", dir)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite existing scaffold files")
	return c
}
