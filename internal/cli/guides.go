package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

func (c *CLI) guidesCommand() *cobra.Command {
	var left, top, zoom float64
	cmd := &cobra.Command{
		Use:   "guides <page-id> <item-id>",
		Short: "Show snap matches and guides for an item dragged to --left/--top",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.Canvas.DragFrame(args[0], args[1], left, top, zoom)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if c.jsonOut {
				return writeJSON(out, res)
			}
			if len(res.Matches) == 0 {
				printDetail(out, "no snap")
			}
			for axis, m := range res.Matches {
				printKeyValue(out, "snap "+string(axis), fmt.Sprintf("%v", m.Intersection))
			}
			for _, g := range res.Guides {
				if !g.Active {
					continue
				}
				printDetail(out, "%s %s %v (%s)", g.Axis, iconArrow, g.Position, g.Box)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&left, "left", 0, "dragged x position")
	cmd.Flags().Float64Var(&top, "top", 0, "dragged y position")
	cmd.Flags().Float64Var(&zoom, "zoom", 1, "canvas zoom")
	return cmd
}
