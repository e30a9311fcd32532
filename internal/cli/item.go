package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"slidebuilder/internal/domain"
	"slidebuilder/internal/service"
)

func (c *CLI) itemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Add and list page items",
	}
	cmd.AddCommand(c.itemAddCommand())
	cmd.AddCommand(c.itemListCommand())
	return cmd
}

func (c *CLI) itemAddCommand() *cobra.Command {
	var (
		itemType      string
		width, height float64
		left, top     float64
	)
	cmd := &cobra.Command{
		Use:   "add <page-id>",
		Short: "Add an item on top of a page",
		Long:  `Add an item on top of a page. Without --left and --top the item is placed in the first free spot.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			n := service.NewItem{ItemType: domain.ItemType(itemType), Width: width, Height: height}
			if cmd.Flags().Changed("left") || cmd.Flags().Changed("top") {
				n.Left, n.Top = &left, &top
			}
			it, err := a.Canvas.AddItem(cmd.Context(), args[0], n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if c.jsonOut {
				return writeJSON(out, it)
			}
			printSuccess(out, "Added %s %s", it.ItemType, it.ID)
			printDetail(out, "at (%v, %v) size %vx%v", it.Left, it.Top, it.Width, it.Height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&itemType, "type", "t", string(domain.ItemTypeShape), "item type: image, text, header, shape or chart")
	cmd.Flags().Float64Var(&width, "width", 100, "item width")
	cmd.Flags().Float64Var(&height, "height", 100, "item height")
	cmd.Flags().Float64Var(&left, "left", 0, "x position")
	cmd.Flags().Float64Var(&top, "top", 0, "y position")
	return cmd
}

func (c *CLI) itemListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <page-id>",
		Short: "List a page's items bottom to top",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			state, err := a.Canvas.PageState(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if c.jsonOut {
				return writeJSON(out, state.Items)
			}
			printItems(out, state)
			return nil
		},
	}
}

func printItems(out io.Writer, state *domain.PageState) {
	printTitle(out, "%s (%vx%v)", state.Page.Name, state.Page.Width, state.Page.Height)
	if len(state.Items) == 0 {
		printDetail(out, "no items")
		return
	}
	for i, it := range state.Items {
		lock := ""
		if it.IsLocked {
			lock = " locked"
		}
		printKeyValue(out, fmt.Sprintf("%d %s", i, it.ItemType),
			fmt.Sprintf("%s  (%v, %v) %vx%v%s", it.ID, it.Left, it.Top, it.Width, it.Height, lock))
	}
}
