package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) pageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Create and list pages",
	}
	cmd.AddCommand(c.pageCreateCommand())
	cmd.AddCommand(c.pageListCommand())
	return cmd
}

func (c *CLI) pageCreateCommand() *cobra.Command {
	var width, height float64
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			page, err := a.Canvas.CreatePage(args[0], width, height)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if c.jsonOut {
				return writeJSON(out, page)
			}
			printSuccess(out, "Created page %s", page.Name)
			printDetail(out, "id %s, %vx%v", page.ID, page.Width, page.Height)
			return nil
		},
	}
	cmd.Flags().Float64Var(&width, "width", 800, "page width")
	cmd.Flags().Float64Var(&height, "height", 600, "page height")
	return cmd
}

func (c *CLI) pageListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			pages, err := a.Canvas.ListPages()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if c.jsonOut {
				return writeJSON(out, pages)
			}
			if len(pages) == 0 {
				printDetail(out, "no pages")
				return nil
			}
			for _, p := range pages {
				printKeyValue(out, p.Name, fmt.Sprintf("%s  %vx%v", p.ID, p.Width, p.Height))
			}
			return nil
		},
	}
}
