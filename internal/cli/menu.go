package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slidebuilder/internal/domain"
	"slidebuilder/internal/menu"
)

func (c *CLI) menuCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Run item context menu actions",
	}
	cmd.AddCommand(c.menuEntriesCommand())
	cmd.AddCommand(c.menuRunCommand())
	cmd.AddCommand(c.menuPlaceCommand())
	return cmd
}

func (c *CLI) menuEntriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "entries <page-id> <item-id>",
		Short: "Show the menu entries for an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			m, err := a.Canvas.OpenMenu(args[0], args[1], domain.Position{})
			if err != nil {
				return err
			}
			defer m.Dismiss(menu.DismissOutsideClick)

			entries := m.Entries()
			out := cmd.OutOrStdout()
			if c.jsonOut {
				return writeJSON(out, entries)
			}
			for _, e := range entries {
				label := e.Label
				if e.Danger {
					label = styleDanger.Render(label)
				}
				printKeyValue(out, string(e.Action), label)
			}
			return nil
		},
	}
}

func (c *CLI) menuRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "run <page-id> <item-id> <action>",
		Short:     "Run one menu action on an item",
		Long:      `Run one menu action on an item. Actions: move_to_front, move_forward, move_backward, move_to_back, toggle_lock, fit_to_page, delete.`,
		Args:      cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			state, err := a.Canvas.RunMenuAction(cmd.Context(), args[0], args[1], menu.Action(args[2]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if c.jsonOut {
				return writeJSON(out, state)
			}
			printSuccess(out, "%s %s", args[2], args[1])
			printItems(out, state)
			return nil
		},
	}
}

func (c *CLI) menuPlaceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "place <x> <y> <width> <height>",
		Short: "Compute where a menu of the given size is drawn",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := make([]float64, len(args))
			for i, s := range args {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				nums[i] = v
			}

			a, err := c.open(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			pos := a.Canvas.PlaceMenu(
				domain.Position{X: nums[0], Y: nums[1]},
				domain.Bounds{Width: nums[2], Height: nums[3]},
			)
			out := cmd.OutOrStdout()
			if c.jsonOut {
				return writeJSON(out, pos)
			}
			printKeyValue(out, "position", fmt.Sprintf("%v, %v", pos.X, pos.Y))
			return nil
		},
	}
}
