package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huandalu/pypower/internal/validation"
	"github.com/huandalu/pypower/pypower/casefile"
)

var validateCmd = &cobra.Command{
	Use:   "validate <case-file>",
	Short: "Check a case file's tables and order record invariants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := casefile.Load(args[0])
		if err != nil {
			return err
		}
		if err := validation.ValidateCase(c); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		if c.Order == nil {
			fmt.Printf("%s: ok (external numbering, no order record)\n", args[0])
			return nil
		}
		if err := validation.ValidateOrder(c); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Printf("%s: ok (order record consistent, state %s)\n", args[0], c.Order.State)
		return nil
	},
}
