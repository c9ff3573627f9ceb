package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huandalu/pypower/pypower"
	"github.com/huandalu/pypower/pypower/casefile"
	"github.com/huandalu/pypower/types"
)

var (
	outPath      string
	fieldPath    string
	orderingTags []string
)

var int2extCmd = &cobra.Command{
	Use:   "int2ext <case-file>",
	Short: "Convert a case back to external numbering",
	Long: `Restores a case file from internal (dense, online-only) numbering to its
original external numbering, re-populating offline and isolated rows from
the order record's cached snapshot.

With --field, only the named field is converted: the field's rows are
reverted according to --ordering (one entity class, or a comma-separated
sequence for data laid out in concatenated per-class blocks). Nested fields
use dot-separated paths.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := casefile.Load(args[0])
		if err != nil {
			return err
		}
		if fieldPath != "" {
			if len(orderingTags) == 0 {
				return fmt.Errorf("--field requires --ordering")
			}
			path := strings.Split(fieldPath, ".")
			c, err = pypower.Int2ExtField(c, path, parseOrdering(orderingTags), viper.GetInt("dim"))
		} else {
			c, err = pypower.Int2Ext(c)
		}
		if err != nil {
			return err
		}
		dest := outPath
		if dest == "" {
			dest = args[0]
		}
		if err := casefile.Save(dest, c); err != nil {
			return err
		}
		log.Info().Str("case", dest).Msg("case written")
		return nil
	},
}

func init() {
	int2extCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file (defaults to overwriting the input)")
	int2extCmd.Flags().StringVar(&fieldPath, "field", "", "Convert only this field (dot-separated path)")
	int2extCmd.Flags().StringSliceVar(&orderingTags, "ordering", nil, "Entity class(es) the field rows follow (bus|gen|branch|...)")
}

func parseOrdering(tags []string) types.Ordering {
	if len(tags) == 1 {
		return types.OrderingFor(tags[0])
	}
	return types.CompositeOrdering(tags...)
}
