package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zocchihedron/dicetrack/internal/utils"
	"github.com/zocchihedron/dicetrack/pkg/datfile"
	"github.com/zocchihedron/dicetrack/pkg/dice"
)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count <feature> [criteria...]",
	Short: "Count the collection by a feature of the dice",
	Long: `Count the collection by a feature of the dice: color, size, sides, faces,
art-pip, material, odd-shape, odd-pip, or odd-face. Any further arguments are
filter criteria applied before counting.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := dataFilePath(cmd)
		if err != nil {
			return err
		}
		collection, err := datfile.Load(path)
		if err != nil {
			return err
		}
		subset, warnings := dice.Filter(collection, strings.Join(args[1:], " "), dice.BuiltinPredicates())
		for _, w := range warnings {
			utils.Log.Warn(w)
		}
		groups, err := dice.CountByFeature(subset, args[0])
		if err != nil {
			return err
		}
		width := 0
		for _, g := range groups {
			if len(g.Value) > width {
				width = len(g.Value)
			}
		}
		for _, g := range groups {
			fmt.Printf("%*s %d\n", width, g.Value, g.Count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
