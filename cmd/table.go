package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zocchihedron/dicetrack/internal/utils"
	"github.com/zocchihedron/dicetrack/pkg/datfile"
	"github.com/zocchihedron/dicetrack/pkg/dice"
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table [criteria...]",
	Short: "Print the collection as an aligned table",
	Long: `Print the collection as an aligned table, optionally narrowed by filter
criteria: color or size words (or their code keys), dX for X sides, fX for X
unique faces, flag names like odd-face (or !odd-face to exclude), and the
named filters odd_sided, platonic, and standard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := dataFilePath(cmd)
		if err != nil {
			return err
		}
		collection, err := datfile.Load(path)
		if err != nil {
			return err
		}
		subset, warnings := dice.Filter(collection, strings.Join(args, " "), dice.BuiltinPredicates())
		for _, w := range warnings {
			utils.Log.Warn(w)
		}
		for _, d := range subset {
			fmt.Println(d.TableRow())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
