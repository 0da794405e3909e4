package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zocchihedron/dicetrack/pkg/rolls"
)

// rollsCmd represents the rolls command
var rollsCmd = &cobra.Command{
	Use:   "rolls",
	Short: "Work with roll-tally data files from dice fairness tests",
}

// rollsCleanCmd represents the clean command
var rollsCleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Fill in blank counts in a roll-tally file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := rolls.Clean(args[0]); err != nil {
			return err
		}
		fmt.Printf("Cleaned %s.\n", args[0])
		return nil
	},
}

// rollsTallyCmd represents the tally command
var rollsTallyCmd = &cobra.Command{
	Use:   "tally <file>",
	Short: "Print the summed roll counts from a roll-tally file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tally, err := rolls.Read(args[0])
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "VALUE\tROLLS\t")
		total := 0
		for _, value := range rolls.Values(tally) {
			fmt.Fprintf(w, "%d\t%d\t\n", value, tally[value])
			total += tally[value]
		}
		fmt.Fprintf(w, "TOTAL\t%d\t\n", total)
		return w.Flush()
	},
}

func init() {
	rollsCmd.AddCommand(rollsCleanCmd)
	rollsCmd.AddCommand(rollsTallyCmd)
	rootCmd.AddCommand(rollsCmd)
}
