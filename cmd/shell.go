package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zocchihedron/dicetrack/internal/shell"
)

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive collection shell",
	Long: `Start the interactive collection shell. The shell loads the stored
collection and offers commands to add dice, narrow the working subset with
filter criteria, count by feature, print tables, and save. Type help at the
prompt for the command list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := dataFilePath(cmd)
		if err != nil {
			return err
		}
		return shell.New(os.Stdin, os.Stdout, path).Run()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
