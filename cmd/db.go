package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zocchihedron/dicetrack/internal/utils"
	"github.com/zocchihedron/dicetrack/pkg/datfile"
	"github.com/zocchihedron/dicetrack/pkg/storage"
)

// dbCmd represents the db command
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Mirror the collection into SQLite for ad-hoc querying",
}

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror the collection data file into the SQLite database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath, err := dataFilePath(cmd)
		if err != nil {
			return err
		}
		collection, err := datfile.Load(dataPath)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		db, err := storage.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Sync(context.Background(), collection); err != nil {
			return err
		}
		fmt.Printf("Mirrored %d die types to %s.\n", len(collection), dbPath)
		return nil
	},
}

// dbStatsCmd represents the stats command
var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print die type and dice counts per size from the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return fmt.Errorf("database file not found: %s (run dicetrack db sync first)", dbPath)
		}

		db, err := storage.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats(context.Background())
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Println("No data in the database to generate stats.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "SIZE\tDIE TYPES\tDICE\t")
		var totalTypes, totalDice int
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%d\t%d\t\n", s.Size, s.DieTypes, s.DieCount)
			totalTypes += s.DieTypes
			totalDice += s.DieCount
		}
		fmt.Fprintf(w, "TOTAL\t%d\t%d\t\n", totalTypes, totalDice)
		return w.Flush()
	},
}

// dbShellCmd represents the shell command
var dbShellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive SQL shell to the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return fmt.Errorf("database file not found: %s (run dicetrack db sync first)", dbPath)
		}

		// Check if sqlite3 is in PATH
		sqlitePath, err := exec.LookPath("sqlite3")
		if err != nil {
			return fmt.Errorf("sqlite3 command not found in your PATH. Please install it to use the db shell")
		}

		// Print schema first
		fmt.Println("--> Database schema:")
		schemaCmd := exec.Command(sqlitePath, dbPath, ".schema")
		schemaCmd.Stdout = os.Stdout
		schemaCmd.Stderr = os.Stderr
		if err := schemaCmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: couldn't retrieve schema: %v\n", err)
		}
		fmt.Println("\n--> Starting interactive shell... (Ctrl+D to exit)")

		c := exec.Command(sqlitePath, dbPath)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr

		return c.Run()
	},
}

func resolveDBPath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("dbpath")
	if path == "" {
		path = viper.GetString("dbpath")
	}
	return utils.GetAbsDBPath(path)
}

func init() {
	dbCmd.PersistentFlags().String("dbpath", "", "SQLite database path (default is $HOME/.config/dicetrack/dicetrack.sqlite)")
	dbCmd.AddCommand(syncCmd)
	dbCmd.AddCommand(dbStatsCmd)
	dbCmd.AddCommand(dbShellCmd)
	rootCmd.AddCommand(dbCmd)
}
