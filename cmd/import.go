package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zocchihedron/dicetrack/internal/utils"
	"github.com/zocchihedron/dicetrack/pkg/datfile"
	"github.com/zocchihedron/dicetrack/pkg/dice"
	"github.com/zocchihedron/dicetrack/pkg/importer"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <path|url>",
	Short: "Merge die records from an external export into the collection",
	Long: `Merge die records from an external export into the collection. The source
may be a local file or an http(s) URL. Supported formats are dat (the native
tab-separated code/count rows), json (an array of records with either a code
or the individual die features), and html (the first table in the document,
code and count in the first two cells of each row).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = guessFormat(args[0])
		}

		data, err := importer.Fetch(args[0])
		if err != nil {
			return err
		}
		records, err := importer.Parse(data, format)
		if err != nil {
			return err
		}

		path, err := dataFilePath(cmd)
		if err != nil {
			return err
		}
		collection, err := datfile.Load(path)
		if err != nil && !os.IsNotExist(err) {
			return err
		}

		merged, newRows, changed, err := importer.Merge(collection, records)
		if err != nil {
			return err
		}

		lock, err := utils.NewDataLock(path)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := lock.Lock(); err != nil {
			return err
		}
		defer lock.Unlock()

		// Existing counts changed means a full rewrite; otherwise only the
		// new rows need to land.
		if changed {
			err = datfile.Write(path, merged)
		} else {
			err = datfile.Append(path, newRows)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d records (%d new). You now have %d dice.\n",
			len(records), len(newRows), dice.TotalCount(merged))
		return nil
	},
}

func guessFormat(location string) string {
	switch strings.ToLower(filepath.Ext(strings.TrimSuffix(location, "/"))) {
	case ".json":
		return "json"
	case ".html", ".htm":
		return "html"
	}
	return "dat"
}

func init() {
	importCmd.Flags().String("format", "", "Import format: dat, json or html (default: guessed from the extension)")
	rootCmd.AddCommand(importCmd)
}
