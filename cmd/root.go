package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zocchihedron/dicetrack/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `     _ _          _                  _
  __| (_) ___ ___| |_ _ __ __ _  ___| | __
 / _` + "`" + ` | |/ __/ _ \ __| '__/ _` + "`" + ` |/ __| |/ /
| (_| | | (_|  __/ |_| | | (_| | (__|   <
 \__,_|_|\___\___|\__|_|  \__,_|\___|_|\_\

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dicetrack",
	Short: "A personal inventory tracker for a physical dice collection.",
	Long: LOGO + `dicetrack records dice acquisitions, keeps them in a flat file of fixed-width
die codes, and lets you filter and report on the collection from an
interactive shell or straight from the command line.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dicetrack.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("datafile", "f", "", "Collection data file (default is $HOME/.config/dicetrack/dice.dat)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".dicetrack")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.dicetrack.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("datafile", "")
	viper.SetDefault("dbpath", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

// dataFilePath resolves the collection path from the flag, then the config
// file, then the default location.
func dataFilePath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("datafile")
	if path == "" {
		path = viper.GetString("datafile")
	}
	return utils.GetAbsDataPath(path)
}
