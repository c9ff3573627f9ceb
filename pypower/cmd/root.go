package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "pypower",
	Short: "PYPOWER case tools - numbering conversion and validation",
	Long: `Tools for power-network case files that were renumbered internally
(dense, consecutive, online-only entity numbering) and carry the order
record needed to convert back.

Examples:
  # Restore a solved case to its original numbering
  pypower int2ext solved.json -o restored.json

  # Convert a single gen-ordered field back, leaving the rest internal
  pypower int2ext solved.json --field gencost --ordering gen

  # Check a case's order record invariants
  pypower validate solved.yaml`,
}

var (
	quiet bool
	dim   int
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().IntVar(&dim, "dim", 0, "Axis holding entity rows: 0 rows, 1 columns")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	_ = viper.BindPFlag("dim", rootCmd.PersistentFlags().Lookup("dim"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(int2extCmd)
	rootCmd.AddCommand(validateCmd)
}

// initConfig wires viper: explicit config file via PYPOWER_CONFIG, otherwise
// discovery of pypower.yaml, plus PYPOWER_* environment variables.
func initConfig() {
	if configFile := os.Getenv("PYPOWER_CONFIG"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("pypower")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.pypower")
	}
	viper.SetEnvPrefix("PYPOWER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	level := zerolog.InfoLevel
	if viper.GetBool("quiet") {
		level = zerolog.ErrorLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
