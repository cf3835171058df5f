package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/martinemde/paramxml/xmlparser"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "paramxml",
	Short:         "paramxml configuration parser",
	Long:          "paramxml parses attribute-only XML configuration files, including bracketed list values.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")
	rootCmd.PersistentFlags().Bool("allow-duplicates", false, "Let a repeated attribute replace the earlier one")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("allow_duplicates", rootCmd.PersistentFlags().Lookup("allow-duplicates"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

func initConfig() {
	viper.SetEnvPrefix("PARAMXML")
	viper.AutomaticEnv()

	if viper.GetBool("no_color") || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if viper.GetBool("debug") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// parseOptions maps the global configuration onto parser options.
func parseOptions(logger *slog.Logger) []xmlparser.ParseOption {
	opts := []xmlparser.ParseOption{xmlparser.WithLogger(logger)}
	if viper.GetBool("allow_duplicates") {
		opts = append(opts, xmlparser.AllowDuplicateParams())
	}
	return opts
}

// parseFile reads and parses a configuration file.
func parseFile(path string, logger *slog.Logger) (*xmlparser.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	logger.Debug("parsing", "file", path)
	return xmlparser.ParseReader(f, parseOptions(logger)...)
}
