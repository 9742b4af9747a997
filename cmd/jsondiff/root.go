package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sanity-io/jsondiff"
	"github.com/sanity-io/jsondiff/pkg/jsondiffmsgpack"
)

var (
	// persistent flags
	cfgFile         string
	enableDebugMode bool

	// local flags
	patchMode bool
	syntax    string
	indent    int
	format    string
)

var rootCmd = &cobra.Command{
	Use:   "jsondiff [FLAGS] FIRST SECOND",
	Short: "Diff and patch JSON and YAML documents",
	Long: `jsondiff prints the structural diff between two documents. With --patch
the second file is read as a diff and the patched first document is printed.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRunE:       validateFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), configFromViper(), args[0], args[1])
	},
}

var setupLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
	Timestamp().
	Logger().
	Level(zerolog.InfoLevel)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.jsondiff.yaml)")
	rootCmd.PersistentFlags().BoolVar(&enableDebugMode, "debug", false,
		"Log debug information to stderr")

	rootCmd.Flags().BoolVarP(&patchMode, "patch", "p", false,
		"Read SECOND as a diff and print FIRST with the diff applied")
	rootCmd.Flags().StringVarP(&syntax, "syntax", "s", "compact",
		"Diff syntax: "+strings.Join(jsondiff.SyntaxNames(), ", "))
	rootCmd.Flags().IntVarP(&indent, "indent", "i", 0,
		"Number of spaces to indent the output with")
	rootCmd.Flags().StringVarP(&format, "format", "f", "json",
		"Input and output format: json, yaml or msgpack")

	mustBind("debug", viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")))
	mustBind("syntax", viper.BindPFlag("syntax", rootCmd.Flags().Lookup("syntax")))
	mustBind("indent", viper.BindPFlag("indent", rootCmd.Flags().Lookup("indent")))
	mustBind("format", viper.BindPFlag("format", rootCmd.Flags().Lookup("format")))
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		setupLog.Error().Err(err).Msg("jsondiff failed")
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".jsondiff")
	}

	viper.SetEnvPrefix("jsondiff")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		setupLog.Debug().Msgf("Using config file: %s", viper.ConfigFileUsed())
	}
}

type config struct {
	patch  bool
	syntax string
	indent int
	format string
	debug  bool
}

func configFromViper() config {
	return config{
		patch:  patchMode,
		syntax: viper.GetString("syntax"),
		indent: viper.GetInt("indent"),
		format: viper.GetString("format"),
		debug:  viper.GetBool("debug"),
	}
}

func validateFlags(cmd *cobra.Command, args []string) error {
	cfg := configFromViper()
	if _, err := jsondiff.SyntaxByName(cfg.syntax); err != nil {
		return err
	}
	if _, _, err := codecFor(cfg.format, cfg.indent); err != nil {
		return err
	}
	return nil
}

func codecFor(format string, indent int) (jsondiff.Loader, jsondiff.Dumper, error) {
	switch format {
	case "json":
		return jsondiff.JSONLoader{}, jsondiff.JSONDumper{Indent: indent}, nil
	case "yaml":
		return jsondiff.YAMLLoader{}, jsondiff.YAMLDumper{Indent: indent}, nil
	case "msgpack":
		return jsondiffmsgpack.Loader{}, jsondiffmsgpack.Dumper{}, nil
	}
	return nil, nil, fmt.Errorf("unknown format %q", format)
}

func readDocument(logger zerolog.Logger, loader jsondiff.Loader, path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("file", path).
		Str("size", humanize.Bytes(uint64(len(data)))).
		Msg("Loading document")

	doc, err := loader.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// run diffs or patches the two files and writes the result to w.
func run(w io.Writer, cfg config, firstPath, secondPath string) error {
	logger := zerolog.Nop()
	if cfg.debug {
		logger = setupLog.Level(zerolog.DebugLevel)
	}

	loader, dumper, err := codecFor(cfg.format, cfg.indent)
	if err != nil {
		return err
	}
	options, err := jsondiff.OptionsFor(cfg.syntax)
	if err != nil {
		return err
	}
	options = options.WithMarshal(true).WithLogger(logger)

	first, err := readDocument(logger, loader, firstPath)
	if err != nil {
		return err
	}
	second, err := readDocument(logger, loader, secondPath)
	if err != nil {
		return err
	}

	var result interface{}
	if cfg.patch {
		result, err = options.Patch(first, second)
	} else {
		result, err = options.Diff(first, second)
	}
	if err != nil {
		return err
	}

	return dumper.DumpTo(w, result)
}

func mustBind(flagName string, err error) {
	if err != nil {
		setupLog.Fatal().Err(err).Msgf("Failed to bind flag %s", flagName)
	}
}
