// Package main is the entry point for the versicle binary.
// It provides a CLI for encoding and decoding scripture-cipher messages and
// for running the codec as an HTTP service.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/versiclehq/versicle/pkg/canon"
	"github.com/versiclehq/versicle/pkg/cipher"
	"github.com/versiclehq/versicle/pkg/config"
	"github.com/versiclehq/versicle/pkg/wire"
)

const defaultLogLevel = "info"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for versicle
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "versicle",
		Short: "Scripture-reference substitution cipher",
		Long: `Versicle encodes plaintext into sequences of scripture references using a
fixed substitution table, and decodes them back.

Example:
  versicle encode "LOVE GOD"
  versicle decode "Leviticus 19:18 | Obadiah 1:4 | Matthew 5:44 | Ephesians 2:8 || Genesis 1:31 | Obadiah 1:4 | Deuteronomy 6:5"`,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (YAML)")
	rootCmd.PersistentFlags().StringP("table", "t", "", "Path to table file (YAML), overrides config")
	rootCmd.PersistentFlags().Bool("strict", false, "Validate table references against the canon")
	rootCmd.PersistentFlags().StringP("log-level", "l", defaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("letter-sep", "", "Separator between letters within a word")
	rootCmd.PersistentFlags().String("word-sep", "", "Separator between words")

	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// loadCLIConfig merges the config file with persistent flag overrides.
func loadCLIConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if tablePath, _ := cmd.Flags().GetString("table"); tablePath != "" {
		cfg.Table.File = tablePath
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		cfg.Table.Strict = true
	}
	if letterSep, _ := cmd.Flags().GetString("letter-sep"); letterSep != "" {
		cfg.Wire.LetterSep = letterSep
	}
	if wordSep, _ := cmd.Flags().GetString("word-sep"); wordSep != "" {
		cfg.Wire.WordSep = wordSep
	}
	if logLevel, _ := cmd.Flags().GetString("log-level"); logLevel != defaultLogLevel && logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	return cfg, nil
}

func setupLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
	slog.SetDefault(logger)
	return logger
}

// readInput returns the joined args, or stdin when no args were given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text into a reference message",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCLIConfig(cmd)
			if err != nil {
				return err
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			table, err := config.LoadTable(cfg.Table)
			if err != nil {
				return err
			}

			codec := cipher.NewCodec(table)
			refs, err := codec.Encode(text)
			if err != nil {
				return err
			}

			spaceRef, _ := table.Lookup(' ')
			format := wire.Format{LetterSep: cfg.Wire.LetterSep, WordSep: cfg.Wire.WordSep}
			fmt.Fprintln(cmd.OutOrStdout(), format.Marshal(refs, spaceRef))
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [message]",
		Short: "Decode a reference message back into text",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCLIConfig(cmd)
			if err != nil {
				return err
			}

			message, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			table, err := config.LoadTable(cfg.Table)
			if err != nil {
				return err
			}

			codec := cipher.NewCodec(table)
			spaceRef, _ := table.Lookup(' ')
			format := wire.Format{LetterSep: cfg.Wire.LetterSep, WordSep: cfg.Wire.WordSep}

			refs, err := format.Unmarshal(message, spaceRef)
			if err != nil {
				return err
			}

			text, err := codec.Decode(refs)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newTableCmd() *cobra.Command {
	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "Inspect and validate the cipher table",
	}

	tableCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the table's bijection and, with --strict, its references",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCLIConfig(cmd)
			if err != nil {
				return err
			}

			table, err := config.LoadTable(cfg.Table)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "table OK: %d symbols\n", table.Len())
			return nil
		},
	})

	tableCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the active mapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCLIConfig(cmd)
			if err != nil {
				return err
			}

			table, err := config.LoadTable(cfg.Table)
			if err != nil {
				return err
			}

			for _, e := range table.Entries() {
				sym := string(e.Symbol)
				if e.Symbol == ' ' {
					sym = "space"
				}
				marker := ""
				if err := canon.ValidateString(string(e.Reference)); err != nil {
					marker = "\t(non-canonical)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s%s\n", sym, e.Reference, marker)
			}
			return nil
		},
	})

	return tableCmd
}
