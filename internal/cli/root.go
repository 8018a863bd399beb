// Package cli implements the bcd command line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/bcd/internal/config"
)

// Error is the error class for this package.
var Error = errs.Class("cli")

// Build information, set by cmd/bcd.
var (
	Version = "dev"
	Commit  = "none"
)

// app is the state shared by every command.
type app struct {
	cfg config.Config
	log *slog.Logger
}

// result is a single command result.
type result struct {
	Value     string `yaml:"value"`
	Bytes     int    `yaml:"bytes"`
	Hex       string `yaml:"hex"`
	Truncated bool   `yaml:"truncated,omitempty"`
}

// NewRootCommand returns the bcd command with every subcommand registered.
func NewRootCommand() *cobra.Command {
	a := &app{
		cfg: config.Default(),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	root := &cobra.Command{
		Use:   "bcd",
		Short: "Convert integers to and from packed BCD",
		Long: `bcd converts unsigned integers to and from packed binary-coded decimal.

Byte sequences are written as hex, most significant byte first. Every
byte holds two decimal digits, one per nibble.`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", config.DefaultPath(), "configuration file (JSONC)")
	root.PersistentFlags().StringP("output", "o", "", "output format: hex or yaml")
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug information to stderr")

	root.AddCommand(
		newEncodeCommand(a),
		newDecodeCommand(a),
		newResizeCommand(a),
		newPackCommand(a),
		newUnpackCommand(a),
	)

	return root
}

// Execute runs cmd and exits with a non-zero status on failure.
func Execute(cmd *cobra.Command) {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) (err error) {
	defer Error.WrapP(&err)

	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return err
	}

	if path != "" {
		cfg, err := config.Load(path)
		switch {
		case err == nil:
			a.cfg = cfg
		case errors.Is(err, fs.ErrNotExist) && !flags.Changed("config"):
			// The default file is optional.
		default:
			return err
		}
	}

	if flags.Changed("output") {
		a.cfg.Output, err = flags.GetString("output")
		if err != nil {
			return err
		}
	}

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return err
	}

	if verbose {
		a.cfg.LogLevel = "debug"
	}

	err = a.cfg.Validate()
	if err != nil {
		return err
	}

	level, err := a.cfg.Level()
	if err != nil {
		return err
	}

	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	a.log.Debug("configuration loaded",
		"path", path,
		"bytes", a.cfg.Bytes,
		"output", a.cfg.Output,
	)

	return nil
}

// print writes r in the configured format. text is the hex output form.
func (a *app) print(cmd *cobra.Command, r result, text string) (err error) {
	w := cmd.OutOrStdout()

	switch a.cfg.Output {
	case config.OutputYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return Error.Wrap(err)
		}

		_, err = w.Write(data)

		return err
	default:
		_, err = fmt.Fprintln(w, text)

		return err
	}
}
