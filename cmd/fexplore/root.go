package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fexplore/internal/config"
	"fexplore/internal/explorer"
	"fexplore/internal/log"
	"fexplore/internal/menu"
	"fexplore/internal/ui"
)

type rootOptions struct {
	cfgFile string
	dir     string
	debug   bool
	noColor bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "fexplore",
		Short: "An interactive console file explorer",
		Long: `fexplore lists, creates, deletes and searches files from a numbered menu.

It starts in the current working directory and reads one choice at a time
from standard input until you pick Exit.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplorer(cmd, opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/fexplore/config.yaml)")
	rootCmd.Flags().StringVarP(&opts.dir, "dir", "C", "", "start in this directory instead of the working directory")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "write debug logs to stderr")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable styled output")

	return rootCmd
}

func loadConfig(cmd *cobra.Command, path string) *config.Config {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadConfigFile(path)
	} else {
		cfg, err = config.LoadConfig()
	}

	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		fmt.Fprintln(cmd.ErrOrStderr(), "Using default settings.")
		return config.New()
	}
	return cfg
}

func runExplorer(cmd *cobra.Command, opts rootOptions) error {
	cfg := loadConfig(cmd, opts.cfgFile)

	log.Configure(append([]log.Option{log.WithOutput(cmd.ErrOrStderr())}, cfg.LogOptions()...)...)
	defer log.Default().Close()
	log.SetDebug(opts.debug)

	var (
		e   *explorer.Explorer
		err error
	)
	if opts.dir != "" {
		e, err = explorer.New(opts.dir, cfg.ExplorerOptions()...)
	} else {
		e, err = explorer.FromWorkingDirectory(cfg.ExplorerOptions()...)
	}
	if err != nil {
		log.LogWithError(err).Error("cannot start explorer")
		return err
	}

	printerOpts := cfg.PrinterOptions()
	if opts.noColor {
		printerOpts = append(printerOpts, ui.WithColor(false))
	}
	printer := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), printerOpts...)

	log.LogWithFields(log.F("dir", e.Cwd()), log.F("version", version)).Debug("starting")
	return menu.New(e, cmd.InOrStdin(), printer,
		menu.WithFormatter(cfg.Formatter()),
		menu.WithBanner(cfg.Display.Banner),
	).Run()
}
