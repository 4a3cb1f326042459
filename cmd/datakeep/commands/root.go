package commands

import (
	"github.com/spf13/cobra"

	"datakeep/internal/app"
)

var (
	configPath  string
	subfolder   string
	dataRoot    string
	bundledRoot string
	logLevel    string
	verbose     bool

	appCtx *app.Wire
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "datakeep",
		Short:        "Save and load JSON records, optionally encrypted at rest",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if subfolder != "" {
				cfg.Subfolder = subfolder
			}
			if dataRoot != "" {
				cfg.DataRoot = dataRoot
			}
			if bundledRoot != "" {
				cfg.BundledRoot = bundledRoot
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if verbose {
				cfg.LogLevel = "DEBUG"
			}
			if err := app.ConfigureLogging(cfg.LogLevel); err != nil {
				return err
			}

			appCtx, err = app.NewWire(cfg, nil)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to a datakeep.toml config file")
	pf.StringVar(&subfolder, "subfolder", "", "writable root subfolder (default datakeep)")
	pf.StringVar(&dataRoot, "data-root", "", "platform data root (default user config dir)")
	pf.StringVar(&bundledRoot, "bundled-root", "", "bundled assets directory or URL")
	pf.StringVar(&logLevel, "log-level", "", "log level (TRACE, DEBUG, INFO, WARNING, ERROR)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "shorthand for --log-level DEBUG")

	root.AddCommand(
		pathsCmd(),
		configCmd(),
		saveCmd(),
		loadCmd(),
		rmCmd(),
		encryptCmd(),
		decryptCmd(),
	)
	return root
}
