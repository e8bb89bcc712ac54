// Package cmd provides the root command and CLI setup for glossa.
package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/glossa/internal/adapter"
	"github.com/mouse-blink/glossa/internal/config"
	"github.com/mouse-blink/glossa/internal/controller"
	"github.com/mouse-blink/glossa/internal/domain"
	m "github.com/mouse-blink/glossa/internal/model"
)

// ErrLanguageRequired is returned when no language is selected by flag, env or config.
var ErrLanguageRequired = errors.New("a target language is required (--lang, GLOSSA_LANG or lang in config)")

var fsAdapter adapter.SourceFSAdapter
var dictionaryLoader adapter.DictionaryLoader
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// cfg holds the merged configuration for the running command.
var cfg = config.Default()

var configPathFlag string
var logLevelFlag string

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	dictionaryLoader = adapter.NewDictionaryLoader(fsAdapter)
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		dictionaryLoader,
		reportStore,
		ui,
	)
}

var langFlag string
var outFlag string
var dictFlag string
var parallelFlag int
var reportFlag bool
var extFlag string
var suffixFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `Glossa rewrites the English text inside string literals of a source file
into another language using an offline dictionary. Placeholders, markup,
URLs, commands, emoji and identifiers are protected and restored verbatim.
Only literals that look like user-facing messages are touched.

The input is never modified; the result is written next to it with a
suffix (bot.py -> bot_OUT.py) or to --out.

Path patterns:
  - bot.py          a single document
  - ./texts         every document in a directory
  - ./texts/...     every document in a directory tree`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "glossa SRC...",
		Short:        "Offline translator for string literals in source files",
		Long:         rootLongDescription,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if cfg.Lang == "" {
				return ErrLanguageRequired
			}

			reports := m.Path("")
			if cfg.SaveReports {
				reports = m.Path(cfg.Reports)
			}

			return workflow.Translate(domain.TranslateArgs{
				SourceArgs: sourceArgs(args),
				Out:        m.Path(outFlag),
				Threads:    cfg.Parallel,
				Reports:    reports,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&configPathFlag, "config", config.DefaultPath, "path to the YAML config file")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "", "target language code (ru, ar, hi)")
	cmd.PersistentFlags().StringVarP(&dictFlag, "dict", "d", "", "dictionary override file (.json, .yaml or .po)")
	cmd.PersistentFlags().StringVar(&extFlag, "ext", "", "document extension picked up when walking directories")
	cmd.PersistentFlags().StringVar(&suffixFlag, "suffix", "", "suffix added to derived output names")

	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "output path (single input only)")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of documents rewritten concurrently")
	cmd.Flags().BoolVar(&reportFlag, "report", false, "save a run report for every document")

	return cmd
}

// loadConfig merges defaults, the config file and the environment, then
// applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command) error {
	loaded, err := config.Load(configPathFlag)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("lang") {
		loaded.Lang = langFlag
	}

	if flags.Changed("dict") {
		loaded.Dict = dictFlag
	}

	if flags.Changed("ext") {
		loaded.Ext = extFlag
	}

	if flags.Changed("suffix") {
		loaded.OutSuffix = suffixFlag
	}

	if flags.Changed("parallel") {
		loaded.Parallel = parallelFlag
	}

	if flags.Changed("report") {
		loaded.SaveReports = reportFlag
	}

	if flags.Changed("log-level") {
		loaded.Log.Level = logLevelFlag
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	config.SetupLogging(loaded.Log, os.Stderr)

	cfg = loaded

	return nil
}

func sourceArgs(args []string) domain.SourceArgs {
	return domain.SourceArgs{
		Paths:     parsePaths(args),
		Lang:      cfg.Lang,
		Dict:      m.Path(cfg.Dict),
		Ext:       cfg.Ext,
		OutSuffix: cfg.OutSuffix,
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
