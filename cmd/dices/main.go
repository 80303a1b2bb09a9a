// Package main provides the dices CLI application entry point.
// dices is an interactive dice roller with user-defined aliases and macros.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"dices/internal/config"
	"dices/internal/logger"
	"dices/internal/output"
	"dices/internal/shell"
	"dices/internal/version"
)

var (
	cfg      *config.Config
	verbose  int
	detailed bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dices",
	Short: "dices - roll dice with aliases and macros",
	Long: `dices reads dice expressions such as "dice 3D6 +1" or "open D10" and rolls them.
Names bound in the alias file expand to other commands before they run.
Without a terminal on stdin, lines are read from stdin in batch mode.`,
	Run: runDefault,
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	Run:   runShell,
}

var rollCmd = &cobra.Command{
	Use:   "roll <command...>",
	Short: "Run a single command and exit",
	Long: `Run one command line, for instance "dices roll dice 2D10 +3" or "dices roll doom".
The exit status is non-zero when the command fails.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runRoll,
}

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Run every line of a file",
	Long:  `Run each line of a file. Blank lines and lines starting with #, // or ! are skipped.`,
	Args:  cobra.ExactArgs(1),
	Run:   runBatch,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List builtins, aliases and macros",
	Run: func(_ *cobra.Command, _ []string) {
		mustApp().session.Handle("list")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		if detailed {
			fmt.Println(version.GetDetailedVersion())
			return
		}
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.Bool(config.KeyTestMode, false, "Run in deterministic test mode")
	flags.StringP(config.KeyAliasFile, "a", "", "Alias file (text, .yaml or .toml) [default: ~/.config/dices/aliases]")
	flags.String(config.KeyConfig, "", "Config file [default: ~/.config/dices/config.yaml]")
	flags.Int64(config.KeySeed, 0, "Seed of the random source, 0 picks a random one")
	flags.String(config.KeySampler, "", "Die sampler (direct|coin)")
	flags.Bool(config.KeyStrict, false, "Only accept D4, D6, D8, D10, D12, D20 and D100")
	flags.Int(config.KeyMaxRecursion, 0, "Maximum alias and macro expansions per line")
	flags.Bool(config.KeyPlain, false, "Plain text output")
	flags.Bool(config.KeyJSON, false, "JSON output, one record per line")
	flags.CountVarP(&verbose, "verbose", "v", "Verbose logging")

	for _, key := range []string{
		config.KeyLogLevel, config.KeyLogFile, config.KeyTestMode, config.KeyAliasFile,
		config.KeyConfig, config.KeySeed, config.KeySampler, config.KeyStrict,
		config.KeyMaxRecursion, config.KeyPlain, config.KeyJSON,
	} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", key, err)
			os.Exit(1)
		}
	}

	rootCmd.Version = version.GetFormattedVersion()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "Show version information")

	versionCmd.Flags().BoolVar(&detailed, "detailed", false, "Show build details")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure logger and output before any command execution
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	dir, err := config.Dir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	dotenvPaths := []string{".env"}
	if dir != "" {
		dotenvPaths = append(dotenvPaths, filepath.Join(dir, ".env"))
	}
	if _, err := config.LoadDotEnv(dotenvPaths...); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	v := viper.GetViper()
	config.SetDefaults(v)
	if err := config.ReadFile(v, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		os.Exit(1)
	}

	cfg, err = config.Load(v, dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Configure(logger.Verbosity(verbose, cfg.LogLevel), cfg.LogFile, cfg.TestMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
	output.ConfigureGlobal(output.ForMode(cfg.Output)...)

	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("Config file loaded", "path", used)
	}
}

func runDefault(cmd *cobra.Command, args []string) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		runShell(cmd, args)
		return
	}

	a := mustApp()
	logger.Debug("Reading commands from stdin")
	failed, err := a.session.RunBatch(os.Stdin)
	if err != nil {
		logger.Fatal("Batch input failed", "error", err)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runShell(_ *cobra.Command, _ []string) {
	a := mustApp()
	logger.Info("Starting dices", "version", version.GetVersion())

	a.session.Run(a.registry, shell.Options{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
		Banner:      version.GetFormattedVersion() + " - type 'list' for commands, 'exit' to quit",
	})
}

func runRoll(_ *cobra.Command, args []string) {
	out := mustApp().session.Handle(strings.Join(args, " "))
	if out.Err != nil {
		os.Exit(1)
	}
}

func runBatch(_ *cobra.Command, args []string) {
	path := args[0]
	a := mustApp()

	file, err := os.Open(path)
	if err != nil {
		logger.Fatal("Cannot open batch file", "path", path, "error", err)
	}
	defer func() { _ = file.Close() }()

	logger.Debug("Starting batch", "path", path)
	failed, err := a.session.RunBatch(file)
	if err != nil {
		logger.Fatal("Batch failed", "path", path, "error", err)
	}
	if failed > 0 {
		logger.Error("Batch finished with errors", "path", path, "failed", failed)
		_ = file.Close()
		os.Exit(1)
	}
}

func mustApp() *app {
	a, err := newApp(cfg, output.GetGlobalPrinter())
	if err != nil {
		logger.Fatal("Failed to start", "error", err)
	}
	return a
}
