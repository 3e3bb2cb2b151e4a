// Package cli implements the arrange command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/arrange/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	verbose   bool
}

// app carries state shared by every subcommand once the root command has
// resolved its configuration.
type app struct {
	flags  rootFlags
	cfg    *viper.Viper
	logger *zap.Logger
}

// NewRootCmd creates the top-level "arrange" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "arrange",
		Short: "Count colour arrangements with no two equal neighbours",
		Long: `arrange reads a list of category codes, groups them into colour slots,
and counts the ways to lay every unit out in a row so that no colour is
used twice in a row, modulo 1000000007.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newCountCmd(a))
	root.AddCommand(newEvalCmd(a))
	root.AddCommand(newVerifyCmd(a))

	return root
}

// setup resolves the config directory, loads config.yaml and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysErr(err)
	}
	if f := cmd.Flags().Lookup(flagMaxItems); f != nil {
		if err := cfg.BindPFlag(cfgKeyVerifyMaxItems, f); err != nil {
			return sysErr(fmt.Errorf("bind %s: %w", flagMaxItems, err))
		}
	}
	cfg.Set(cfgKeyConfigDir, configDir)
	a.cfg = cfg

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.GetString(cfgKeyLogLevel), a.flags.verbose)
	if err != nil {
		return sysErr(err)
	}
	a.logger = logger
	return nil
}

// jsonOutput reports whether results should be written as JSON, either
// because --json was given or config.yaml selects it.
func (a *app) jsonOutput() bool {
	return a.flags.jsonMode || a.cfg.GetString(cfgKeyOutput) == outputJSON
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command tree with the given arguments and streams and
// returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// sysError marks failures of the environment rather than of the input.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func sysErr(err error) error {
	return &sysError{err: err}
}

// exitCode maps an error onto the process exit code.
func exitCode(err error) int {
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
