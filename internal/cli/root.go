// Package cli implements the fridge command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/mesh-intelligence/fridge/internal/i18n"
	"github.com/mesh-intelligence/fridge/internal/paths"
	"github.com/mesh-intelligence/fridge/pkg/sqlite"
	"github.com/mesh-intelligence/fridge/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// sysError marks a failure of the environment (filesystem, database) rather
// than of the request. It maps to exitSysError.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemErr(format string, args ...any) error {
	return &sysError{err: fmt.Errorf(format, args...)}
}

// app holds global flag values and the settings resolved from them.
type app struct {
	configDir string
	dataDir   string
	jsonMode  bool
	lang      string
	verbose   bool

	config   types.Config
	printer  *message.Printer
	logger   *log.Logger
	newStore func() types.Store
}

// NewRootCmd creates the top-level "fridge" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{
		logger:   log.New(io.Discard, "", 0),
		newStore: sqlite.NewBackend,
	})
}

func newRootCmd(a *app) *cobra.Command {

	root := &cobra.Command{
		Use:   "fridge",
		Short: "Fridge tracks what is stored where in a refrigerator",
		Long: `Fridge models a refrigerator of up to three floors. Each floor holds
numbered containers and each container has four item positions.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: ./.fridge if present, else the platform config dir)")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "data directory (default: the platform data dir)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.lang, "lang", "", "render language: "+i18n.SupportedList()+" (default: config language)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log storage activity to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newFloorCmd())
	root.AddCommand(a.newContainerCmd())
	root.AddCommand(a.newItemCmd())
	root.AddCommand(a.newShowCmd())
	root.AddCommand(a.newHistoryCmd())

	return root
}

// Execute runs the root command against os.Args and returns the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	return execute(NewRootCmd(), args, stdout, stderr)
}

func execute(root *cobra.Command, args []string, stdout, stderr io.Writer) int {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "fridge:", err)
	return exitCode(err)
}

// exitCode maps err to a process exit code. Anything not marked as a
// system failure is the caller's fault.
func exitCode(err error) int {
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// setup resolves directories and configuration before every command.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.verbose {
		a.logger = log.New(cmd.ErrOrStderr(), "fridge: ", log.LstdFlags)
	}
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return systemErr("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return systemErr("load config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(a.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return systemErr("resolve data dir: %w", err)
	}

	lang := v.GetString(cfgKeyLanguage)
	if a.lang != "" {
		lang = a.lang
	}
	tag, err := i18n.ResolveTag(lang)
	if err != nil {
		return err
	}

	a.config = types.Config{
		Backend:               v.GetString(cfgKeyBackend),
		DataDir:               dataDir,
		MaxContainersPerFloor: v.GetInt(cfgKeyMaxContainers),
		Language:              tag.String(),
	}
	if err := a.config.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", configDir, err)
	}
	a.printer = i18n.Printer(tag)

	a.logger.Printf("config dir %s, data dir %s, language %s", configDir, dataDir, a.config.Language)
	return nil
}
