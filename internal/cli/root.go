// Package cli implements the premisctl command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jacoelho/premis/internal/config"
	"github.com/jacoelho/premis/internal/logging"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	stdout    io.Writer
	stderr    io.Writer
	configDir string
	cfg       *config.Config
	log       zerolog.Logger
	profile   logging.Profile
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "premisctl",
		Short: "Build, inspect and check PREMIS 2 preservation metadata",
		Long: `premisctl builds PREMIS 2.2 documents from YAML or TOML manifests and
inspects existing documents.

Exit Codes:
  0  - Success
  1  - Command failed (malformed document, build error, entity not found)
  2  - CLI usage error (invalid arguments or flags)`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().StringVar(&a.configDir, "config-dir", ".", "directory holding "+config.FileName+" and .env")

	root.AddCommand(
		newBuildCommand(a),
		newInspectCommand(a),
		newFindCommand(a),
		newCheckCommand(a),
		newVersionCommand(a),
	)
	return root
}

// setup loads .env, the project config and the logger before a subcommand
// runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(filepath.Join(a.configDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	a.log = logging.Configure(a.profile, a.stderr)

	cfg, err := config.Load(a.configDir)
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		cfg = config.Default()
		a.log.Debug().Str("dir", a.configDir).Msg("no config file, using defaults")
	case err != nil:
		return fmt.Errorf("failed to load %s: %w", config.FileName, err)
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errInvalidConfig, err)
	}
	a.cfg = cfg
	return nil
}

// Execute runs premisctl with the process arguments and returns the exit
// code.
func Execute() int {
	a := &app{stdout: os.Stdout, stderr: os.Stderr, log: zerolog.Nop()}
	return run(newRootCommand(a), os.Args[1:], a.stderr)
}

func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return ExitCodeForError(err)
}
