package main

import (
	"fmt"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/perchfs/perch/internal/engine"
	"github.com/perchfs/perch/internal/infrastructure/config"
	"github.com/perchfs/perch/internal/infrastructure/logging"
	"github.com/perchfs/perch/internal/infrastructure/monitoring"
)

var (
	// Flags
	verbose  bool
	jsonOut  bool
	noNotify bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "perch-fs",
		Short:         "Filesystem mutations for the Perch file browser",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "print batch results as JSON")
	root.PersistentFlags().BoolVar(&noNotify, "no-notify", false, "skip relocation listener hooks")

	root.AddCommand(newMkdirCmd(), newCpCmd(), newMvCmd(), newRmCmd())
	return root
}

// newEngine builds an engine from the environment-driven config.
func newEngine() (*engine.Engine, error) {
	cfg := config.LoadOrDefault()

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	if verbose || cfg.Logging.Development {
		logCfg = logging.DevelopmentConfig()
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	return engine.New(cfg.Engine, logger).
		WithMetrics(monitoring.NewMetrics()), nil
}

func newMkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>...",
		Short: "Create directories and their missing ancestors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			for _, arg := range args {
				path, err := absolute(arg)
				if err != nil {
					return err
				}
				if err := eng.EnsureDirectory(cmd.Context(), path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newCpCmd() *cobra.Command {
	var ignore []string
	cmd := &cobra.Command{
		Use:   "cp <source>... <dest-dir>",
		Short: "Recursively copy files and directories into a destination directory",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			sources, destDir, err := splitSourcesDest(args)
			if err != nil {
				return err
			}

			var result engine.BatchResult
			if len(ignore) > 0 {
				// Per-source copies so ignore patterns apply; still one
				// aggregate result for the caller.
				for _, source := range sources {
					outcomes, err := eng.CopyTreeWith(cmd.Context(), source, destDir, engine.CopyOptions{Ignore: ignore})
					if err != nil {
						result.Failures = append(result.Failures, engine.Outcome{Path: source, Err: err})
						continue
					}
					for _, o := range outcomes {
						if o.Success() {
							result.Successes++
						} else {
							result.Failures = append(result.Failures, o)
						}
					}
				}
			} else {
				result = eng.CopyMany(cmd.Context(), sources, destDir)
			}
			return report(cmd, "copied", result)
		},
	}
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "doublestar patterns to skip, relative to each source")
	return cmd
}

func newMvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <source>... <dest-dir>",
		Short: "Move files and directories into a destination directory",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			sources, destDir, err := splitSourcesDest(args)
			if err != nil {
				return err
			}
			result := eng.MoveMany(cmd.Context(), sources, destDir, !noNotify)
			return report(cmd, "moved", result)
		},
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>...",
		Short: "Recursively remove files and directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			targets, err := absoluteAll(args)
			if err != nil {
				return err
			}
			result := eng.RemoveMany(cmd.Context(), targets)
			return report(cmd, "removed", result)
		},
	}
}

func splitSourcesDest(args []string) ([]string, string, error) {
	sources, err := absoluteAll(args[:len(args)-1])
	if err != nil {
		return nil, "", err
	}
	destDir, err := absolute(args[len(args)-1])
	if err != nil {
		return nil, "", err
	}
	return sources, destDir, nil
}

func absoluteAll(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := absolute(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, path)
	}
	return out, nil
}

// absolute resolves a CLI argument; the engine itself only accepts
// already-resolved absolute paths.
func absolute(arg string) (string, error) {
	path, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", arg, err)
	}
	return path, nil
}

// report prints a batch result and returns an error when anything failed,
// so the process exit code reflects partial failure.
func report(cmd *cobra.Command, verb string, result engine.BatchResult) error {
	if jsonOut {
		out, err := sonic.MarshalIndent(jsonResult(result), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d of %d items\n", verb, result.Successes, result.Total())
		for _, f := range result.Failures {
			fmt.Fprintf(cmd.OutOrStdout(), "  failed: %s: %v\n", f.Path, f.Err)
		}
	}
	if len(result.Failures) > 0 {
		return fmt.Errorf("%d of %d items failed", len(result.Failures), result.Total())
	}
	return nil
}

type failureJSON struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

type resultJSON struct {
	Successes int           `json:"successes"`
	Failures  []failureJSON `json:"failures"`
}

func jsonResult(result engine.BatchResult) resultJSON {
	out := resultJSON{Successes: result.Successes, Failures: []failureJSON{}}
	for _, f := range result.Failures {
		out.Failures = append(out.Failures, failureJSON{Path: f.Path, Reason: f.Err.Error()})
	}
	return out
}
