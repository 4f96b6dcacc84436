package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fmgr/internal/browser"
	"github.com/vvka-141/fmgr/internal/config"
	"github.com/vvka-141/fmgr/internal/files/filesystem"
	"github.com/vvka-141/fmgr/internal/journal"
	"github.com/vvka-141/fmgr/internal/logging"
	"github.com/vvka-141/fmgr/internal/selection"
	"github.com/vvka-141/fmgr/internal/services"
	"github.com/vvka-141/fmgr/internal/session"
	"github.com/vvka-141/fmgr/internal/tui"
	"github.com/vvka-141/fmgr/internal/ui"
	"github.com/vvka-141/fmgr/pkg/fmgr"
)

type sessionFlagValues struct {
	configPath    string
	journalPath   string
	confirmDelete bool
	plain         bool
}

var sessionFlags sessionFlagValues

func resetSessionFlags() {
	sessionFlags = sessionFlagValues{}
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&sessionFlags.configPath, "config", "", "Path to a YAML config file")
	f.StringVar(&sessionFlags.journalPath, "journal", "", "Record every bulk-action item in this SQLite file")
	f.BoolVar(&sessionFlags.confirmDelete, "confirm-delete", false, "Ask for confirmation before deleting")
	f.BoolVar(&sessionFlags.plain, "plain", false, "Plain line prompts without colors or path completion")

	_ = rootCmd.RegisterFlagCompletionFunc("config", completeConfigFiles)
	_ = rootCmd.RegisterFlagCompletionFunc("journal", completeJournalFiles)
}

// sessionOptions is the merged result of the config file and the flags.
type sessionOptions struct {
	verbose       bool
	confirmDelete bool
	plain         bool
	journalPath   string
	startDir      string
}

// resolveSessionOptions applies the config file first, then every flag the
// operator set explicitly.
func resolveSessionOptions(cmd *cobra.Command) (sessionOptions, error) {
	var opts sessionOptions

	if sessionFlags.configPath != "" {
		cfg, err := config.Load(sessionFlags.configPath)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return opts, fmt.Errorf("%w: %v", fmgr.ErrInvalidConfig, err)
			}
			return opts, err
		}
		opts = sessionOptions{
			verbose:       cfg.Verbose,
			confirmDelete: cfg.ConfirmDelete,
			plain:         cfg.Plain,
			journalPath:   cfg.Journal,
			startDir:      cfg.StartDir,
		}
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		opts.verbose = getVerboseFlag(cmd)
	}
	if flags.Changed("confirm-delete") {
		opts.confirmDelete = sessionFlags.confirmDelete
	}
	if flags.Changed("plain") {
		opts.plain = sessionFlags.plain
	}
	if flags.Changed("journal") {
		opts.journalPath = sessionFlags.journalPath
	}
	return opts, nil
}

func runSession(cmd *cobra.Command, args []string) error {
	opts, err := resolveSessionOptions(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, ending session...")
			cancel()
		case <-ctx.Done():
		}
	}()

	err = runInteractive(ctx, opts, os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runInteractive wires the session and runs it until the operator quits.
func runInteractive(ctx context.Context, opts sessionOptions, in io.Reader, out, errOut io.Writer) error {
	logger := logging.NewConsoleLoggerTo(errOut, opts.verbose)

	start := opts.startDir
	if start == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		start = home
	}

	gw := filesystem.NewOSGateway(logger)
	b, err := browser.New(gw, start, logger)
	if err != nil {
		return fmt.Errorf("open start directory: %w", err)
	}

	var j fmgr.Journal = journal.Nop{}
	if opts.journalPath != "" {
		sj, err := journal.Open(opts.journalPath)
		if err != nil {
			return err
		}
		defer sj.Close()
		j = sj
		logger.Verbose("Recording actions in %s", opts.journalPath)
	}

	styled := !opts.plain && tui.IsInteractive()
	line := ui.NewLinePrompter(in, out)
	var prompter fmgr.Prompter = line
	if styled {
		prompter = tui.NewPrompter(line, gw, b.Path, in, out)
	}
	reporter := ui.NewConsoleReporter(out, styled)

	var approver fmgr.Approver = ui.NewAutoApprover()
	if opts.confirmDelete {
		approver = ui.NewInteractiveApprover(prompter, out)
	}

	sel := selection.New()
	executor := services.NewBulkExecutor(gw, sel, j, approver, reporter, logger)
	logger.Verbose("Session %s started in %s", executor.SessionID(), b.Path())

	return session.New(b, sel, executor, reporter, prompter, logger).Run(ctx)
}
