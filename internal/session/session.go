// Package session runs the interactive menu loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vvka-141/fmgr/internal/browser"
	"github.com/vvka-141/fmgr/internal/selection"
	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// Menu prompts.
const (
	PromptChoice     = "Your choice: "
	PromptNavigate   = "Enter navigation index: "
	PromptSelect     = "Enter file indices to select (comma-separated): "
	PromptCopyDest   = "Enter destination path for copying: "
	PromptMoveDest   = "Enter destination path for moving: "
	MessageGoodbye   = "Goodbye!"
	MessageAtRoot    = "Already at root directory"
	MessageBadChoice = "Invalid choice"
)

// Executor runs bulk actions against the selection.
type Executor interface {
	Copy(ctx context.Context, destDir string) (fmgr.ActionResult, error)
	Move(ctx context.Context, destDir string) (fmgr.ActionResult, error)
	Delete(ctx context.Context) (fmgr.ActionResult, error)
}

// Session ties the browser, the selection and the executor to the menu.
// Every menu choice is one complete transaction; nothing that happens inside
// a choice ends the loop.
type Session struct {
	browser   *browser.Browser
	selection *selection.Set
	executor  Executor
	reporter  fmgr.Reporter
	prompter  fmgr.Prompter
	logger    fmgr.Logger
}

// New creates a Session. Nil dependencies panic.
func New(
	b *browser.Browser,
	sel *selection.Set,
	executor Executor,
	reporter fmgr.Reporter,
	prompter fmgr.Prompter,
	logger fmgr.Logger,
) *Session {
	if b == nil {
		panic("browser cannot be nil")
	}
	if sel == nil {
		panic("selection cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	if prompter == nil {
		panic("prompter cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &Session{
		browser:   b,
		selection: sel,
		executor:  executor,
		reporter:  reporter,
		prompter:  prompter,
		logger:    logger,
	}
}

// Run shows the menu until the operator quits or the input ends. It returns
// nil in both cases, and the context error if ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	for {
		s.reporter.ShowMenu(fmgr.MenuItems)

		choice, err := s.prompter.ReadLine(ctx, PromptChoice)
		if errors.Is(err, io.EOF) {
			s.reporter.Notify(MessageGoodbye)
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := s.step(ctx, strings.TrimSpace(choice))
		if quit {
			return nil
		}
		if err == nil {
			continue
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errors.Is(err, io.EOF) {
			// input ran out inside a sub-prompt; the next menu read ends the loop
			continue
		}
		s.logger.Verbose("choice %q: %v", choice, err)
		s.reporter.ShowError(describeError(err))
	}
}

// step runs one menu choice. A panic inside the choice is turned into an
// error so the loop survives it.
func (s *Session) step(ctx context.Context, choice string) (quit bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recovered from panic in menu choice %q: %v", choice, r)
			quit = false
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	switch choice {
	case fmgr.ChoiceDisplay:
		s.showDirectory()
	case fmgr.ChoiceNavigate:
		err = s.navigate(ctx)
	case fmgr.ChoiceParent:
		err = s.ascend()
	case fmgr.ChoiceSelect:
		err = s.selectEntries(ctx)
	case fmgr.ChoiceCopy:
		err = s.transfer(ctx, PromptCopyDest, s.executor.Copy)
	case fmgr.ChoiceMove:
		err = s.transfer(ctx, PromptMoveDest, s.executor.Move)
	case fmgr.ChoiceDelete:
		err = s.delete(ctx)
	case fmgr.ChoiceQuit:
		s.reporter.Notify(MessageGoodbye)
		return true, nil
	default:
		s.reporter.ShowError(MessageBadChoice)
	}
	return false, err
}

func (s *Session) showDirectory() {
	s.reporter.ShowDirectory(s.browser.Path(), s.browser.ListCurrent())
}

func (s *Session) navigate(ctx context.Context) error {
	raw, err := s.prompter.ReadLine(ctx, PromptNavigate)
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %q", fmgr.ErrInvalidIndexFormat, raw)
	}

	moved, err := s.browser.Descend(index)
	if err != nil {
		return navigationError{err: err}
	}
	if !moved {
		name, _ := s.browser.Name(index)
		s.reporter.Notify("Cannot open file %s", name)
		return nil
	}
	s.showDirectory()
	return nil
}

func (s *Session) ascend() error {
	moved, err := s.browser.Ascend()
	if err != nil {
		return navigationError{err: err}
	}
	if !moved {
		s.reporter.Notify(MessageAtRoot)
	}
	s.showDirectory()
	return nil
}

func (s *Session) selectEntries(ctx context.Context) error {
	s.showDirectory()

	raw, err := s.prompter.ReadLine(ctx, PromptSelect)
	if err != nil {
		return err
	}

	paths, err := s.selection.SelectByIndices(raw, s.browser)
	if err != nil {
		return err
	}
	s.reporter.ShowSelection(paths)
	return nil
}

func (s *Session) transfer(ctx context.Context, prompt string, run func(context.Context, string) (fmgr.ActionResult, error)) error {
	raw, err := s.prompter.ReadPath(ctx, prompt)
	if err != nil {
		return err
	}

	dest, err := s.resolveDestination(raw)
	if err != nil {
		return err
	}

	result, err := run(ctx, dest)
	if err != nil {
		return err
	}
	s.reporter.ShowActionResult(result)
	return s.refresh()
}

func (s *Session) delete(ctx context.Context) error {
	result, err := s.executor.Delete(ctx)
	if errors.Is(err, fmgr.ErrActionDeclined) {
		s.reporter.Notify("Delete cancelled, selection kept.")
		return nil
	}
	if err != nil {
		return err
	}
	s.reporter.ShowActionResult(result)
	return s.refresh()
}

// resolveDestination makes raw absolute, relative to the current directory.
func (s *Session) resolveDestination(raw string) (string, error) {
	dest := strings.TrimSpace(raw)
	if dest == "" {
		return "", fmt.Errorf("%w: empty destination", fmgr.ErrNotADirectory)
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(s.browser.Path(), dest)
	}
	return filepath.Clean(dest), nil
}

// refresh re-lists the current directory after the filesystem changed.
func (s *Session) refresh() error {
	if err := s.browser.Refresh(); err != nil {
		return fmt.Errorf("refresh %s: %w", s.browser.Path(), err)
	}
	return nil
}

type navigationError struct {
	err error
}

func (e navigationError) Error() string { return e.err.Error() }

func (e navigationError) Unwrap() error { return e.err }

// describeError turns an error into the message shown to the operator.
func describeError(err error) string {
	var navErr navigationError
	switch {
	case errors.Is(err, fmgr.ErrAccessDenied):
		return "Access denied to this directory."
	case errors.Is(err, fmgr.ErrInvalidIndexFormat):
		return "Invalid input. Please enter valid indices."
	case errors.As(err, &navErr):
		return "Navigation error: " + navErr.Error()
	case errors.Is(err, fmgr.ErrActionDeclined):
		return "Cancelled."
	default:
		return "An error occurred: " + err.Error()
	}
}
