package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vvka-141/fmgr/pkg/fmgr"
)

type recordingReporter struct {
	failures []string
	notices  []string
}

func (r *recordingReporter) ShowMenu(_ []string)                    {}
func (r *recordingReporter) ShowDirectory(_ string, _ []fmgr.Entry) {}
func (r *recordingReporter) ShowSelection(_ []string)               {}
func (r *recordingReporter) ShowActionResult(_ fmgr.ActionResult)   {}
func (r *recordingReporter) ShowError(message string)               { r.notices = append(r.notices, message) }
func (r *recordingReporter) Notify(format string, args ...interface{}) {
	r.notices = append(r.notices, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) ShowItemFailure(kind fmgr.ActionKind, path string, err error) {
	r.failures = append(r.failures, fmt.Sprintf("%s %s: %v", kind, path, err))
}

type mockJournal struct {
	entries []fmgr.JournalEntry
	err     error
}

func (m *mockJournal) Record(_ context.Context, entry fmgr.JournalEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockJournal) Close() error { return nil }

type mockApprover struct {
	approved bool
	err      error
	asked    [][]string
}

func (m *mockApprover) RequestApproval(_ context.Context, _ fmgr.ActionKind, paths []string) (bool, error) {
	m.asked = append(m.asked, paths)
	return m.approved, m.err
}

// faultyGateway fails Copy, Move and removal for the listed paths and
// delegates everything else.
type faultyGateway struct {
	fmgr.Gateway
	failing map[string]bool
}

var errInjected = errors.New("injected failure")

func (g *faultyGateway) Copy(src, destDir string) error {
	if g.failing[src] {
		return errInjected
	}
	return g.Gateway.Copy(src, destDir)
}

func (g *faultyGateway) Move(src, destDir string) error {
	if g.failing[src] {
		return errInjected
	}
	return g.Gateway.Move(src, destDir)
}

func (g *faultyGateway) Remove(path string) error {
	if g.failing[path] {
		return errInjected
	}
	return g.Gateway.Remove(path)
}

func (g *faultyGateway) RemoveAll(path string) error {
	if g.failing[path] {
		return errInjected
	}
	return g.Gateway.RemoveAll(path)
}
