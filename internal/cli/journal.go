package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fmgr/internal/journal"
	"github.com/vvka-141/fmgr/pkg/fmgr"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show the most recent bulk-action journal entries",
	Long: `Journal prints the items recorded by sessions started with --journal,
newest first.

Examples:
  fmgr journal --file ~/.local/state/fmgr/journal.db
  fmgr journal --file journal.db --limit 50`,
	Args: cobra.NoArgs,
	RunE: runJournal,
}

type journalFlagValues struct {
	file  string
	limit int
}

var journalFlags journalFlagValues

func resetJournalFlags() {
	journalFlags = journalFlagValues{limit: fmgr.DefaultJournalLimit}
}

func init() {
	journalCmd.Flags().StringVar(&journalFlags.file, "file", "", "Journal database file (required)")
	journalCmd.Flags().IntVar(&journalFlags.limit, "limit", fmgr.DefaultJournalLimit, "Maximum number of entries to print")
	_ = journalCmd.MarkFlagRequired("file")
	_ = journalCmd.RegisterFlagCompletionFunc("file", completeJournalFiles)
	_ = journalCmd.RegisterFlagCompletionFunc("limit", completeJournalLimits)
	rootCmd.AddCommand(journalCmd)
}

func runJournal(cmd *cobra.Command, args []string) error {
	j, err := journal.Open(journalFlags.file)
	if err != nil {
		return err
	}
	defer j.Close()

	entries, err := j.Recent(context.Background(), journalFlags.limit)
	if err != nil {
		return err
	}
	return printJournal(cmd.OutOrStdout(), entries)
}

func printJournal(w io.Writer, entries []fmgr.JournalEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No journal entries.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tSESSION\tACTION\tOUTCOME\tPATH\tDESTINATION\tERROR")
	for _, e := range entries {
		session := e.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			session,
			e.Action,
			e.Outcome,
			e.Path,
			dash(e.Destination),
			dash(e.Error),
		)
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
