package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	configExtensions  = []string{"yaml", "yml"}
	journalExtensions = []string{"db", "sqlite", "sqlite3"}
	journalLimits     = []string{"10", "20", "50", "100"}
)

// completeConfigFiles limits --config completion to YAML files.
func completeConfigFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return configExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completeJournalFiles limits journal path completion to SQLite files.
func completeJournalFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return journalExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completeJournalLimits suggests common --limit values.
func completeJournalLimits(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, limit := range journalLimits {
		if strings.HasPrefix(limit, toComplete) {
			matches = append(matches, limit)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
