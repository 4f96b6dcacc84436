package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fmgr",
	Short: "Interactive console file manager",
	Long: `fmgr browses the local filesystem from your home directory, lets you select
entries of the current directory by index, and copies, moves or deletes the
selection in one step.

Menu:
  1 Display Directory   2 Navigate   3 Go to Parent Directory   4 Select Files
  5 Copy                6 Move       7 Delete                   8 Quit

Every flag is optional; a bare "fmgr" starts the menu with defaults.

Exit Codes:
  0  - Session ended (Quit or end of input)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration file
  11 - Action journal could not be opened`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSession,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose diagnostics on stderr")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
