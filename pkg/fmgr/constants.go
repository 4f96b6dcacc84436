package fmgr

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Session ended by the operator
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (unknown flags, bad arguments)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration file or flag combination
	ExitJournalError = 11 // Action journal could not be opened
)

// Menu choices, in the order they are displayed.
const (
	ChoiceDisplay  = "1"
	ChoiceNavigate = "2"
	ChoiceParent   = "3"
	ChoiceSelect   = "4"
	ChoiceCopy     = "5"
	ChoiceMove     = "6"
	ChoiceDelete   = "7"
	ChoiceQuit     = "8"
)

// MenuItems are the menu labels keyed by position; index i is choice i+1.
var MenuItems = []string{
	"Display Directory",
	"Navigate",
	"Go to Parent Directory",
	"Select Files",
	"Copy",
	"Move",
	"Delete",
	"Quit",
}

const (
	// IndexSeparator separates indices in a selection input.
	IndexSeparator = ","

	// ListingRuleWidth is the width of the rule printed under the directory header.
	ListingRuleWidth = 50

	// DefaultJournalLimit is the number of entries `fmgr journal` prints by default.
	DefaultJournalLimit = 20
)
