// Package ui contains the line-oriented console adapters of the session:
// the reporter that prints menus and listings, the prompter that reads
// operator input, and the approvers consulted before a delete.
package ui
