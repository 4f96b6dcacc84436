// Package services implements the bulk actions (copy, move, delete) that the
// interactive session runs against the current selection.
package services
