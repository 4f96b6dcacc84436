// Package selection holds the operator's pending selection of paths.
package selection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// Resolver maps a listing index to an absolute path.
type Resolver interface {
	Resolve(index int) (string, bool)
}

// Set is an ordered list of absolute paths awaiting a bulk action. Paths are
// kept in input order and are not de-duplicated.
type Set struct {
	paths []string
}

// New returns an empty Set.
func New() *Set {
	return &Set{}
}

// ParseIndices parses a comma-separated list of integers. Every token must
// be an integer after trimming, so empty input and empty tokens are errors.
func ParseIndices(raw string) ([]int, error) {
	tokens := strings.Split(raw, fmgr.IndexSeparator)
	indices := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", fmgr.ErrInvalidIndexFormat, tok)
		}
		indices = append(indices, n)
	}
	return indices, nil
}

// SelectByIndices replaces the selection with the paths r resolves for raw.
// Indices r cannot resolve are dropped. A malformed input leaves the
// selection empty.
func (s *Set) SelectByIndices(raw string, r Resolver) ([]string, error) {
	indices, err := ParseIndices(raw)
	if err != nil {
		s.paths = nil
		return nil, err
	}

	paths := make([]string, 0, len(indices))
	for _, i := range indices {
		if p, ok := r.Resolve(i); ok {
			paths = append(paths, p)
		}
	}
	s.paths = paths
	return s.Paths(), nil
}

// Consume returns the selection and empties it.
func (s *Set) Consume() []string {
	paths := s.paths
	s.paths = nil
	return paths
}

// Paths returns a copy of the selection.
func (s *Set) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Len returns the number of selected paths.
func (s *Set) Len() int {
	return len(s.paths)
}

// Clear empties the selection.
func (s *Set) Clear() {
	s.paths = nil
}
