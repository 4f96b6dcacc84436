package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fmgr/pkg/fmgr"
)

type listing []string

func (l listing) Resolve(index int) (string, bool) {
	if index < 0 || index >= len(l) {
		return "", false
	}
	return "/home/op/" + l[index], true
}

var fixture = listing{"a.txt", "b.txt", "sub"}

func TestParseIndices(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int
		wantErr bool
	}{
		{name: "single", raw: "1", want: []int{1}},
		{name: "list", raw: "0,2", want: []int{0, 2}},
		{name: "spaces", raw: " 1 , 0 ", want: []int{1, 0}},
		{name: "negative", raw: "-1", want: []int{-1}},
		{name: "duplicates", raw: "2,2", want: []int{2, 2}},
		{name: "letters", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "empty token", raw: "0,,1", wantErr: true},
		{name: "trailing comma", raw: "0,", wantErr: true},
		{name: "float", raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIndices(tt.raw)
			if tt.wantErr {
				assert.True(t, errors.Is(err, fmgr.ErrInvalidIndexFormat), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectByIndices_PreservesInputOrder(t *testing.T) {
	s := New()
	got, err := s.SelectByIndices("2,0", fixture)
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/op/sub", "/home/op/a.txt"}, got)
	assert.Equal(t, got, s.Paths())
}

func TestSelectByIndices_ZeroAndTwo(t *testing.T) {
	s := New()
	got, err := s.SelectByIndices("0,2", fixture)
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/op/a.txt", "/home/op/sub"}, got)
}

func TestSelectByIndices_InvalidFormatLeavesSelectionEmpty(t *testing.T) {
	s := New()
	_, err := s.SelectByIndices("0", fixture)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	_, err = s.SelectByIndices("abc", fixture)
	assert.True(t, errors.Is(err, fmgr.ErrInvalidIndexFormat))
	assert.Equal(t, 0, s.Len())
}

func TestSelectByIndices_OutOfRangeSkipped(t *testing.T) {
	s := New()
	got, err := s.SelectByIndices("0,99", listing{"only.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/op/only.txt"}, got)
}

func TestSelectByIndices_DuplicatesKept(t *testing.T) {
	s := New()
	got, err := s.SelectByIndices("1,1", fixture)
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/op/b.txt", "/home/op/b.txt"}, got)
}

func TestSelectByIndices_Overwrites(t *testing.T) {
	s := New()
	_, err := s.SelectByIndices("0,1", fixture)
	require.NoError(t, err)

	_, err = s.SelectByIndices("2", fixture)
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/op/sub"}, s.Paths())
}

func TestConsume(t *testing.T) {
	s := New()
	_, err := s.SelectByIndices("0,1", fixture)
	require.NoError(t, err)

	got := s.Consume()
	assert.Equal(t, []string{"/home/op/a.txt", "/home/op/b.txt"}, got)
	assert.Empty(t, s.Consume())
	assert.Equal(t, 0, s.Len())
}

func TestPaths_ReturnsCopy(t *testing.T) {
	s := New()
	_, err := s.SelectByIndices("0", fixture)
	require.NoError(t, err)

	p := s.Paths()
	p[0] = "mutated"
	assert.Equal(t, []string{"/home/op/a.txt"}, s.Paths())
}

func TestClear(t *testing.T) {
	s := New()
	_, err := s.SelectByIndices("0,1,2", fixture)
	require.NoError(t, err)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Paths())
}
