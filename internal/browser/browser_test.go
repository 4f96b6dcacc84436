package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fmgr/internal/files/filesystem"
	"github.com/vvka-141/fmgr/pkg/fmgr"
)

func newFixture(t *testing.T) *filesystem.MemoryGateway {
	t.Helper()
	gw := filesystem.NewMemoryGateway(nil)
	require.NoError(t, gw.AddFile("/home/op/a.txt", "alpha"))
	require.NoError(t, gw.AddDir("/home/op/docs"))
	require.NoError(t, gw.AddFile("/home/op/docs/readme.md", "# readme"))
	require.NoError(t, gw.AddFile("/home/op/z.log", ""))
	return gw
}

func TestNew_ListsStartDirectory(t *testing.T) {
	b, err := New(newFixture(t), "/home/op", nil)
	require.NoError(t, err)

	state := b.State()
	assert.Equal(t, "/home/op", state.Path)
	assert.Equal(t, []string{"a.txt", "docs", "z.log"}, state.Children)
}

func TestNew_StartIsNotADirectory(t *testing.T) {
	_, err := New(newFixture(t), "/home/op/a.txt", nil)
	assert.True(t, errors.Is(err, fmgr.ErrNotADirectory))
}

func TestListCurrent(t *testing.T) {
	b, err := New(newFixture(t), "/home/op", nil)
	require.NoError(t, err)

	entries := b.ListCurrent()
	require.Len(t, entries, 3)
	assert.Equal(t, fmgr.Entry{Index: 0, Name: "a.txt", Path: "/home/op/a.txt", IsDir: false}, entries[0])
	assert.Equal(t, fmgr.Entry{Index: 1, Name: "docs", Path: "/home/op/docs", IsDir: true}, entries[1])
	assert.Equal(t, 2, entries[2].Index)
}

func TestSetPath_MatchesGatewayListing(t *testing.T) {
	gw := newFixture(t)
	b, err := New(gw, "/home/op", nil)
	require.NoError(t, err)

	require.NoError(t, b.SetPath("/home/op/docs"))

	want, err := gw.ListEntries("/home/op/docs")
	require.NoError(t, err)
	assert.Equal(t, want, b.State().Children)
	assert.Equal(t, "/home/op/docs", b.Path())
}

func TestSetPath_FailureKeepsState(t *testing.T) {
	b, err := New(newFixture(t), "/home/op", nil)
	require.NoError(t, err)
	before := b.State()

	err = b.SetPath("/home/op/missing")
	assert.True(t, errors.Is(err, fmgr.ErrNotADirectory))
	assert.Equal(t, before, b.State())

	err = b.SetPath("/home/op/a.txt")
	assert.True(t, errors.Is(err, fmgr.ErrNotADirectory))
	assert.Equal(t, before, b.State())
}

func TestDescend(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		wantMoved bool
		wantErr   error
		wantPath  string
	}{
		{name: "directory", index: 1, wantMoved: true, wantPath: "/home/op/docs"},
		{name: "file", index: 0, wantMoved: false, wantPath: "/home/op"},
		{name: "negative", index: -1, wantErr: fmgr.ErrIndexOutOfRange, wantPath: "/home/op"},
		{name: "past end", index: 3, wantErr: fmgr.ErrIndexOutOfRange, wantPath: "/home/op"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(newFixture(t), "/home/op", nil)
			require.NoError(t, err)

			moved, err := b.Descend(tt.index)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantMoved, moved)
			assert.Equal(t, tt.wantPath, b.Path())
		})
	}
}

func TestAscend(t *testing.T) {
	b, err := New(newFixture(t), "/home/op/docs", nil)
	require.NoError(t, err)

	moved, err := b.Ascend()
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "/home/op", b.Path())
	assert.Equal(t, []string{"a.txt", "docs", "z.log"}, b.State().Children)
}

func TestAscend_AtRootIsNoOp(t *testing.T) {
	b, err := New(newFixture(t), "/", nil)
	require.NoError(t, err)
	before := b.State()

	moved, err := b.Ascend()
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, before, b.State())
}

func TestResolveAndName(t *testing.T) {
	b, err := New(newFixture(t), "/home/op", nil)
	require.NoError(t, err)

	p, ok := b.Resolve(2)
	assert.True(t, ok)
	assert.Equal(t, "/home/op/z.log", p)

	name, ok := b.Name(1)
	assert.True(t, ok)
	assert.Equal(t, "docs", name)

	_, ok = b.Resolve(5)
	assert.False(t, ok)
}

func TestRefresh_PicksUpChanges(t *testing.T) {
	gw := newFixture(t)
	b, err := New(gw, "/home/op", nil)
	require.NoError(t, err)

	require.NoError(t, gw.AddFile("/home/op/b.txt", "beta"))
	assert.Len(t, b.State().Children, 3)

	require.NoError(t, b.Refresh())
	assert.Equal(t, []string{"a.txt", "b.txt", "docs", "z.log"}, b.State().Children)
}

func TestState_ReturnsCopy(t *testing.T) {
	b, err := New(newFixture(t), "/home/op", nil)
	require.NoError(t, err)

	s := b.State()
	s.Children[0] = "mutated"
	assert.Equal(t, "a.txt", b.State().Children[0])
}
