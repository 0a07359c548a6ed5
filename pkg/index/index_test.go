// TEST TYPE: Unit Test

package index_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shotlink/shotlink/pkg/errors"
	"github.com/shotlink/shotlink/pkg/filesystem"
	"github.com/shotlink/shotlink/pkg/index"
	"github.com/shotlink/shotlink/pkg/types"
)

func memFS(t *testing.T, files ...string) types.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	for _, file := range files {
		require.NoError(t, afero.WriteFile(mem, file, []byte("x"), 0644))
	}
	return filesystem.NewAferoFS(mem)
}

func TestBuild(t *testing.T) {
	defaultPri := index.MustPriority(index.DefaultPriority)

	tests := []struct {
		name     string
		files    []string
		priority index.Priority
		want     index.Index
	}{
		{
			name:     "best rank wins regardless of discovery order",
			files:    []string{"/ref/a.JPG", "/ref/sub/a.NEF"},
			priority: defaultPri,
			want: index.Index{
				"a": {Path: "/ref/sub/a.NEF", Ext: "NEF", Rank: 0},
			},
		},
		{
			name:     "lower rank never replaced by higher",
			files:    []string{"/ref/a.NEF", "/ref/sub/a.JPG"},
			priority: defaultPri,
			want: index.Index{
				"a": {Path: "/ref/a.NEF", Ext: "NEF", Rank: 0},
			},
		},
		{
			name:     "unranked extensions are excluded",
			files:    []string{"/ref/a.PNG", "/ref/b.txt", "/ref/c"},
			priority: defaultPri,
			want:     index.Index{},
		},
		{
			name:     "extension matching is case-insensitive",
			files:    []string{"/ref/a.nef"},
			priority: defaultPri,
			want: index.Index{
				"a": {Path: "/ref/a.nef", Ext: "NEF", Rank: 0},
			},
		},
		{
			name:     "equal rank resolved by lexical path order",
			files:    []string{"/ref/z/a.NEF", "/ref/b/a.NEF"},
			priority: defaultPri,
			want: index.Index{
				"a": {Path: "/ref/b/a.NEF", Ext: "NEF", Rank: 0},
			},
		},
		{
			name:     "custom priority flips the selection",
			files:    []string{"/ref/a.NEF", "/ref/a.JPG"},
			priority: index.MustPriority([]string{"JPG", "NEF"}),
			want: index.Index{
				"a": {Path: "/ref/a.JPG", Ext: "JPG", Rank: 0},
			},
		},
		{
			name:     "dotfiles have no base and are excluded",
			files:    []string{"/ref/.NEF", "/ref/a.NEF"},
			priority: defaultPri,
			want: index.Index{
				"a": {Path: "/ref/a.NEF", Ext: "NEF", Rank: 0},
			},
		},
		{
			name:     "independent base names coexist",
			files:    []string{"/ref/a.NEF", "/ref/b.JPG", "/ref/c.TIFF"},
			priority: defaultPri,
			want: index.Index{
				"a": {Path: "/ref/a.NEF", Ext: "NEF", Rank: 0},
				"b": {Path: "/ref/b.JPG", Ext: "JPG", Rank: 3},
				"c": {Path: "/ref/c.TIFF", Ext: "TIFF", Rank: 2},
			},
		},
		{
			name:     "multi-dot names split on the final dot",
			files:    []string{"/ref/shoot.day1.NEF", "/ref/shoot.day1.JPG"},
			priority: defaultPri,
			want: index.Index{
				"shoot.day1": {Path: "/ref/shoot.day1.NEF", Ext: "NEF", Rank: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := memFS(t, tt.files...)

			got, err := index.Build(fsys, "/ref", tt.priority)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildMissingRoot(t *testing.T) {
	fsys := memFS(t, "/elsewhere/a.NEF")

	_, err := index.Build(fsys, "/ref", index.MustPriority(index.DefaultPriority))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestBaseNames(t *testing.T) {
	fsys := memFS(t, "/ref/c.NEF", "/ref/a.NEF", "/ref/b.NEF")

	idx, err := index.Build(fsys, "/ref", index.MustPriority(index.DefaultPriority))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, idx.BaseNames())
}
