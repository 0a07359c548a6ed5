// TEST TYPE: Unit Test

package list

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shotlink/shotlink/pkg/errors"
	"github.com/shotlink/shotlink/pkg/filesystem"
	"github.com/shotlink/shotlink/pkg/paths"
	"github.com/shotlink/shotlink/pkg/types"
)

const ratedSidecar = `<?xml version="1.0"?>
<x:xmpmeta xmlns:x="adobe:ns:meta/">
  <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
    <rdf:Description rdf:about=""
        xmlns:xmp="http://ns.adobe.com/xap/1.0/"
        xmp:Rating="4" xmp:Label="Blue"/>
  </rdf:RDF>
</x:xmpmeta>`

func setup(t *testing.T) {
	t.Helper()

	keys := []string{
		"SHOTLINK_SYNC_PRIORITY",
		"SHOTLINK_SYNC_RESERVED",
		"SHOTLINK_SYNC_SIDECAR_EXTENSION",
		"SHOTLINK_SYNC_SIDECAR_SOURCES",
	}
	for _, key := range keys {
		if value, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { _ = os.Setenv(key, value) })
		}
	}
	t.Setenv(paths.EnvConfigDir, t.TempDir())
}

func memFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}
	return filesystem.NewAferoFS(mem)
}

func refFS(t *testing.T) types.FS {
	t.Helper()

	return memFS(t, map[string]string{
		"/ref/a.NEF":     "raw",
		"/ref/a.JPG":     "jpeg",
		"/ref/a.xmp":     ratedSidecar,
		"/ref/b.JPG":     "jpeg",
		"/ref/sub/c.TIF": "tiff",
	})
}

func TestListResolvesOriginals(t *testing.T) {
	setup(t)

	result, err := List(ListOptions{ReferenceRoot: "/ref", FileSystem: refFS(t)})
	require.NoError(t, err)

	assert.Equal(t, "/ref", result.ReferenceRoot)
	require.Len(t, result.Items, 3)

	assert.Equal(t, Item{
		Base:    "a",
		Path:    "/ref/a.NEF",
		Ext:     "NEF",
		Rank:    0,
		Sidecar: "/ref/a.xmp",
	}, result.Items[0])
	assert.Equal(t, Item{Base: "b", Path: "/ref/b.JPG", Ext: "JPG", Rank: 3}, result.Items[1])
	assert.Equal(t, Item{Base: "c", Path: "/ref/sub/c.TIF", Ext: "TIF", Rank: 1}, result.Items[2])
}

func TestListSidecarMetadata(t *testing.T) {
	setup(t)

	result, err := List(ListOptions{
		ReferenceRoot: "/ref",
		Sidecars:      true,
		FileSystem:    refFS(t),
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 3)
	assert.Equal(t, "4", result.Items[0].Rating)
	assert.Equal(t, "Blue", result.Items[0].Label)
	assert.Empty(t, result.Items[1].Rating)
}

func TestListPriorityFlag(t *testing.T) {
	setup(t)

	result, err := List(ListOptions{
		ReferenceRoot: "/ref",
		Priority:      []string{"JPG"},
		FileSystem:    refFS(t),
	})
	require.NoError(t, err)

	// Only JPG is ranked now: a resolves to its JPG with no sidecar,
	// and the TIF-only base drops out.
	require.Len(t, result.Items, 2)
	assert.Equal(t, Item{Base: "a", Path: "/ref/a.JPG", Ext: "JPG", Rank: 0}, result.Items[0])
	assert.Equal(t, Item{Base: "b", Path: "/ref/b.JPG", Ext: "JPG", Rank: 0}, result.Items[1])
}

func TestListBrokenSidecarDoesNotFail(t *testing.T) {
	setup(t)

	fsys := memFS(t, map[string]string{
		"/ref/a.NEF": "raw",
		"/ref/a.xmp": "not xml at all",
	})

	result, err := List(ListOptions{
		ReferenceRoot: "/ref",
		Sidecars:      true,
		FileSystem:    fsys,
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "/ref/a.xmp", result.Items[0].Sidecar)
	assert.Empty(t, result.Items[0].Rating)
	assert.Empty(t, result.Items[0].Label)
}

func TestListMissingReferenceRoot(t *testing.T) {
	setup(t)

	_, err := List(ListOptions{
		ReferenceRoot: "/ref",
		FileSystem:    memFS(t, nil),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}
