package buffers

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOpenListClose(t *testing.T) {
	r := NewRegistry()

	id1 := r.Open("/work/a.txt")
	id2 := r.Open("/work/b.txt")
	assert.NotEqual(t, id1, id2)

	bufs := r.ListOpenBuffers()
	require.Len(t, bufs, 2)
	assert.Equal(t, "/work/a.txt", bufs[0].Path)
	assert.Equal(t, "/work/b.txt", bufs[1].Path)

	r.Close(id1)
	assert.Len(t, r.ListOpenBuffers(), 1)
}

func TestRegistryRename(t *testing.T) {
	r := NewRegistry()
	id := r.Open("/work/a.txt")

	require.NoError(t, r.RenameBuffer(id, "/work/renamed.txt"))
	path, ok := r.PathOf(id)
	require.True(t, ok)
	assert.Equal(t, "/work/renamed.txt", path)
}

func TestRegistryRenameUnknownBuffer(t *testing.T) {
	r := NewRegistry()

	assert.Error(t, r.RenameBuffer(42, "/nowhere"))
}

func TestRegistryConcurrentUse(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := r.Open(fmt.Sprintf("/work/f%d.txt", i))
			_ = r.RenameBuffer(id, fmt.Sprintf("/moved/f%d.txt", i))
		}(i)
	}
	wg.Wait()

	assert.Len(t, r.ListOpenBuffers(), 32)
}
