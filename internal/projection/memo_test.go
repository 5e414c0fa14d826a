package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemo(t *testing.T) {
	memo, err := NewMemo[[]TableRow](16)
	require.NoError(t, err)

	calls := 0
	compute := func() []TableRow {
		calls++
		return []TableRow{{EntityID: "s1"}}
	}

	key := MemoKey{WorkspaceID: "ws1", View: "sources", Generation: 1}
	first := memo.Get(key, compute)
	second := memo.Get(key, compute)
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)

	t.Run("Different entity is a miss", func(t *testing.T) {
		other := key
		other.EntityID = "s2"
		memo.Get(other, compute)
		assert.Equal(t, 2, calls)
	})

	t.Run("New generation is a miss", func(t *testing.T) {
		next := key
		next.Generation = 2
		memo.Get(next, compute)
		assert.Equal(t, 3, calls)
	})

	t.Run("PurgeWorkspace only drops that workspace", func(t *testing.T) {
		memo.Get(MemoKey{WorkspaceID: "ws2", View: "sources"}, compute)
		require.Equal(t, 4, memo.Len())

		assert.Equal(t, 3, memo.PurgeWorkspace("ws1"))
		assert.Equal(t, 1, memo.Len())
	})

	_, err = NewMemo[int](0)
	assert.Error(t, err)
}

func TestCache(t *testing.T) {
	cache, err := NewCache(8)
	require.NoError(t, err)

	key := MemoKey{WorkspaceID: "ws1", View: "sources", Generation: 1}
	cache.Tables.Get(key, func() []TableRow { return nil })
	cache.Options.Get(key, func() []DropdownOption { return nil })
	cache.Connections.Get(MemoKey{WorkspaceID: "ws1", View: "source-connections", EntityID: "s1", Generation: 1},
		func() []Connection { return nil })
	cache.Connections.Get(MemoKey{WorkspaceID: "ws2", View: "source-connections", EntityID: "s1", Generation: 1},
		func() []Connection { return nil })

	assert.Equal(t, 3, cache.PurgeWorkspace("ws1"))
	assert.Equal(t, 1, cache.Connections.Len())

	_, err = NewCache(-1)
	assert.Error(t, err)
}
