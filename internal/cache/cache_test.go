package cache

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestPutGet(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	key := Key([]byte("class A {}"), "constructor")
	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)

	want := &Entry{Code: "class A {}\n", Changed: true, Converted: []string{"a", "b"}, Warnings: 1}
	require.NoError(t, c.Put(key, want))

	got, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want.Code, got.Code)
	assert.Equal(t, want.Converted, got.Converted)
	assert.True(t, got.Changed)
	assert.Equal(t, 1, got.Warnings)
	assert.Equal(t, schemaVersion, got.Schema)
}

func TestKey(t *testing.T) {
	content := []byte("x")

	assert.Equal(t, Key(content, "constructor"), Key(content, "constructor"))
	assert.NotEqual(t, Key(content, "constructor"), Key(content, "callsite"))
	assert.NotEqual(t, Key(content, "a", "bc"), Key(content, "ab", "c"))
	assert.NotEqual(t, Key(content), Key([]byte("y")))
	assert.Len(t, Key(content).String(), 64)
}

func TestSchemaMismatchIsAMiss(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	key := Key([]byte("old"))

	data, err := msgpack.Marshal(&Entry{Schema: schemaVersion + 1, Code: "stale"})
	require.NoError(t, err)
	p := c.pathFor(key)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o644))

	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorruptEntry(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	key := Key([]byte("bad"))

	p := c.pathFor(key)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte{0xc1}, 0o644))

	_, _, err = c.Get(key)
	assert.Error(t, err)
}

func TestNilCache(t *testing.T) {
	var c *Cache
	require.NoError(t, c.Put(Key(nil), &Entry{}))
	_, ok, err := c.Get(Key(nil))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConcurrentUse(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := Key([]byte("same"))
			assert.NoError(t, c.Put(key, &Entry{Code: "same"}))
			_, _, err := c.Get(key)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestClear(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	key := Key([]byte("x"))
	require.NoError(t, c.Put(key, &Entry{Code: "x"}))

	require.NoError(t, c.Clear())
	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = os.Stat(c.Dir())
	assert.NoError(t, err)
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "autobind"), dir)
}
