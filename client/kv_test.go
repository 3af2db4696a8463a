package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")
	kv := NewFileKV(path)

	_, ok := kv.Get("missing")
	assert.False(t, ok)

	require.NoError(t, kv.Set("a", "1"))
	require.NoError(t, kv.Set("b", "2"))
	require.NoError(t, kv.Set("a", "3"))

	v, ok := kv.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	// 新实例读取同一文件，验证持久化
	reopened := NewFileKV(path)
	v, ok = reopened.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestFileKV_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	kv := NewFileKV(path)
	_, ok := kv.Get("a")
	assert.False(t, ok)

	// 损坏的文件在下一次写入时被重建
	require.NoError(t, kv.Set("a", "1"))
	v, ok := kv.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}
