package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// KV 客户端本地持久化存储抽象
// 离线缓存与管理 PIN 都通过它读写，测试中可替换为内存实现
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// FileKV 基于单个 JSON 文件的键值存储，作用域为当前客户端实例
type FileKV struct {
	path string
	mu   sync.Mutex
}

// NewFileKV 创建文件键值存储
func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

func (f *FileKV) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m := f.loadLocked()
	v, ok := m[key]
	return v, ok
}

func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	m := f.loadLocked()
	m[key] = value

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	// 先写临时文件再重命名，避免写一半损坏已有键
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".kv-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, f.path)
}

// loadLocked 读取全部键值，文件缺失或损坏按空处理
func (f *FileKV) loadLocked() map[string]string {
	m := map[string]string{}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return m
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]string{}
	}
	return m
}

// MemoryKV 内存键值存储，测试与一次性会话使用
type MemoryKV struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemoryKV 创建内存键值存储
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: map[string]string{}}
}

func (m *MemoryKV) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.m[key]
	return v, ok
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.m[key] = value
	return nil
}
