// Package assets handles shader source loading and caching.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/shapeview/internal/logger"
)

//go:embed shaders/*.vert shaders/*.frag
var embedded embed.FS

// Shader stage file extensions.
const (
	VertexExt   = ".vert"
	FragmentExt = ".frag"
)

// ErrNotFound is returned when no source holds the requested file.
var ErrNotFound = errors.New("asset not found")

type source struct {
	name string
	fsys fs.FS
}

// Manager loads files from an ordered list of file systems.
// Sources are searched in reverse order (last added = highest priority), so
// directories added with AddDir override the embedded shaders.
type Manager struct {
	sources []source
	cache   *Cache
	mu      sync.RWMutex
}

// NewManager creates a manager backed by the embedded shaders.
func NewManager() *Manager {
	m := &Manager{
		cache: NewCache(),
	}
	sub, err := fs.Sub(embedded, "shaders")
	if err != nil {
		panic(fmt.Sprintf("embedded shaders: %v", err))
	}
	m.AddFS("embedded", sub)
	return m
}

// AddFS adds a file system to the manager.
func (m *Manager) AddFS(name string, fsys fs.FS) {
	m.mu.Lock()
	m.sources = append(m.sources, source{name: name, fsys: fsys})
	m.mu.Unlock()
}

// AddDir adds a directory on disk. A missing directory is skipped.
func (m *Manager) AddDir(dir string) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Debug("asset directory not found, using embedded copies", zap.String("dir", dir))
		return
	}
	m.AddFS(dir, os.DirFS(dir))
}

// Load loads a file, checking the cache first.
func (m *Manager) Load(name string) ([]byte, error) {
	name = path.Clean(name)
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		src := m.sources[i]
		data, err := fs.ReadFile(src.fsys, name)
		if err == nil {
			logger.Debug("asset loaded", zap.String("file", name), zap.String("source", src.name))
			m.cache.Set(name, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s from %s: %w", name, src.name, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// LoadProgram loads the vertex and fragment sources of a named program,
// <name>.vert and <name>.frag.
func (m *Manager) LoadProgram(name string) (vertexSrc, fragmentSrc string, err error) {
	vert, err := m.Load(name + VertexExt)
	if err != nil {
		return "", "", err
	}
	frag, err := m.Load(name + FragmentExt)
	if err != nil {
		return "", "", err
	}
	return string(vert), string(frag), nil
}

// Stats returns cache hits and misses.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops all sources and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}
