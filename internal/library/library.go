// Package library manages a persistent store of named design documents
package library

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Library is a file-backed collection of saved designs
type Library struct {
	filePath string
	data     map[string]*Entry
	mu       sync.RWMutex
}

// Entry is one saved design
type Entry struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Design    json.RawMessage `json:"design"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// New opens the library at filePath, creating it on first save
func New(filePath string) (*Library, error) {
	l := &Library{
		filePath: filePath,
		data:     make(map[string]*Entry),
	}

	if err := l.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load design library: %w", err)
		}
	}

	return l, nil
}

// Save stores a design under a name, creating it or replacing its content.
// The entry's ID is stable across saves to the same name.
func (l *Library) Save(name string, doc json.RawMessage) (*Entry, error) {
	if name == "" {
		return nil, fmt.Errorf("design name is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, exists := l.data[name]
	if !exists {
		entry = &Entry{
			ID:   uuid.New().String(),
			Name: name,
		}
		l.data[name] = entry
	}

	entry.Design = append(json.RawMessage(nil), doc...)
	entry.UpdatedAt = time.Now().UTC()

	if err := l.save(); err != nil {
		return nil, err
	}

	entryCopy := *entry
	return &entryCopy, nil
}

// Get returns a saved design by ID
func (l *Library) Get(id string) *Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, entry := range l.data {
		if entry.ID == id {
			entryCopy := *entry
			return &entryCopy
		}
	}
	return nil
}

// GetByName returns a saved design by name
func (l *Library) GetByName(name string) *Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if entry, ok := l.data[name]; ok {
		entryCopy := *entry
		return &entryCopy
	}
	return nil
}

// Remove deletes a saved design by ID
func (l *Library) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for name, entry := range l.data {
		if entry.ID == id {
			delete(l.data, name)
			if err := l.save(); err != nil {
				// Entry is gone from memory; the file catches up on the next save
			}
			return true
		}
	}
	return false
}

// List returns all saved designs, sorted by name
func (l *Library) List() []*Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]*Entry, 0, len(l.data))
	for _, entry := range l.data {
		entryCopy := *entry
		result = append(result, &entryCopy)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func (l *Library) load() error {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, &l.data)
}

func (l *Library) save() error {
	data, err := json.MarshalIndent(l.data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(l.filePath, data, 0644)
}
