// Package store persists shell state as YAML documents under string keys.
//
// Only plain values are stored: grid snapshots and run-length vectors.
// Views are rebuilt from them after loading.
package store

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/hnimtadd/knitchart/chart/input"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Load for a key that was never saved.
var ErrNotFound = errors.New("store: key not found")

// Store is a key-value store of documents.
type Store interface {
	// Load decodes the document under key into v and validates it.
	Load(key string, v any) error
	Save(key string, v any) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

var (
	keyPattern    = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

// KeyError reports a key that cannot name a document.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("store: invalid key %q", e.Key)
}

func checkKey(key string) error {
	if !keyPattern.MatchString(key) {
		return &KeyError{Key: key}
	}
	return nil
}

// ParseError reports a stored document that cannot be decoded or that
// fails validation.
type ParseError struct {
	Key  string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("store: parse %s:%d: %v", e.Key, e.Line, e.Err)
	}
	return fmt.Sprintf("store: parse %s: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, err := fmt.Sscanf(matches[1], "%d", &line); err != nil {
		return 0
	}
	return line
}

func decode(key string, data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return &ParseError{Key: key, Line: extractLine(err), Err: err}
	}
	if err := input.Validator().Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			// Not a struct; nothing to validate.
			return nil
		}
		return &ParseError{Key: key, Err: err}
	}
	return nil
}

func encode(key string, v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("store: encode %s: %w", key, err)
	}
	return data, nil
}

// Memory keeps documents in memory. It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Load(key string, v any) error {
	if err := checkKey(key); err != nil {
		return err
	}
	m.mu.RLock()
	data, ok := m.docs[key]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return decode(key, data, v)
}

func (m *Memory) Save(key string, v any) error {
	if err := checkKey(key); err != nil {
		return err
	}
	data, err := encode(key, v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = data
	return nil
}

func (m *Memory) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, key)
	return nil
}
