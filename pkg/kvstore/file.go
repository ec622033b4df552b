package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File is the default Store backend: a single JSON document on disk holding
// every key. It reads the whole document on each access and rewrites it
// atomically on mutation, which is plenty for the tens-to-hundreds of records
// this tool manages.
type File struct {
	path string
}

// NewFile creates a file-backed store at the given path. The file is created
// lazily on first write.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("file store path must not be empty")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &File{path: path}, nil
}

func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	doc, err := f.load()
	if err != nil {
		return nil, err
	}

	value, ok := doc[key]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

func (f *File) Set(ctx context.Context, key string, value []byte) error {
	doc, err := f.load()
	if err != nil {
		return err
	}

	if !json.Valid(value) {
		return fmt.Errorf("value for key %q is not valid JSON", key)
	}

	doc[key] = json.RawMessage(value)
	return f.save(doc)
}

func (f *File) Delete(ctx context.Context, key string) error {
	doc, err := f.load()
	if err != nil {
		return err
	}

	delete(doc, key)
	return f.save(doc)
}

func (f *File) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return make(map[string]json.RawMessage), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	doc := make(map[string]json.RawMessage)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse data file %s: %w", f.path, err)
		}
	}
	return doc, nil
}

// save writes via a temp file and rename so a crash mid-write cannot leave a
// truncated document behind
func (f *File) save(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}

	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
