// Package pkg provides utilities shared by the sweep commands.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrClosed is returned by operations on a closed FileSpill.
var ErrClosed = errors.New("filespill closed")

// FileSpill is a generic interface for spilling items of type T to disk.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	Close() error
}

// Option configures a FileSpill.
type Option func(*spillConfig)

type spillConfig struct {
	dir  string
	keep bool
}

// WithDir sets the directory the spill file is created in.
func WithDir(dir string) Option {
	return func(c *spillConfig) {
		c.dir = dir
	}
}

// WithKeep keeps the spill file on disk after Close.
func WithKeep() Option {
	return func(c *spillConfig) {
		c.keep = true
	}
}

type fileSpillImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	keep    bool
	mu      sync.Mutex
	length  uint64
}

// Append implements FileSpill.
func (f *fileSpillImpl[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return ErrClosed
	}

	if err := f.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	f.length++
	slog.Debug("appended item", "path", f.path, "index", f.length-1)

	return nil
}

// Path implements FileSpill.
func (f *fileSpillImpl[T]) Path() string {
	return f.path
}

// AppendBatch implements FileSpill.
func (f *fileSpillImpl[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := f.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements FileSpill. The file is removed unless the spill was
// created WithKeep. Closing twice is a no-op.
func (f *fileSpillImpl[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}

	if err := f.file.Close(); err != nil {
		slog.Error("failed to close file", "path", f.path, "error", err)
		return err
	}

	f.file = nil

	if !f.keep {
		if err := os.Remove(f.path); err != nil {
			slog.Error("failed to remove file", "path", f.path, "error", err)
			return fmt.Errorf("failed to remove file: %w", err)
		}
	}

	slog.Debug("closed filespill", "path", f.path, "length", f.length, "kept", f.keep)

	return nil
}

// Get implements FileSpill.
func (f *fileSpillImpl[T]) Get(index uint64) (T, error) {
	var zero T

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return zero, ErrClosed
	}

	if index >= f.length {
		slog.Warn("get index out of bounds", "path", f.path, "index", index, "length", f.length)

		return zero, fmt.Errorf("index %d out of bounds (length %d)", index, f.length)
	}

	var item T

	err := f.decode(func(i uint64, decoded T) (bool, error) {
		item = decoded
		return i == index, nil
	})
	if err != nil {
		return zero, err
	}

	slog.Debug("got item", "path", f.path, "index", index)

	return item, nil
}

// Len implements FileSpill.
func (f *fileSpillImpl[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Range implements FileSpill.
func (f *fileSpillImpl[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return ErrClosed
	}

	err := f.decode(func(i uint64, item T) (bool, error) {
		if err := fn(i, item); err != nil {
			slog.Warn("range callback error", "path", f.path, "index", i, "error", err)
			return true, err
		}

		return false, nil
	})
	if err != nil {
		return err
	}

	slog.Debug("range completed", "path", f.path, "count", f.length)

	return nil
}

// decode reads items from the start of the file until fn reports done or
// every appended item was read. The caller holds f.mu.
func (f *fileSpillImpl[T]) decode(fn func(index uint64, item T) (bool, error)) error {
	file, err := os.Open(f.path)
	if err != nil {
		slog.Error("failed to open file", "path", f.path, "error", err)
		return fmt.Errorf("failed to open file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", f.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range f.length {
		// gob leaves zero-valued fields untouched, so every item needs a fresh value.
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode item", "path", f.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		done, err := fn(i, item)
		if err != nil {
			return err
		}

		if done {
			return nil
		}
	}

	return nil
}

// NewFileSpill creates a new FileSpill for items of type T. The file is
// created in the system temp directory unless WithDir is given.
func NewFileSpill[T any](opts ...Option) (FileSpill[T], error) {
	cfg := spillConfig{dir: filepath.Join(os.TempDir(), "sweep")}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := os.MkdirAll(cfg.dir, 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", cfg.dir, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	file, err := os.CreateTemp(cfg.dir, "spill-*.gob")
	if err != nil {
		slog.Error("failed to create spill file", "path", cfg.dir, "error", err)
		return nil, fmt.Errorf("failed to create spill file: %w", err)
	}

	slog.Debug("created filespill", "path", file.Name(), "keep", cfg.keep)

	return &fileSpillImpl[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
		keep:    cfg.keep,
	}, nil
}
