package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Stdio as a path means stdin for reads and stdout for writes.
const Stdio = "-"

// Storage reads CLI inputs and writes CLI outputs.
type Storage struct {
	Stdin  io.Reader
	Stdout io.Writer
}

// New returns a Storage bound to the process stdin and stdout.
func New() *Storage {
	return &Storage{Stdin: os.Stdin, Stdout: os.Stdout}
}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// SaveFile writes content to filePath, or to stdout when filePath is empty
// or Stdio.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if filePath == "" || filePath == Stdio {
		if _, err := s.Stdout.Write(content); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// ReadFile reads filePath, or stdin for Stdio.
func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	if filePath == Stdio {
		data, err := io.ReadAll(s.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// DecodeJSON reads filePath and decodes it into v.
func (s *Storage) DecodeJSON(filePath string, v any) error {
	data, err := s.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error decoding %s: %w", filePath, err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

func (s *Storage) HasFile(fn string) bool {
	return fileExists(fn)
}

// GetFileStats returns metadata about a file using os.Stat (no I/O overhead).
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
