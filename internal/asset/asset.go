// Package asset reads flat-file game assets.
package asset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNotFound is returned when an asset location cannot be opened.
	ErrNotFound = errors.New("asset not found")
	// ErrRead is returned when an opened asset cannot be read to the end.
	ErrRead = errors.New("failed to read asset")
)

const (
	maxLineSize   = 1 << 20
	byteOrderMark = "\ufeff"
)

// ReadLines reads every line of the file at path. The file is closed before
// ReadLines returns.
func ReadLines(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrNotFound)
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if info, err := file.Stat(); err == nil && info.IsDir() {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("path", path).Msg("failed to close asset")
		}
	}()

	lines, err := ScanLines(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	return lines, nil
}

// ScanLines splits r into lines without their terminators. A leading UTF-8
// byte order mark is dropped.
func ScanLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
