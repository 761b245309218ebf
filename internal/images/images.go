// Package images parses tokenized hangman image assets.
//
// An asset is a text file split into frames by boundary lines. "@0", "@1", ...
// open the loss-progression frames in strictly increasing order, "@@" opens
// the victory frame, and "@@@" ends the asset. Lines before "@0" are a comment
// header and lines after "@@@" are ignored.
package images

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/hangman/internal/asset"
)

const (
	victoryToken = "@@"
	endToken     = "@@@"
)

var (
	// ErrMalformedAsset wraps every structural violation found while scanning.
	ErrMalformedAsset = errors.New("image asset was not formatted correctly")

	ErrTokenOrder        = errors.New("image tokens are in wrong order")
	ErrTokenAfterVictory = errors.New(`another token appeared after the "@@" token`)
	ErrMissingStart      = errors.New(`first image token was not "@0"`)
	ErrPrematureEnd      = errors.New(`"@@@" token appeared before the "@@" token`)
	ErrUnexpectedEOF     = errors.New(`asset ended before a "@@@" token was found`)

	// ErrIndexOutOfRange is returned for frame indices outside [0, Count()).
	ErrIndexOutOfRange = errors.New("frame index out of range")
)

// ImageSet is an immutable, file-backed sequence of frames. The last frame
// is the victory frame.
type ImageSet struct {
	frames []string
}

// Load reads and parses the image asset at path.
func Load(path string) (*ImageSet, error) {
	lines, err := asset.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return fromLines(lines)
}

// Parse reads an image asset from r.
func Parse(r io.Reader) (*ImageSet, error) {
	lines, err := asset.ScanLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image asset: %w", err)
	}
	return fromLines(lines)
}

func fromLines(lines []string) (*ImageSet, error) {
	count, err := scan(lines)
	if err != nil {
		return nil, err
	}
	frames := build(lines, count)
	if len(frames) != count {
		return nil, fmt.Errorf("%w: expected %d frames, built %d", ErrMalformedAsset, count, len(frames))
	}
	return &ImageSet{frames: frames}, nil
}

// scan validates token order and returns the number of frames.
func scan(lines []string) (int, error) {
	next := 0
	victory := false
	for i, line := range lines {
		lineNo := i + 1
		switch {
		case line == endToken:
			if victory {
				return next + 1, nil
			}
			if next == 0 {
				return 0, nil
			}
			return 0, malformed(lineNo, ErrPrematureEnd)
		case line == victoryToken:
			if victory {
				return 0, malformed(lineNo, ErrTokenAfterVictory)
			}
			if next == 0 {
				return 0, malformed(lineNo, ErrMissingStart)
			}
			victory = true
		case isFrameToken(line):
			if victory {
				return 0, malformed(lineNo, ErrTokenAfterVictory)
			}
			if line != "@"+strconv.Itoa(next) {
				if next == 0 {
					return 0, malformed(lineNo, ErrMissingStart)
				}
				return 0, malformed(lineNo, ErrTokenOrder)
			}
			next++
		}
	}
	return 0, fmt.Errorf("%w: %w", ErrMalformedAsset, ErrUnexpectedEOF)
}

// build collects frame bodies from lines that already passed scan.
func build(lines []string, count int) []string {
	frames := make([]string, 0, count)
	if count == 0 {
		return frames
	}
	var b strings.Builder
	open := false
	for _, line := range lines {
		if line == endToken {
			break
		}
		if line == victoryToken || isFrameToken(line) {
			if open {
				frames = append(frames, b.String())
				b.Reset()
			}
			open = true
			continue
		}
		if !open {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if open {
		frames = append(frames, b.String())
	}
	return frames
}

func isFrameToken(line string) bool {
	if len(line) < 2 || line[0] != '@' {
		return false
	}
	_, err := strconv.Atoi(line[1:])
	return err == nil
}

func malformed(lineNo int, err error) error {
	return fmt.Errorf("%w: line %d: %w", ErrMalformedAsset, lineNo, err)
}

// Count returns the number of frames including the victory frame.
func (s *ImageSet) Count() int {
	return len(s.frames)
}

// Frame returns the frame at index.
func (s *ImageSet) Frame(index int) (string, error) {
	return frameAt(s.frames, index)
}

// VictoryFrame returns the last frame.
func (s *ImageSet) VictoryFrame() (string, error) {
	return frameAt(s.frames, len(s.frames)-1)
}

func frameAt(frames []string, index int) (string, error) {
	if index < 0 || index >= len(frames) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(frames))
	}
	return frames[index], nil
}
