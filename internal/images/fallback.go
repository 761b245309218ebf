package images

// Static is a hardcoded frame sequence. Like ImageSet, the last frame is the
// victory frame.
type Static []string

// Fallback returns the built-in gallows used when no image asset is available.
func Fallback() Static {
	return Static(fallbackFrames)
}

// Count returns the number of frames including the victory frame.
func (s Static) Count() int {
	return len(s)
}

// Frame returns the frame at index.
func (s Static) Frame(index int) (string, error) {
	return frameAt(s, index)
}

// VictoryFrame returns the last frame.
func (s Static) VictoryFrame() (string, error) {
	return frameAt(s, len(s)-1)
}

var fallbackFrames = []string{
	`  +---+
  |   |
      |
      |
      |
      |
=========
`,
	`  +---+
  |   |
  O   |
      |
      |
      |
=========
`,
	`  +---+
  |   |
  O   |
  |   |
      |
      |
=========
`,
	`  +---+
  |   |
  O   |
 /|   |
      |
      |
=========
`,
	`  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========
`,
	`  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========
`,
	`  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========
`,
	`  +---+
  |   |
      |
 \O/  |
  |   |
 / \  |
=========
`,
}
