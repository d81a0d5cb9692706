// Package chunker splits raw text into overlapping fixed-length windows
// suitable for embedding and retrieval.
package chunker

import "errors"

// DefaultMaxLen is the default window size in characters.
const DefaultMaxLen = 500

// ErrInvalidMaxLen is returned when the window size cannot produce a
// positive stride.
var ErrInvalidMaxLen = errors.New("chunker: max length must be at least 2")

// Split cuts text into windows of at most maxLen characters, each window
// starting stride = maxLen*3/4 characters after the previous one (25%
// overlap). Offsets are counted in runes so multi-byte text never splits
// inside a code point. The result is a pure function of its inputs; empty
// input yields no windows.
func Split(text string, maxLen int) ([]string, error) {
	if maxLen < 2 {
		return nil, ErrInvalidMaxLen
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil, nil
	}

	stride := maxLen * 3 / 4
	chunks := make([]string, 0, len(runes)/stride+1)
	for offset := 0; offset < len(runes); offset += stride {
		end := offset + maxLen
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[offset:end]))
	}
	return chunks, nil
}
