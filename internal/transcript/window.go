package transcript

import (
	"iter"
	"unicode/utf8"
)

// MaxWindowSize is the largest span, in characters, sent to the sentiment service at once
const MaxWindowSize = 5000

// WindowCount returns ceil(len(body)/size), counting characters rather than bytes
func WindowCount(body string, size int) int {
	if size <= 0 {
		size = MaxWindowSize
	}
	n := utf8.RuneCountInString(body)
	return (n + size - 1) / size
}

// Windows yields consecutive, non-overlapping slices of body of at most size characters,
// keyed by their 0-based index. Concatenating the slices in order gives back body.
// The sequence can be ranged over more than once.
func Windows(body string, size int) iter.Seq2[int, string] {
	if size <= 0 {
		size = MaxWindowSize
	}
	return func(yield func(int, string) bool) {
		start, runes, idx := 0, 0, 0
		for i := range body {
			if runes == size {
				if !yield(idx, body[start:i]) {
					return
				}
				idx++
				start, runes = i, 0
			}
			runes++
		}
		if runes > 0 {
			yield(idx, body[start:])
		}
	}
}
