package fuzzy

import "math"

// maxBits is the longest pattern chunk a bitmask can hold.
const maxBits = 32

// matchOptions control how a pattern is scored against a text.
type matchOptions struct {
	threshold      float64
	location       int
	distance       int
	ignoreLocation bool
}

// score combines the error ratio and the distance from the expected
// location into a value between 0 (perfect) and 1.
func (o matchOptions) score(patternLen, errors, current, expected int) float64 {
	accuracy := float64(errors) / float64(patternLen)
	if o.ignoreLocation {
		return accuracy
	}

	proximity := abs(expected - current)
	if o.distance == 0 {
		if proximity != 0 {
			return 1
		}
		return accuracy
	}
	return accuracy + float64(proximity)/float64(o.distance)
}

type chunk struct {
	pattern  []rune
	alphabet map[rune]uint64
	start    int
}

// matcher scores texts against a single lowercased pattern.
type matcher struct {
	pattern string
	chunks  []chunk
	opts    matchOptions
}

func newMatcher(pattern string, opts matchOptions) *matcher {
	m := &matcher{pattern: pattern, opts: opts}

	runes := []rune(pattern)
	n := len(runes)
	if n == 0 {
		return m
	}
	if n <= maxBits {
		m.addChunk(runes, 0)
		return m
	}

	remainder := n % maxBits
	end := n - remainder
	for i := 0; i < end; i += maxBits {
		m.addChunk(runes[i:i+maxBits], i)
	}
	if remainder > 0 {
		m.addChunk(runes[n-maxBits:], n-maxBits)
	}
	return m
}

func (m *matcher) addChunk(pattern []rune, start int) {
	alphabet := make(map[rune]uint64, len(pattern))
	for i, r := range pattern {
		alphabet[r] |= 1 << (len(pattern) - i - 1)
	}
	m.chunks = append(m.chunks, chunk{pattern: pattern, alphabet: alphabet, start: start})
}

// match scores text, which must already be normalized the same way as the
// pattern. Long patterns average the score of their chunks.
func (m *matcher) match(text string, runes []rune) (bool, float64) {
	if text == m.pattern {
		return true, 0
	}

	var (
		matched bool
		total   float64
	)
	for _, c := range m.chunks {
		opts := m.opts
		opts.location += c.start
		ok, score := search(runes, c, opts)
		if ok {
			matched = true
		}
		total += score
	}
	if !matched {
		return false, 1
	}
	return true, total / float64(len(m.chunks))
}

// search runs the Bitap algorithm for one chunk, allowing an increasing
// number of errors until the score can no longer beat the threshold.
func search(text []rune, c chunk, o matchOptions) (bool, float64) {
	patternLen := len(c.pattern)
	textLen := len(text)
	expected := max(0, min(o.location, textLen))
	threshold := o.threshold

	// Exact occurrences tighten the threshold before the fuzzy pass.
	best := expected
	for {
		idx := indexFrom(text, c.pattern, best)
		if idx < 0 {
			break
		}
		threshold = math.Min(o.score(patternLen, 0, idx, expected), threshold)
		best = idx + patternLen
	}

	best = -1
	finalScore := 1.0
	binMax := patternLen + textLen
	mask := uint64(1) << (patternLen - 1)
	var last []uint64

	for i := range patternLen {
		// Search for how far from the expected location a match with i
		// errors can still land under the threshold.
		binMin, binMid := 0, binMax
		for binMin < binMid {
			if o.score(patternLen, i, expected+binMid, expected) <= threshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		binMax = binMid

		start := max(1, expected-binMid+1)
		finish := min(expected+binMid, textLen) + patternLen

		bits := make([]uint64, finish+2)
		bits[finish+1] = (1 << i) - 1

		for j := finish; j >= start; j-- {
			loc := j - 1
			var charMatch uint64
			if loc < textLen {
				charMatch = c.alphabet[text[loc]]
			}

			bits[j] = ((bits[j+1] << 1) | 1) & charMatch
			if i > 0 {
				bits[j] |= ((at(last, j+1) | at(last, j)) << 1) | 1 | at(last, j+1)
			}

			if bits[j]&mask != 0 {
				finalScore = o.score(patternLen, i, loc, expected)
				if finalScore <= threshold {
					threshold = finalScore
					best = loc
					if best <= expected {
						break
					}
					start = max(1, 2*expected-best)
				}
			}
		}

		if o.score(patternLen, i+1, expected, expected) > threshold {
			break
		}
		last = bits
	}

	return best >= 0, math.Max(0.001, finalScore)
}

func at(bits []uint64, i int) uint64 {
	if i < len(bits) {
		return bits[i]
	}
	return 0
}

func indexFrom(text, pattern []rune, from int) int {
	for i := from; i+len(pattern) <= len(text); i++ {
		if equalRunes(text[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}

func equalRunes(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
