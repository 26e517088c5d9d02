package recurring

import (
	"slices"

	"github.com/wippyai/baseconv/digit"
)

// DefaultMinRepeat is the repeat threshold used by the conversion facade:
// a pattern qualifies once it occurs twice in total (one extra repetition
// beyond its first occurrence).
const DefaultMinRepeat = 1

// DefaultExpansion is the number of extra repetitions used when expanding
// recurring notation found in conversion input.
const DefaultExpansion = 5

// Find locates the minimal repeating suffix of frac, if any.
//
// The run is scanned in reverse: for each candidate period length p the
// first p reversed digits form the pattern, and contiguous non-overlapping
// repeats immediately following it are counted. The candidate with the
// highest rank (p times the extra repeat count) wins; ties keep the
// smallest period, since only a strictly greater rank replaces the best.
//
// minRepeat is the number of full extra repetitions required to qualify;
// minRepeat = 1 means the pattern must appear at least twice in total. If
// no candidate qualifies, Find returns frac unchanged with a nil pattern.
//
// The returned boundary is canonical: trailing prefix digits equal to the
// pattern's last digit are folded into the pattern by rotating it right,
// so the marker sits where the preceding kept digit first differs. For
// self-symmetric patterns this folds the whole matching tail.
func Find(frac []int, minRepeat int) (prefix, pattern []int) {
	if len(frac) == 0 {
		return frac, nil
	}

	rev := make([]int, len(frac))
	for i, d := range frac {
		rev[len(frac)-1-i] = d
	}

	bestPeriod, bestRepeats, bestRank := 0, 0, 0
	for p := 1; p <= len(rev); p++ {
		repeats := 0
		for off := p; off+p <= len(rev); off += p {
			if !slices.Equal(rev[off:off+p], rev[:p]) {
				break
			}
			repeats++
		}
		if rank := p * repeats; rank > bestRank {
			bestPeriod, bestRepeats, bestRank = p, repeats, rank
		}
	}

	if bestRepeats < minRepeat {
		return frac, nil
	}

	covered := bestPeriod * (bestRepeats + 1)
	prefix = slices.Clone(frac[:len(frac)-covered])
	pattern = slices.Clone(frac[len(frac)-covered : len(frac)-covered+bestPeriod])

	// Fold the prefix tail into the pattern to fix the marker boundary:
	// 1,4,6,3,1,4 + [6,3,1,4] becomes [] + [1,4,6,3].
	for len(prefix) > 0 && prefix[len(prefix)-1] == pattern[len(pattern)-1] {
		copy(pattern[1:], pattern[:len(pattern)-1])
		pattern[0] = prefix[len(prefix)-1]
		prefix = prefix[:len(prefix)-1]
	}

	return prefix, pattern
}

// Expand replaces recurring notation in seq with repeat extra literal
// copies of the enclosed pattern (repeat+1 occurrences in total) and drops
// the markers. Sequences without a RepeatStart marker are returned as a
// copy, unchanged.
func Expand(seq digit.Sequence, repeat int) digit.Sequence {
	start := slices.Index(seq, digit.RepeatStart)
	if start < 0 {
		return slices.Clone(seq)
	}

	pattern := seq[start+1:]
	if n := len(pattern); n > 0 && pattern[n-1] == digit.RepeatEnd {
		pattern = pattern[:n-1]
	}

	out := make(digit.Sequence, 0, start+(repeat+1)*len(pattern))
	out = append(out, seq[:start]...)
	for i := 0; i <= repeat; i++ {
		out = append(out, pattern...)
	}
	return out
}
