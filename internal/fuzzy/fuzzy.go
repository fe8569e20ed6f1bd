// Package fuzzy provides edit-distance suggestions for unrecognized switch
// names in error messages.
package fuzzy

// Suggest returns the candidate closest to input within maxDistance edits, or
// the empty string when nothing is close enough. Matching is case-sensitive
// because switch names are. Ties break lexicographically so suggestions are
// deterministic. Inputs shorter than two characters never get a suggestion;
// almost everything is one edit away from a single character.
func Suggest(input string, candidates []string, maxDistance int) string {
	if len(input) < 2 {
		return ""
	}

	best := ""
	bestDistance := maxDistance + 1
	for _, candidate := range candidates {
		d := distance(input, candidate, maxDistance)
		if d > maxDistance {
			continue
		}
		if d < bestDistance || (d == bestDistance && candidate < best) {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

// distance is the levenshtein edit distance between a and b, computed with
// two rows instead of the full matrix. Returns maxDistance+1 as soon as the
// result is known to exceed maxDistance.
func distance(a, b string, maxDistance int) int {
	if abs(len(a)-len(b)) > maxDistance {
		return maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		minInRow := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			curr[j] = min(
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
				prev[j-1]+cost, // substitution
			)
			if curr[j] < minInRow {
				minInRow = curr[j]
			}
		}

		// Every cell in later rows is at least the row minimum, so once that
		// exceeds the budget the final distance will too.
		if minInRow > maxDistance {
			return maxDistance + 1
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
