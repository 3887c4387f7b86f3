package game

import "slices"

// scoreMembership classifies one submitted cell by direct comparison and
// simple membership. It does no frequency accounting: with target "hello"
// every "l" in a guess is at least present.
func scoreMembership(target []string, letter string, col int) Classification {
	if letter == target[col] {
		return Correct
	}
	if slices.Contains(target, letter) {
		return Present
	}
	return Absent
}

// scoreFrequency implements the two‑pass scoring over a whole row.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (unmatched) target letters.
//
// Pass 2:
//   - For each unmatched guess letter: if a count remains, mark Present and
//     decrement; otherwise mark Absent.
func scoreFrequency(target, guess []string) []Classification {
	n := len(target)
	res := make([]Classification, n)
	counts := make(map[string]int, n)

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = Correct
		} else {
			counts[target[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == Correct {
			continue
		}
		if counts[guess[i]] > 0 {
			res[i] = Present
			counts[guess[i]]--
		} else {
			res[i] = Absent
		}
	}
	return res
}
