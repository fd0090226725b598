package game

import "math/rand"

// Draw selects a question id uniformly at random from the bank questions not
// yet used in the session. The second return value is false when every
// question has been used; callers decide whether that means "cannot start"
// or "time to end". Uses the shared math/rand source, which is safe for
// concurrent draws across sessions.
func Draw(bankQuestionIDs, usedIDs []uint) (uint, bool) {
	used := make(map[uint]bool, len(usedIDs))
	for _, id := range usedIDs {
		used[id] = true
	}

	remaining := make([]uint, 0, len(bankQuestionIDs))
	for _, id := range bankQuestionIDs {
		if !used[id] {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) == 0 {
		return 0, false
	}
	return remaining[rand.Intn(len(remaining))], true
}
