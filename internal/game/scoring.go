package game

import "github.com/KyleAMathews/group-question-game/internal/models"

// Score computes the points a submission earns.
//
// Single-choice: exactly one selected option that is in the correct set
// earns 1 point; anything else earns 0. Multi-choice: each selected correct
// option earns +1, each selected incorrect option -1, unselected options
// contribute nothing, so the total may be negative.
func Score(questionType string, correctIDs, selectedIDs []uint) int {
	correct := make(map[uint]bool, len(correctIDs))
	for _, id := range correctIDs {
		correct[id] = true
	}

	switch questionType {
	case models.QuestionTypeSingle:
		if len(selectedIDs) == 1 && correct[selectedIDs[0]] {
			return 1
		}
		return 0
	case models.QuestionTypeMulti:
		points := 0
		for _, id := range selectedIDs {
			if correct[id] {
				points++
			} else {
				points--
			}
		}
		return points
	}
	return 0
}

// FullyCorrect reports whether a submission counts as correct for round
// statistics: for single-choice the one selected option must be correct,
// for multi-choice the selection must match the correct set exactly.
func FullyCorrect(questionType string, correctIDs, selectedIDs []uint) bool {
	correct := make(map[uint]bool, len(correctIDs))
	for _, id := range correctIDs {
		correct[id] = true
	}

	switch questionType {
	case models.QuestionTypeSingle:
		return len(selectedIDs) == 1 && correct[selectedIDs[0]]
	case models.QuestionTypeMulti:
		selected := make(map[uint]bool, len(selectedIDs))
		for _, id := range selectedIDs {
			if !correct[id] {
				return false
			}
			selected[id] = true
		}
		return len(selected) == len(correct)
	}
	return false
}
