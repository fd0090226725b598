package game

import (
	"testing"

	"github.com/KyleAMathews/group-question-game/internal/models"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		qType    string
		correct  []uint
		selected []uint
		want     int
	}{
		{"single correct", models.QuestionTypeSingle, []uint{1}, []uint{1}, 1},
		{"single wrong", models.QuestionTypeSingle, []uint{1}, []uint{2}, 0},
		{"single nothing selected", models.QuestionTypeSingle, []uint{1}, nil, 0},
		{"single multiple selected never scores", models.QuestionTypeSingle, []uint{1}, []uint{1, 2}, 0},
		{"single with two correct options", models.QuestionTypeSingle, []uint{1, 2}, []uint{2}, 1},
		{"multi exact match", models.QuestionTypeMulti, []uint{1, 2}, []uint{1, 2}, 2},
		{"multi one right one wrong cancels", models.QuestionTypeMulti, []uint{1, 2}, []uint{1, 3}, 0},
		{"multi only wrong goes negative", models.QuestionTypeMulti, []uint{1, 2}, []uint{3}, -1},
		{"multi nothing selected", models.QuestionTypeMulti, []uint{1, 2}, nil, 0},
		{"multi everything selected", models.QuestionTypeMulti, []uint{1, 2}, []uint{1, 2, 3, 4}, 0},
		{"multi partial credit", models.QuestionTypeMulti, []uint{1, 2, 3}, []uint{1, 2}, 2},
		{"unknown type scores zero", "ordering", []uint{1}, []uint{1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.qType, tt.correct, tt.selected); got != tt.want {
				t.Errorf("Score(%s, %v, %v) = %d, want %d", tt.qType, tt.correct, tt.selected, got, tt.want)
			}
		})
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		if got := Score(models.QuestionTypeMulti, []uint{1, 2}, []uint{2, 1}); got != 2 {
			t.Fatalf("Score changed across calls: got %d, want 2", got)
		}
	}
}

func TestFullyCorrect(t *testing.T) {
	tests := []struct {
		name     string
		qType    string
		correct  []uint
		selected []uint
		want     bool
	}{
		{"single right option", models.QuestionTypeSingle, []uint{1}, []uint{1}, true},
		{"single wrong option", models.QuestionTypeSingle, []uint{1}, []uint{2}, false},
		{"single over-selected", models.QuestionTypeSingle, []uint{1}, []uint{1, 2}, false},
		{"multi exact set", models.QuestionTypeMulti, []uint{1, 2}, []uint{2, 1}, true},
		{"multi missing one", models.QuestionTypeMulti, []uint{1, 2}, []uint{1}, false},
		{"multi extra wrong", models.QuestionTypeMulti, []uint{1, 2}, []uint{1, 2, 3}, false},
		{"multi duplicate selection is not a set match", models.QuestionTypeMulti, []uint{1, 2}, []uint{1, 1}, false},
		{"multi empty", models.QuestionTypeMulti, []uint{1, 2}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FullyCorrect(tt.qType, tt.correct, tt.selected); got != tt.want {
				t.Errorf("FullyCorrect(%s, %v, %v) = %v, want %v", tt.qType, tt.correct, tt.selected, got, tt.want)
			}
		})
	}
}
