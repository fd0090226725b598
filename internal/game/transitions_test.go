package game

import (
	"testing"

	"github.com/KyleAMathews/group-question-game/internal/models"
)

func TestCanTransition(t *testing.T) {
	statuses := []string{
		models.SessionStatusLobby,
		models.SessionStatusActive,
		models.SessionStatusRevealing,
		models.SessionStatusEnded,
	}

	legal := map[[2]string]bool{
		{models.SessionStatusLobby, models.SessionStatusActive}:     true,
		{models.SessionStatusLobby, models.SessionStatusEnded}:      true,
		{models.SessionStatusActive, models.SessionStatusRevealing}: true,
		{models.SessionStatusActive, models.SessionStatusEnded}:     true,
		{models.SessionStatusRevealing, models.SessionStatusActive}: true,
		{models.SessionStatusRevealing, models.SessionStatusEnded}:  true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := legal[[2]string{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransitionEndedIsTerminal(t *testing.T) {
	for _, to := range []string{
		models.SessionStatusLobby,
		models.SessionStatusActive,
		models.SessionStatusRevealing,
		models.SessionStatusEnded,
	} {
		if CanTransition(models.SessionStatusEnded, to) {
			t.Errorf("ended session must not transition to %q", to)
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	if CanTransition("paused", models.SessionStatusActive) {
		t.Error("unknown status must have no legal transitions")
	}
	if CanTransition(models.SessionStatusLobby, "paused") {
		t.Error("transition to unknown status must be illegal")
	}
}
