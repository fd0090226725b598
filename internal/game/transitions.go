// Package game holds the rules of a trivia session: the status transition
// table, question drawing, answer scoring, and winner resolution. Everything
// here is pure; persistence and coordination live in the services package.
package game

import "github.com/KyleAMathews/group-question-game/internal/models"

// transitions lists every legal status change. Ending a session is an
// ordinary row of the table: any non-terminal status may move to ended.
var transitions = map[string][]string{
	models.SessionStatusLobby:     {models.SessionStatusActive, models.SessionStatusEnded},
	models.SessionStatusActive:    {models.SessionStatusRevealing, models.SessionStatusEnded},
	models.SessionStatusRevealing: {models.SessionStatusActive, models.SessionStatusEnded},
	models.SessionStatusEnded:     nil,
}

// CanTransition reports whether a session may move between the two statuses.
// Unknown statuses have no legal transitions.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
