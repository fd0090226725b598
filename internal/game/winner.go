package game

import "github.com/KyleAMathews/group-question-game/internal/models"

// ResolveWinner picks the highest-scoring player. Ties break toward the
// earliest join, then the lowest id, so the result is deterministic
// regardless of storage order. Returns nil for an empty roster.
func ResolveWinner(players []models.Player) *models.Player {
	var best *models.Player
	for i := range players {
		p := &players[i]
		if best == nil || beats(p, best) {
			best = p
		}
	}
	return best
}

func beats(p, best *models.Player) bool {
	if p.Score != best.Score {
		return p.Score > best.Score
	}
	if !p.JoinedAt.Equal(best.JoinedAt) {
		return p.JoinedAt.Before(best.JoinedAt)
	}
	return p.ID < best.ID
}
