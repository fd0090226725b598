package services

import (
	"testing"

	"github.com/KyleAMathews/group-question-game/internal/apperr"
	"github.com/KyleAMathews/group-question-game/internal/models"

	"gorm.io/gorm"
)

type gameFixture struct {
	sessions  *SessionService
	players   *PlayerService
	answers   *AnswerService
	adminID   uint
	bankID    uint
	sessionID uint
	seats     []*JoinResult
}

func startedGame(t *testing.T, db *gorm.DB, slug string, questions int, names ...string) *gameFixture {
	t.Helper()
	admin := seedAdmin(t, db, slug+"-admin")
	bank := seedBank(t, db, questions)
	return startedGameWithBank(t, db, slug, admin.ID, bank.ID, names...)
}

func startedGameWithBank(t *testing.T, db *gorm.DB, slug string, adminID, bankID uint, names ...string) *gameFixture {
	t.Helper()
	f := &gameFixture{
		sessions: NewSessionService(db),
		players:  NewPlayerService(db),
		answers:  NewAnswerService(db),
		adminID:  adminID,
		bankID:   bankID,
	}
	state, err := f.sessions.CreateSession(adminID, bankID, slug, 30)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	f.sessionID = state.ID

	for _, name := range names {
		seat, err := f.players.Join(slug, name, "")
		if err != nil {
			t.Fatalf("Join %s: %v", name, err)
		}
		f.seats = append(f.seats, seat)
	}

	if _, err := f.sessions.StartGame(f.sessionID, adminID); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	return f
}

func TestSubmitSingleChoiceScoring(t *testing.T) {
	db := testDB(t)
	f := startedGame(t, db, "single-scoring", 1, "Bob", "Carol")
	qid := currentQuestion(t, db, f.sessionID)
	correct := optionIDs(t, db, qid, true)
	wrong := optionIDs(t, db, qid, false)

	res, err := f.answers.Submit(f.seats[0].Player.PublicID, f.sessionID, qid, correct[:1])
	if err != nil {
		t.Fatalf("Submit correct: %v", err)
	}
	if res.Points != 1 {
		t.Errorf("points = %d, want 1", res.Points)
	}
	if res.TotalScore != 1 {
		t.Errorf("total = %d, want 1", res.TotalScore)
	}
	if !res.Response.IsCorrect {
		t.Error("response should be marked correct")
	}
	if res.SyncToken == "" {
		t.Error("expected a sync token")
	}

	res, err = f.answers.Submit(f.seats[1].Player.PublicID, f.sessionID, qid, wrong[:1])
	if err != nil {
		t.Fatalf("Submit wrong: %v", err)
	}
	if res.Points != 0 {
		t.Errorf("points = %d, want 0", res.Points)
	}
	if res.Response.IsCorrect {
		t.Error("wrong answer marked correct")
	}
}

func TestSubmitMultiSelectScoring(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "multi-admin")
	bank := seedBank(t, db, 0)
	q := seedMultiQuestion(t, db, bank.ID)
	f := startedGameWithBank(t, db, "multi-scoring", admin.ID, bank.ID, "All", "Mixed", "Bad")

	qid := currentQuestion(t, db, f.sessionID)
	if qid != q.ID {
		t.Fatalf("current question = %d, want the seeded multi question %d", qid, q.ID)
	}
	correct := optionIDs(t, db, qid, true)
	wrong := optionIDs(t, db, qid, false)

	cases := []struct {
		seat       int
		selection  []uint
		points     int
		allCorrect bool
	}{
		{0, correct, 2, true},
		{1, []uint{correct[0], wrong[0]}, 0, false},
		{2, wrong[:1], -1, false},
	}
	for _, tc := range cases {
		res, err := f.answers.Submit(f.seats[tc.seat].Player.PublicID, f.sessionID, qid, tc.selection)
		if err != nil {
			t.Fatalf("Submit %v: %v", tc.selection, err)
		}
		if res.Points != tc.points {
			t.Errorf("selection %v: points = %d, want %d", tc.selection, res.Points, tc.points)
		}
		if res.Response.IsCorrect != tc.allCorrect {
			t.Errorf("selection %v: is_correct = %v, want %v", tc.selection, res.Response.IsCorrect, tc.allCorrect)
		}
	}

	// The all-wrong pick leaves a negative running total.
	var bad models.Player
	db.First(&bad, f.seats[2].Player.ID)
	if bad.Score != -1 {
		t.Errorf("score = %d, want -1", bad.Score)
	}
}

func TestSubmitRejectedOutsideActiveRound(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "closed-admin")
	bank := seedBank(t, db, 1)
	sessions := NewSessionService(db)
	players := NewPlayerService(db)
	answers := NewAnswerService(db)

	state, err := sessions.CreateSession(admin.ID, bank.ID, "closed", 30)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	seat, err := players.Join("closed", "Bob", "")
	if err != nil {
		t.Fatalf("Join: %v", err)
	}

	var anyQuestion models.Question
	db.Where("bank_id = ?", bank.ID).First(&anyQuestion)

	// Lobby: no current question yet.
	_, err = answers.Submit(seat.Player.PublicID, state.ID, anyQuestion.ID, nil)
	if apperr.KindOf(err) != apperr.KindInvalidState {
		t.Fatalf("Submit in lobby: err = %v, want invalid_state", err)
	}

	if _, err := sessions.StartGame(state.ID, admin.ID); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	if _, err := sessions.ForceReveal(state.ID, admin.ID); err != nil {
		t.Fatalf("ForceReveal: %v", err)
	}

	qid := currentQuestion(t, db, state.ID)
	_, err = answers.Submit(seat.Player.PublicID, state.ID, qid, optionIDs(t, db, qid, true)[:1])
	if apperr.KindOf(err) != apperr.KindInvalidState {
		t.Fatalf("Submit while revealing: err = %v, want invalid_state", err)
	}
}

func TestSubmitRejectsStaleQuestion(t *testing.T) {
	db := testDB(t)
	f := startedGame(t, db, "stale-q", 2, "Bob")
	qid := currentQuestion(t, db, f.sessionID)

	var other models.Question
	if err := db.Where("bank_id = ? AND id <> ?", f.bankID, qid).First(&other).Error; err != nil {
		t.Fatalf("load other question: %v", err)
	}

	_, err := f.answers.Submit(f.seats[0].Player.PublicID, f.sessionID, other.ID, optionIDs(t, db, other.ID, true)[:1])
	if apperr.KindOf(err) != apperr.KindInvalidState {
		t.Fatalf("err = %v, want invalid_state", err)
	}
}

func TestSubmitUnknownSessionAndForeignPlayer(t *testing.T) {
	db := testDB(t)
	f := startedGame(t, db, "home", 1, "Bob")
	qid := currentQuestion(t, db, f.sessionID)

	if _, err := f.answers.Submit(f.seats[0].Player.PublicID, 999, qid, nil); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("unknown session: err = %v, want not_found", err)
	}

	// A player seated in a different session cannot answer here.
	g := startedGame(t, db, "away", 1, "Carol")
	_, err := f.answers.Submit(g.seats[0].Player.PublicID, f.sessionID, qid, optionIDs(t, db, qid, true)[:1])
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("foreign player: err = %v, want not_found", err)
	}
}

func TestSubmitDuplicateIsConflictAndKeepsScore(t *testing.T) {
	db := testDB(t)
	f := startedGame(t, db, "dup-submit", 1, "Bob", "Carol")
	qid := currentQuestion(t, db, f.sessionID)
	correct := optionIDs(t, db, qid, true)

	if _, err := f.answers.Submit(f.seats[0].Player.PublicID, f.sessionID, qid, correct[:1]); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	_, err := f.answers.Submit(f.seats[0].Player.PublicID, f.sessionID, qid, correct[:1])
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("second Submit: err = %v, want conflict", err)
	}

	var player models.Player
	db.First(&player, f.seats[0].Player.ID)
	if player.Score != 1 {
		t.Errorf("score = %d after duplicate, want 1", player.Score)
	}
	var count int64
	db.Model(&models.PlayerResponse{}).
		Where("player_id = ? AND question_id = ?", f.seats[0].Player.ID, qid).
		Count(&count)
	if count != 1 {
		t.Errorf("responses = %d, want 1", count)
	}
}

func TestSubmitForeignOptionRollsBack(t *testing.T) {
	db := testDB(t)
	f := startedGame(t, db, "bad-option", 2, "Bob")
	qid := currentQuestion(t, db, f.sessionID)

	var other models.Question
	if err := db.Where("bank_id = ? AND id <> ?", f.bankID, qid).First(&other).Error; err != nil {
		t.Fatalf("load other question: %v", err)
	}
	foreign := optionIDs(t, db, other.ID, true)

	_, err := f.answers.Submit(f.seats[0].Player.PublicID, f.sessionID, qid, foreign[:1])
	if apperr.KindOf(err) != apperr.KindInvalidInput {
		t.Fatalf("err = %v, want invalid_input", err)
	}

	var count int64
	db.Model(&models.PlayerResponse{}).Where("session_id = ?", f.sessionID).Count(&count)
	if count != 0 {
		t.Errorf("responses = %d after rejected submit, want 0", count)
	}
	var player models.Player
	db.First(&player, f.seats[0].Player.ID)
	if player.Score != 0 {
		t.Errorf("score = %d after rejected submit, want 0", player.Score)
	}
}

func TestSubmitEmptySelectionCountsAsPass(t *testing.T) {
	db := testDB(t)
	f := startedGame(t, db, "pass-round", 1, "Bob")
	qid := currentQuestion(t, db, f.sessionID)

	res, err := f.answers.Submit(f.seats[0].Player.PublicID, f.sessionID, qid, nil)
	if err != nil {
		t.Fatalf("Submit empty: %v", err)
	}
	if res.Points != 0 {
		t.Errorf("points = %d, want 0", res.Points)
	}
	if !res.AllAnswered {
		t.Error("a pass should still count toward everyone having answered")
	}
}

func TestSubmitDeduplicatesSelection(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "dedupe-admin")
	bank := seedBank(t, db, 0)
	seedMultiQuestion(t, db, bank.ID)
	f := startedGameWithBank(t, db, "dedupe", admin.ID, bank.ID, "Bob")

	qid := currentQuestion(t, db, f.sessionID)
	correct := optionIDs(t, db, qid, true)

	res, err := f.answers.Submit(f.seats[0].Player.PublicID, f.sessionID, qid,
		[]uint{correct[0], correct[0], correct[1]})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Points != 2 {
		t.Errorf("points = %d, want 2 with the double tap collapsed", res.Points)
	}
	if len(res.Response.SelectedOptionIDs) != 2 {
		t.Errorf("stored selection = %v, want 2 ids", res.Response.SelectedOptionIDs)
	}
}

func TestLastAnswerRevealsRound(t *testing.T) {
	db := testDB(t)
	f := startedGame(t, db, "auto-reveal", 1, "Bob", "Carol")
	qid := currentQuestion(t, db, f.sessionID)
	correct := optionIDs(t, db, qid, true)

	first, err := f.answers.Submit(f.seats[0].Player.PublicID, f.sessionID, qid, correct[:1])
	if err != nil {
		t.Fatalf("Submit first: %v", err)
	}
	if first.AllAnswered {
		t.Error("first of two answers reported all_answered")
	}
	if status := sessionStatus(t, db, f.sessionID); status != models.SessionStatusActive {
		t.Fatalf("status = %q after first answer, want active", status)
	}

	second, err := f.answers.Submit(f.seats[1].Player.PublicID, f.sessionID, qid, correct[:1])
	if err != nil {
		t.Fatalf("Submit second: %v", err)
	}
	if !second.AllAnswered {
		t.Error("final answer did not report all_answered")
	}
	if status := sessionStatus(t, db, f.sessionID); status != models.SessionStatusRevealing {
		t.Fatalf("status = %q after final answer, want revealing", status)
	}
}

func TestAutoRevealIgnoresDisconnectedPlayers(t *testing.T) {
	db := testDB(t)
	f := startedGame(t, db, "dropouts", 1, "Bob", "Carol", "Dave")
	qid := currentQuestion(t, db, f.sessionID)
	correct := optionIDs(t, db, qid, true)

	if _, _, err := f.players.Disconnect(f.seats[2].Player.PublicID); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}

	if _, err := f.answers.Submit(f.seats[0].Player.PublicID, f.sessionID, qid, correct[:1]); err != nil {
		t.Fatalf("Submit first: %v", err)
	}
	if status := sessionStatus(t, db, f.sessionID); status != models.SessionStatusActive {
		t.Fatalf("status = %q, want active while a connected player is pending", status)
	}

	res, err := f.answers.Submit(f.seats[1].Player.PublicID, f.sessionID, qid, correct[:1])
	if err != nil {
		t.Fatalf("Submit second: %v", err)
	}
	if !res.AllAnswered {
		t.Error("round should close once every connected player has answered")
	}
	if status := sessionStatus(t, db, f.sessionID); status != models.SessionStatusRevealing {
		t.Fatalf("status = %q, want revealing", status)
	}
}

func TestScoresAccumulateAcrossRounds(t *testing.T) {
	db := testDB(t)
	f := startedGame(t, db, "marathon", 3, "Bob")
	bob := f.seats[0].Player.PublicID

	// Correct, wrong, correct over three rounds.
	for round, answerRight := range []bool{true, false, true} {
		qid := currentQuestion(t, db, f.sessionID)
		pick := optionIDs(t, db, qid, answerRight)
		if _, err := f.answers.Submit(bob, f.sessionID, qid, pick[:1]); err != nil {
			t.Fatalf("round %d Submit: %v", round+1, err)
		}
		// Sole player, so every submit closes the round.
		if status := sessionStatus(t, db, f.sessionID); status != models.SessionStatusRevealing {
			t.Fatalf("round %d: status = %q, want revealing", round+1, status)
		}
		if round < 2 {
			if _, err := f.sessions.NextQuestion(f.sessionID, f.adminID); err != nil {
				t.Fatalf("round %d NextQuestion: %v", round+1, err)
			}
		}
	}

	var player models.Player
	db.First(&player, f.seats[0].Player.ID)
	if player.Score != 2 {
		t.Errorf("score = %d after three rounds, want 2", player.Score)
	}
}

func TestRoundStats(t *testing.T) {
	db := testDB(t)
	f := startedGame(t, db, "stats", 2, "Bob", "Carol", "Dave")
	qid := currentQuestion(t, db, f.sessionID)
	correct := optionIDs(t, db, qid, true)
	wrong := optionIDs(t, db, qid, false)

	for i, pick := range [][]uint{correct[:1], correct[:1], wrong[:1]} {
		if _, err := f.answers.Submit(f.seats[i].Player.PublicID, f.sessionID, qid, pick); err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
	}

	stats, err := f.answers.RoundStats(f.sessionID, qid)
	if err != nil {
		t.Fatalf("RoundStats: %v", err)
	}
	if stats.ResponseCount != 3 {
		t.Errorf("responses = %d, want 3", stats.ResponseCount)
	}
	if stats.CorrectCount != 2 {
		t.Errorf("correct = %d, want 2", stats.CorrectCount)
	}
	if stats.PercentCorrect < 66.6 || stats.PercentCorrect > 66.7 {
		t.Errorf("percent = %.2f, want about 66.67", stats.PercentCorrect)
	}

	var unasked models.Question
	if err := db.Where("bank_id = ? AND id <> ?", f.bankID, qid).First(&unasked).Error; err != nil {
		t.Fatalf("load unasked question: %v", err)
	}
	if _, err := f.answers.RoundStats(f.sessionID, unasked.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("stats for unasked question: err = %v, want not_found", err)
	}
}

func TestRoundStatsWithNoResponses(t *testing.T) {
	db := testDB(t)
	f := startedGame(t, db, "quiet-round", 1, "Bob")
	qid := currentQuestion(t, db, f.sessionID)

	stats, err := f.answers.RoundStats(f.sessionID, qid)
	if err != nil {
		t.Fatalf("RoundStats: %v", err)
	}
	if stats.ResponseCount != 0 || stats.PercentCorrect != 0 {
		t.Errorf("stats = %+v, want zeroes", stats)
	}
}

func TestMyResponse(t *testing.T) {
	db := testDB(t)
	f := startedGame(t, db, "my-answer", 1, "Bob")
	qid := currentQuestion(t, db, f.sessionID)
	correct := optionIDs(t, db, qid, true)

	if _, err := f.answers.MyResponse(f.seats[0].Player.PublicID, qid); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("MyResponse before submit: err = %v, want not_found", err)
	}

	if _, err := f.answers.Submit(f.seats[0].Player.PublicID, f.sessionID, qid, correct[:1]); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	resp, err := f.answers.MyResponse(f.seats[0].Player.PublicID, qid)
	if err != nil {
		t.Fatalf("MyResponse: %v", err)
	}
	if len(resp.SelectedOptionIDs) != 1 || resp.SelectedOptionIDs[0] != correct[0] {
		t.Errorf("selection = %v, want %v", resp.SelectedOptionIDs, correct[:1])
	}
	if resp.PointsEarned != 1 {
		t.Errorf("points = %d, want 1", resp.PointsEarned)
	}

	if _, err := f.answers.MyResponse("who-dis", qid); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("MyResponse unknown player: err = %v, want not_found", err)
	}
}
