package storage

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := OpenJournal()
	if err != nil {
		t.Fatalf("OpenJournal() failed: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournalOpen(t *testing.T) {
	j := openTestJournal(t)

	if _, err := uuid.Parse(j.SessionID()); err != nil {
		t.Errorf("SessionID() = %q is not a UUID: %v", j.SessionID(), err)
	}

	other := openTestJournal(t)
	if other.SessionID() == j.SessionID() {
		t.Error("Two journals should not share a session ID")
	}

	attempts, err := other.Attempts(0)
	if err != nil {
		t.Fatalf("Attempts() failed: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("Expected an empty journal, got %d attempts", len(attempts))
	}
}

func TestJournalRecordAndRetrieve(t *testing.T) {
	j := openTestJournal(t)

	records := []AttemptRecord{
		{Outcome: OutcomeSuccess, Cause: "caught", Phase: "holding", HeldMs: 80, HoldMs: 120, RiseSpeed: 4, TargetY: 300, ResolvedAt: 1000},
		{Outcome: OutcomeFailure, Cause: "too early", Phase: "rising", HoldMs: 90, RiseSpeed: 5, TargetY: 250, ResolvedAt: 2000},
		{Outcome: OutcomeFailure, Cause: "late", Phase: "holding", HeldMs: 210, HoldMs: 200, RiseSpeed: 3, TargetY: 400, ResolvedAt: 3000},
	}
	for _, rec := range records {
		if _, err := j.RecordAttempt(rec); err != nil {
			t.Fatalf("RecordAttempt() failed: %v", err)
		}
	}

	got, err := j.Attempts(0)
	if err != nil {
		t.Fatalf("Attempts() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 attempts, got %d", len(got))
	}

	// Oldest first
	for i, rec := range records {
		if got[i].Cause != rec.Cause || got[i].ResolvedAt != rec.ResolvedAt {
			t.Errorf("attempt %d = %+v, expected %+v", i, got[i], rec)
		}
		if got[i].SessionID != j.SessionID() {
			t.Errorf("attempt %d has session %q", i, got[i].SessionID)
		}
		if got[i].ID == 0 {
			t.Errorf("attempt %d has no ID", i)
		}
	}
	if got[0].HeldMs != 80 || got[0].HoldMs != 120 || got[0].RiseSpeed != 4 || got[0].TargetY != 300 {
		t.Errorf("first attempt fields not round-tripped: %+v", got[0])
	}

	// Limit keeps the most recent attempts
	recent, err := j.Attempts(2)
	if err != nil {
		t.Fatalf("Attempts(2) failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Cause != "too early" || recent[1].Cause != "late" {
		t.Errorf("Attempts(2) = %+v", recent)
	}
}

func TestJournalRejectsUnknownOutcome(t *testing.T) {
	j := openTestJournal(t)

	if _, err := j.RecordAttempt(AttemptRecord{Outcome: "draw"}); err == nil {
		t.Error("Expected an error for an unknown outcome")
	}
}

func TestJournalSummary(t *testing.T) {
	j := openTestJournal(t)

	empty, err := j.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if empty.Total != 0 || empty.SuccessRate != 0 || empty.HasReaction {
		t.Errorf("Empty summary = %+v", empty)
	}

	for _, rec := range []AttemptRecord{
		{Outcome: OutcomeSuccess, Cause: "caught", HeldMs: 60},
		{Outcome: OutcomeSuccess, Cause: "caught", HeldMs: 100},
		{Outcome: OutcomeFailure, Cause: "late", HeldMs: 500},
		{Outcome: OutcomeFailure, Cause: "while falling"},
	} {
		if _, err := j.RecordAttempt(rec); err != nil {
			t.Fatalf("RecordAttempt() failed: %v", err)
		}
	}

	s, err := j.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if s.SessionID != j.SessionID() {
		t.Errorf("SessionID = %q", s.SessionID)
	}
	if s.Total != 4 || s.Successes != 2 || s.Failures != 2 {
		t.Errorf("Counts = %d/%d/%d, expected 4/2/2", s.Total, s.Successes, s.Failures)
	}
	if math.Abs(s.SuccessRate-0.5) > 1e-9 {
		t.Errorf("SuccessRate = %v, expected 0.5", s.SuccessRate)
	}
	// Late judges are not reaction times
	if !s.HasReaction || math.Abs(s.MeanReactionMs-80) > 1e-9 || s.BestReactionMs != 60 {
		t.Errorf("Reaction = %v mean, %d best, expected 80 and 60", s.MeanReactionMs, s.BestReactionMs)
	}
}

func TestJournalNewSession(t *testing.T) {
	j := openTestJournal(t)
	first := j.SessionID()

	if _, err := j.RecordAttempt(AttemptRecord{Outcome: OutcomeSuccess, Cause: "caught", HeldMs: 10}); err != nil {
		t.Fatalf("RecordAttempt() failed: %v", err)
	}

	second := j.NewSession()
	if second == first || j.SessionID() != second {
		t.Fatalf("NewSession() = %q, previous %q", second, first)
	}

	s, err := j.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if s.Total != 0 {
		t.Errorf("New session should start empty, got %d attempts", s.Total)
	}
}
