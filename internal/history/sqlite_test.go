package history

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/meetcost/meetcost/internal/models"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "meetcost-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testMeeting(timestamp int64) *models.Meeting {
	return &models.Meeting{
		Timestamp: timestamp,
		Duration:  1800,
		Participants: []models.Participant{
			{ID: "p1", EmploymentType: models.EmploymentFulltime, AnnualSalary: 90000, EffectiveHourlyRate: 43.27, Role: "Engineer", IsActive: true},
			{ID: "p2", EmploymentType: models.EmploymentContractor, HourlyRate: 60, EffectiveHourlyRate: 60, IsActive: false},
		},
		TotalCost:               120.5,
		MeetingCost:             100.5,
		InPersonCost:            20,
		CostPerSecond:           0.012,
		CostPerMinute:           0.72,
		AverageRate:             51.64,
		Status:                  models.StatusCompleted,
		SectorType:              models.SectorPrivate,
		MeetingDescription:      "Stand Up",
		Format:                  models.FormatInPerson,
		CommuteMinutesPerPerson: 30,
		InPersonExtrasPerPerson: 10,
	}
}

func TestSQLiteStore(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	t.Run("Add generates ID", func(t *testing.T) {
		m := testMeeting(1000)
		trimmed, err := store.Add(ctx, m)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if trimmed {
			t.Error("unexpected trim on first insert")
		}
		if m.ID == "" {
			t.Error("expected meeting ID to be generated")
		}
	})

	t.Run("Get retrieves complete meeting", func(t *testing.T) {
		original := testMeeting(2000)
		original.ID = "mtg_fixed"
		if _, err := store.Add(ctx, original); err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		got, err := store.Get(ctx, "mtg_fixed")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Timestamp != 2000 || got.Duration != 1800 {
			t.Errorf("timestamp/duration = %d/%d", got.Timestamp, got.Duration)
		}
		if math.Abs(got.TotalCost-120.5) > 1e-9 {
			t.Errorf("TotalCost = %v, want 120.5", got.TotalCost)
		}
		if got.Status != models.StatusCompleted || got.Format != models.FormatInPerson {
			t.Errorf("status/format = %q/%q", got.Status, got.Format)
		}
		if got.SectorType != models.SectorPrivate || got.MeetingDescription != "Stand Up" {
			t.Errorf("sector/description = %q/%q", got.SectorType, got.MeetingDescription)
		}
		if len(got.Participants) != 2 {
			t.Fatalf("participants = %d, want 2", len(got.Participants))
		}
		p := got.Participants[0]
		if p.ID != "p1" || p.EmploymentType != models.EmploymentFulltime || p.Role != "Engineer" || !p.IsActive {
			t.Errorf("first participant = %+v", p)
		}
		if got.Participants[1].IsActive {
			t.Error("second participant should be inactive")
		}
	})

	t.Run("Get unknown ID returns ErrNotFound", func(t *testing.T) {
		if _, err := store.Get(ctx, "mtg_missing"); err != ErrNotFound {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("List returns newest first", func(t *testing.T) {
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		for _, ts := range []int64{100, 300, 200} {
			if _, err := store.Add(ctx, testMeeting(ts)); err != nil {
				t.Fatalf("Add failed: %v", err)
			}
		}

		meetings, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(meetings) != 3 {
			t.Fatalf("len = %d, want 3", len(meetings))
		}
		if meetings[0].Timestamp != 300 || meetings[1].Timestamp != 200 || meetings[2].Timestamp != 100 {
			t.Errorf("order = %d, %d, %d", meetings[0].Timestamp, meetings[1].Timestamp, meetings[2].Timestamp)
		}
		if len(meetings[0].Participants) != 2 {
			t.Errorf("participants not loaded in List")
		}
	})

	t.Run("Update replaces by ID", func(t *testing.T) {
		m := testMeeting(5000)
		m.ID = "mtg_update_me"
		if _, err := store.Add(ctx, m); err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		replacement := testMeeting(5001)
		replacement.MeetingDescription = "Retro"
		if err := store.Update(ctx, "mtg_update_me", replacement); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		got, err := store.Get(ctx, "mtg_update_me")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.MeetingDescription != "Retro" || got.Timestamp != 5001 {
			t.Errorf("updated meeting = %+v", got)
		}

		if err := store.Update(ctx, "mtg_missing", replacement); err != ErrNotFound {
			t.Errorf("Update missing err = %v, want ErrNotFound", err)
		}
	})

	t.Run("Clear empties the store", func(t *testing.T) {
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		meetings, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(meetings) != 0 {
			t.Errorf("len = %d, want 0", len(meetings))
		}
	})
}

func TestSQLiteStoreEviction(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	var trimmedAt []int
	for i := 0; i < MaxMeetings+5; i++ {
		m := testMeeting(int64(i))
		m.ID = fmt.Sprintf("mtg_%03d", i)
		trimmed, err := store.Add(ctx, m)
		if err != nil {
			t.Fatalf("Add %d failed: %v", i, err)
		}
		if trimmed {
			trimmedAt = append(trimmedAt, i)
		}
	}

	if len(trimmedAt) != 5 {
		t.Errorf("trimmed on %d inserts, want 5 (only past the cap): %v", len(trimmedAt), trimmedAt)
	}

	meetings, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(meetings) != MaxMeetings {
		t.Fatalf("retained %d meetings, want %d", len(meetings), MaxMeetings)
	}
	// Newest survive; the 5 oldest are gone.
	if meetings[0].Timestamp != int64(MaxMeetings+4) {
		t.Errorf("newest timestamp = %d, want %d", meetings[0].Timestamp, MaxMeetings+4)
	}
	if meetings[len(meetings)-1].Timestamp != 5 {
		t.Errorf("oldest timestamp = %d, want 5", meetings[len(meetings)-1].Timestamp)
	}
}

func TestSQLiteStoreUpdateKeepsRowOnFailure(t *testing.T) {
	// A replacement that fails to insert must not take the original
	// meeting down with it. A trigger makes the re-insert fail after
	// the delete has already run inside Update's transaction.
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()

	m := testMeeting(1)
	m.ID = "mtg_keep"
	if _, err := store.Add(ctx, m); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(`CREATE TRIGGER reject_marked_inserts BEFORE INSERT ON meetings
		WHEN NEW.description = 'rejected'
		BEGIN SELECT RAISE(ABORT, 'insert rejected'); END`)
	if err != nil {
		t.Fatalf("Failed to create trigger: %v", err)
	}

	replacement := testMeeting(2)
	replacement.MeetingDescription = "rejected"
	if err := store.Update(ctx, "mtg_keep", replacement); err == nil {
		t.Fatal("expected Update to fail")
	}

	got, err := store.Get(ctx, "mtg_keep")
	if err != nil {
		t.Fatalf("original meeting lost after failed update: %v", err)
	}
	if got.Timestamp != 1 || got.MeetingDescription != "Stand Up" {
		t.Errorf("original meeting altered by failed update: %+v", got)
	}
	if len(got.Participants) != 2 {
		t.Errorf("participants = %d, want 2", len(got.Participants))
	}
}

func TestSQLiteStoreInsertFailureRecovery(t *testing.T) {
	// A failed insert (duplicate primary key here) triggers the
	// halve-and-retry path: the conflicting old row is evicted and the
	// new meeting lands on the second attempt, reported as a trim.
	store := testStore(t)
	ctx := context.Background()

	m := testMeeting(1)
	m.ID = "mtg_dup"
	if _, err := store.Add(ctx, m); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	again := testMeeting(2)
	again.ID = "mtg_dup"
	trimmed, err := store.Add(ctx, again)
	if err != nil {
		t.Fatalf("Add after conflict failed: %v", err)
	}
	if !trimmed {
		t.Error("expected the recovery path to report a trim")
	}

	meetings, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(meetings) != 1 || meetings[0].Timestamp != 2 {
		t.Errorf("meetings = %+v, want only the retried insert", meetings)
	}
}
