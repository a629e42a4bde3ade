package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/meetcost/meetcost/internal/models"
)

// Ensure SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a SQLiteStore at the given database path, creating parent
// directories and running migrations.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Add persists a meeting and trims the history to MaxMeetings, oldest
// first. A failed insert gets one retry after halving retained history,
// mirroring the quota-exceeded recovery of browser storage.
func (s *SQLiteStore) Add(ctx context.Context, meeting *models.Meeting) (bool, error) {
	if meeting.ID == "" {
		meeting.ID = "mtg_" + uuid.New().String()
	}

	if err := s.insert(ctx, meeting); err != nil {
		slog.Warn("meeting insert failed, halving history and retrying", "meeting_id", meeting.ID, "error", err)
		if herr := s.halve(ctx); herr != nil {
			return false, fmt.Errorf("failed to insert meeting: %w", err)
		}
		if err := s.insert(ctx, meeting); err != nil {
			return false, fmt.Errorf("failed to insert meeting after halving: %w", err)
		}
		return true, nil
	}

	return s.trim(ctx)
}

// insert writes the meeting and its participants in one transaction.
func (s *SQLiteStore) insert(ctx context.Context, m *models.Meeting) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertTx(ctx, tx, m); err != nil {
		return err
	}
	return tx.Commit()
}

// insertTx writes the meeting rows inside the caller's transaction.
func insertTx(ctx context.Context, tx *sql.Tx, m *models.Meeting) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO meetings (id, timestamp, duration, total_cost, meeting_cost, in_person_cost,
			cost_per_second, cost_per_minute, average_rate, status, sector, description,
			preset, format, commute_minutes, extras_per_person)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Timestamp, m.Duration, m.TotalCost, m.MeetingCost, m.InPersonCost,
		m.CostPerSecond, m.CostPerMinute, m.AverageRate, string(m.Status), string(m.SectorType),
		m.MeetingDescription, string(m.Preset), string(m.Format),
		m.CommuteMinutesPerPerson, m.InPersonExtrasPerPerson,
	)
	if err != nil {
		return fmt.Errorf("failed to insert meeting row: %w", err)
	}

	for i, p := range m.Participants {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO meeting_participants (meeting_id, position, id, employment_type,
				annual_salary, hourly_rate, effective_hourly_rate, role, is_active)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, i, p.ID, string(p.EmploymentType),
			p.AnnualSalary, p.HourlyRate, p.EffectiveHourlyRate, p.Role, p.IsActive,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	return nil
}

// trim deletes the oldest meetings beyond MaxMeetings.
func (s *SQLiteStore) trim(ctx context.Context) (bool, error) {
	return s.keepNewest(ctx, MaxMeetings)
}

// halve drops the older half of the retained history.
func (s *SQLiteStore) halve(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM meetings").Scan(&count); err != nil {
		return fmt.Errorf("failed to count meetings: %w", err)
	}
	_, err := s.keepNewest(ctx, count/2)
	return err
}

// keepNewest deletes everything but the n newest meetings.
func (s *SQLiteStore) keepNewest(ctx context.Context, n int) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM meetings WHERE id NOT IN (
			SELECT id FROM meetings ORDER BY timestamp DESC, rowid DESC LIMIT ?
		)`, n)
	if err != nil {
		return false, fmt.Errorf("failed to trim meetings: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read trim count: %w", err)
	}
	return deleted > 0, nil
}

// List returns all stored meetings, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]models.Meeting, error) {
	rows, err := s.db.QueryContext(ctx,
		selectMeetingColumns+" FROM meetings ORDER BY timestamp DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings: %w", err)
	}
	defer rows.Close()

	var meetings []models.Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meetings: %w", err)
	}

	for i := range meetings {
		participants, err := s.loadParticipants(ctx, meetings[i].ID)
		if err != nil {
			return nil, err
		}
		meetings[i].Participants = participants
	}
	return meetings, nil
}

// Get retrieves one meeting by ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*models.Meeting, error) {
	row := s.db.QueryRowContext(ctx, selectMeetingColumns+" FROM meetings WHERE id = ?", id)
	m, err := scanMeeting(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	participants, err := s.loadParticipants(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	m.Participants = participants
	return m, nil
}

// Update replaces the stored meeting with the given ID. The delete and
// re-insert share one transaction so a failed update leaves the stored
// record intact.
func (s *SQLiteStore) Update(ctx context.Context, id string, meeting *models.Meeting) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, "DELETE FROM meetings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete old meeting: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete count: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}

	updated := *meeting
	updated.ID = id
	if err := insertTx(ctx, tx, &updated); err != nil {
		return err
	}
	return tx.Commit()
}

// Clear removes all stored meetings.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM meetings"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

const selectMeetingColumns = `SELECT id, timestamp, duration, total_cost, meeting_cost,
	in_person_cost, cost_per_second, cost_per_minute, average_rate, status, sector,
	description, preset, format, commute_minutes, extras_per_person`

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeeting(row rowScanner) (*models.Meeting, error) {
	var m models.Meeting
	var status, sector, preset, format string
	err := row.Scan(
		&m.ID, &m.Timestamp, &m.Duration, &m.TotalCost, &m.MeetingCost,
		&m.InPersonCost, &m.CostPerSecond, &m.CostPerMinute, &m.AverageRate,
		&status, &sector, &m.MeetingDescription, &preset, &format,
		&m.CommuteMinutesPerPerson, &m.InPersonExtrasPerPerson,
	)
	if err != nil {
		return nil, err
	}
	m.Status = models.MeetingStatus(status)
	m.SectorType = models.SectorType(sector)
	m.Preset = models.PresetType(preset)
	m.Format = models.MeetingFormat(format)
	return &m, nil
}

func (s *SQLiteStore) loadParticipants(ctx context.Context, meetingID string) ([]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employment_type, annual_salary, hourly_rate, effective_hourly_rate, role, is_active
		 FROM meeting_participants WHERE meeting_id = ? ORDER BY position`, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		var employmentType string
		if err := rows.Scan(&p.ID, &employmentType, &p.AnnualSalary, &p.HourlyRate,
			&p.EffectiveHourlyRate, &p.Role, &p.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		p.EmploymentType = models.EmploymentType(employmentType)
		participants = append(participants, p)
	}
	return participants, rows.Err()
}
