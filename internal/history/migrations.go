package history

import "database/sql"

// schema sets up the history tables. Runs on open; meetings must exist
// before meeting_participants due to the foreign key.
const schema = `
CREATE TABLE IF NOT EXISTS meetings (
    id TEXT PRIMARY KEY,
    timestamp INTEGER NOT NULL,
    duration INTEGER NOT NULL,
    total_cost REAL NOT NULL,
    meeting_cost REAL NOT NULL,
    in_person_cost REAL NOT NULL DEFAULT 0,
    cost_per_second REAL NOT NULL,
    cost_per_minute REAL NOT NULL,
    average_rate REAL NOT NULL,
    status TEXT NOT NULL,
    sector TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    preset TEXT NOT NULL DEFAULT '',
    format TEXT NOT NULL DEFAULT '',
    commute_minutes REAL NOT NULL DEFAULT 0,
    extras_per_person REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS meeting_participants (
    meeting_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    id TEXT NOT NULL,
    employment_type TEXT NOT NULL,
    annual_salary REAL NOT NULL DEFAULT 0,
    hourly_rate REAL NOT NULL DEFAULT 0,
    effective_hourly_rate REAL NOT NULL,
    role TEXT NOT NULL DEFAULT '',
    is_active INTEGER NOT NULL,
    PRIMARY KEY (meeting_id, position),
    FOREIGN KEY (meeting_id) REFERENCES meetings(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_meetings_timestamp ON meetings(timestamp);
CREATE INDEX IF NOT EXISTS idx_meeting_participants_meeting_id ON meeting_participants(meeting_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
