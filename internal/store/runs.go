package store

import (
	"database/sql"
	"time"
)

// InsertRun inserts a new run snapshot and returns its ID. TakenAt defaults
// to the current time when zero.
func (db *DB) InsertRun(r *Run) (int64, error) {
	takenAt := r.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now().UTC()
	}
	result, err := db.conn.Exec(
		`INSERT INTO runs
		(taken_at, mode, year, version, project_count, total_files, total_lines,
		 total_size, keystrokes, elapsed_days, earliest, latest)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		takenAt.Format(time.RFC3339), r.Mode, r.Year, r.Version,
		r.ProjectCount, r.TotalFiles, r.TotalLines, r.TotalSize,
		r.Keystrokes, r.ElapsedDays, formatTime(r.Earliest), formatTime(r.Latest),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// InsertRunLanguage inserts a per-language row for a run.
func (db *DB) InsertRunLanguage(rl *RunLanguage) error {
	_, err := db.conn.Exec(
		"INSERT INTO run_languages (run_id, language, files, lines, size) VALUES (?, ?, ?, ?, ?)",
		rl.RunID, rl.Language, rl.Files, rl.Lines, rl.Size,
	)
	return err
}

// InsertRunProject inserts a per-project row for a run.
func (db *DB) InsertRunProject(rp *RunProject) error {
	_, err := db.conn.Exec(
		`INSERT INTO run_projects (run_id, project, file_count, total_size, total_lines, earliest)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rp.RunID, rp.Project, rp.FileCount, rp.TotalSize, rp.TotalLines, formatTime(rp.Earliest),
	)
	return err
}

// GetLatestRun returns the most recent run, or nil if none exist.
func (db *DB) GetLatestRun() (*Run, error) {
	row := db.conn.QueryRow(runSelect + " ORDER BY id DESC LIMIT 1")
	return scanRun(row)
}

// ListRuns returns up to limit runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	rows, err := db.conn.Query(runSelect+" ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		r, err := scanRunRows(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	return runs, rows.Err()
}

// GetRunLanguages returns the per-language rows of a run.
func (db *DB) GetRunLanguages(runID int64) ([]RunLanguage, error) {
	rows, err := db.conn.Query(
		"SELECT id, run_id, language, files, lines, size FROM run_languages WHERE run_id = ?",
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var langs []RunLanguage
	for rows.Next() {
		var rl RunLanguage
		if err := rows.Scan(&rl.ID, &rl.RunID, &rl.Language, &rl.Files, &rl.Lines, &rl.Size); err != nil {
			return nil, err
		}
		langs = append(langs, rl)
	}
	return langs, rows.Err()
}

// GetRunProjects returns the per-project rows of a run.
func (db *DB) GetRunProjects(runID int64) ([]RunProject, error) {
	rows, err := db.conn.Query(
		`SELECT id, run_id, project, file_count, total_size, total_lines, earliest
		 FROM run_projects WHERE run_id = ?`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var projects []RunProject
	for rows.Next() {
		var rp RunProject
		var earliest sql.NullString
		if err := rows.Scan(&rp.ID, &rp.RunID, &rp.Project, &rp.FileCount,
			&rp.TotalSize, &rp.TotalLines, &earliest); err != nil {
			return nil, err
		}
		rp.Earliest = parseTime(earliest)
		projects = append(projects, rp)
	}
	return projects, rows.Err()
}

const runSelect = `SELECT id, taken_at, mode, year, version, project_count,
	total_files, total_lines, total_size, keystrokes, elapsed_days, earliest, latest
	FROM runs`

func scanRun(row *sql.Row) (*Run, error) {
	var r Run
	var takenAt string
	var earliest, latest sql.NullString
	err := row.Scan(&r.ID, &takenAt, &r.Mode, &r.Year, &r.Version,
		&r.ProjectCount, &r.TotalFiles, &r.TotalLines, &r.TotalSize,
		&r.Keystrokes, &r.ElapsedDays, &earliest, &latest)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	r.Earliest = parseTime(earliest)
	r.Latest = parseTime(latest)
	return &r, nil
}

func scanRunRows(rows *sql.Rows) (*Run, error) {
	var r Run
	var takenAt string
	var earliest, latest sql.NullString
	err := rows.Scan(&r.ID, &takenAt, &r.Mode, &r.Year, &r.Version,
		&r.ProjectCount, &r.TotalFiles, &r.TotalLines, &r.TotalSize,
		&r.Keystrokes, &r.ElapsedDays, &earliest, &latest)
	if err != nil {
		return nil, err
	}
	r.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	r.Earliest = parseTime(earliest)
	r.Latest = parseTime(latest)
	return &r, nil
}

func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

func parseTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}
