// Package sqlite provides a SQLite-backed crew storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/crewportrait/internal/crew"
	sqlitemigrate "github.com/louisbranch/crewportrait/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/crewportrait/internal/services/portrait/storage"
	"github.com/louisbranch/crewportrait/internal/services/portrait/storage/filter"
	"github.com/louisbranch/crewportrait/internal/services/portrait/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists crews in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite crew store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutCrew stores a crew, replacing any crew with the same id.
func (s *Store) PutCrew(ctx context.Context, c crew.Crew) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	crewID := strings.TrimSpace(c.ID)
	if crewID == "" {
		return fmt.Errorf("crew id is required")
	}
	createdAt := c.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put crew: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO crews (id, description, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   description = excluded.description,
		   created_at = excluded.created_at`,
		crewID,
		c.Description,
		toMillis(createdAt),
	); err != nil {
		return fmt.Errorf("put crew: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM crew_members WHERE crew_id = ?`, crewID); err != nil {
		return fmt.Errorf("clear crew members: %w", err)
	}

	for position, p := range c.Members {
		memberID := strings.TrimSpace(p.Metadata.ID)
		if memberID == "" {
			return fmt.Errorf("crew member %d id is required", position)
		}
		metadataJSON, err := json.Marshal(p.Metadata)
		if err != nil {
			return fmt.Errorf("encode crew member %s: %w", memberID, err)
		}
		characterJSON, err := json.Marshal(p.Character)
		if err != nil {
			return fmt.Errorf("encode character %s: %w", memberID, err)
		}
		m := p.Metadata
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO crew_members (
			   id, crew_id, position,
			   first_name, last_name, gender, ethnicity,
			   class, role, job, birth_date,
			   metadata_json, character_json
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			memberID, crewID, position,
			m.FirstName, m.LastName, string(m.Gender), string(m.Ethnicity),
			string(m.Class), string(m.Role), string(m.Job), m.BirthDate,
			string(metadataJSON), string(characterJSON),
		); err != nil {
			return fmt.Errorf("put crew member %s: %w", memberID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put crew: %w", err)
	}
	return nil
}

// GetCrew returns one crew with its members in draft order.
func (s *Store) GetCrew(ctx context.Context, crewID string) (crew.Crew, error) {
	if err := ctx.Err(); err != nil {
		return crew.Crew{}, err
	}
	if s == nil || s.sqlDB == nil {
		return crew.Crew{}, fmt.Errorf("storage is not configured")
	}
	crewID = strings.TrimSpace(crewID)
	if crewID == "" {
		return crew.Crew{}, fmt.Errorf("crew id is required")
	}

	var out crew.Crew
	var createdAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, description, created_at FROM crews WHERE id = ?`,
		crewID,
	).Scan(&out.ID, &out.Description, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return crew.Crew{}, storage.ErrNotFound
		}
		return crew.Crew{}, fmt.Errorf("get crew: %w", err)
	}
	out.CreatedAt = fromMillis(createdAt)

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT crew_id, position, metadata_json, character_json
		   FROM crew_members
		  WHERE crew_id = ?
		  ORDER BY position ASC`,
		crewID,
	)
	if err != nil {
		return crew.Crew{}, fmt.Errorf("get crew members: %w", err)
	}
	defer rows.Close()

	out.Members = make([]crew.Portrait, 0)
	for rows.Next() {
		record, err := scanMember(rows)
		if err != nil {
			return crew.Crew{}, fmt.Errorf("get crew members: %w", err)
		}
		out.Members = append(out.Members, record.Portrait)
	}
	if err := rows.Err(); err != nil {
		return crew.Crew{}, fmt.Errorf("get crew members: %w", err)
	}
	return out, nil
}

// ListCrewMembers returns one page of crew members across all crews,
// ordered by crew then draft position.
func (s *Store) ListCrewMembers(ctx context.Context, query storage.MemberQuery) (storage.MemberPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.MemberPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.MemberPage{}, fmt.Errorf("storage is not configured")
	}
	pageSize := storage.ClampPageSize(query.PageSize)

	cond, err := filter.ParseMemberFilter(query.Filter)
	if err != nil {
		return storage.MemberPage{}, err
	}

	var (
		clauses []string
		params  []any
	)
	if !cond.Empty() {
		clauses = append(clauses, cond.Clause)
		params = append(params, cond.Params...)
	}
	if token := strings.TrimSpace(query.PageToken); token != "" {
		afterCrew, afterPosition, err := decodePageToken(token)
		if err != nil {
			return storage.MemberPage{}, err
		}
		clauses = append(clauses, "(crew_id > ? OR (crew_id = ? AND position > ?))")
		params = append(params, afterCrew, afterCrew, afterPosition)
	}

	sqlQuery := `SELECT crew_id, position, metadata_json, character_json FROM crew_members`
	if len(clauses) > 0 {
		sqlQuery += " WHERE " + strings.Join(clauses, " AND ")
	}
	sqlQuery += " ORDER BY crew_id ASC, position ASC LIMIT ?"
	params = append(params, pageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, sqlQuery, params...)
	if err != nil {
		return storage.MemberPage{}, fmt.Errorf("list crew members: %w", err)
	}
	defer rows.Close()

	page := storage.MemberPage{
		Members: make([]storage.MemberRecord, 0, pageSize),
	}
	for rows.Next() {
		record, err := scanMember(rows)
		if err != nil {
			return storage.MemberPage{}, fmt.Errorf("list crew members: %w", err)
		}
		page.Members = append(page.Members, record)
	}
	if err := rows.Err(); err != nil {
		return storage.MemberPage{}, fmt.Errorf("list crew members: %w", err)
	}
	if len(page.Members) > pageSize {
		last := page.Members[pageSize-1]
		page.NextPageToken = encodePageToken(last.CrewID, last.Position)
		page.Members = page.Members[:pageSize]
	}
	return page, nil
}

func scanMember(rows *sql.Rows) (storage.MemberRecord, error) {
	var (
		record        storage.MemberRecord
		metadataJSON  string
		characterJSON string
	)
	if err := rows.Scan(&record.CrewID, &record.Position, &metadataJSON, &characterJSON); err != nil {
		return storage.MemberRecord{}, err
	}
	if err := json.Unmarshal([]byte(metadataJSON), &record.Portrait.Metadata); err != nil {
		return storage.MemberRecord{}, fmt.Errorf("decode crew member: %w", err)
	}
	if err := json.Unmarshal([]byte(characterJSON), &record.Portrait.Character); err != nil {
		return storage.MemberRecord{}, fmt.Errorf("decode character: %w", err)
	}
	return record, nil
}

func encodePageToken(crewID string, position int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(crewID + "/" + strconv.Itoa(position)))
}

func decodePageToken(token string) (string, int, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", 0, storage.ErrPageTokenInvalid
	}
	idx := strings.LastIndex(string(raw), "/")
	if idx <= 0 {
		return "", 0, storage.ErrPageTokenInvalid
	}
	position, err := strconv.Atoi(string(raw[idx+1:]))
	if err != nil || position < 0 {
		return "", 0, storage.ErrPageTokenInvalid
	}
	return string(raw[:idx]), position, nil
}

var (
	_ storage.CrewStore = (*Store)(nil)
	_ crew.Store        = (*Store)(nil)
)
