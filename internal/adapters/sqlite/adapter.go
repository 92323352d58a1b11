// Package sqlite provides a SQLite-backed implementation of the radio store
// port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ThermaloS/AetherBot/internal/core/domain"
	"github.com/ThermaloS/AetherBot/internal/core/ports"
	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously
)

// Adapter implements the radio store port for SQLite.
type Adapter struct {
	db *sql.DB
}

// compile-time interface assertion
var _ ports.RadioStore = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// LoadConfigs returns the radio-enabled flag for every guild with a row.
func (a *Adapter) LoadConfigs(ctx context.Context) (map[string]bool, error) {
	rows, err := a.db.QueryContext(ctx, "SELECT guild_id, enabled FROM radio_configs")
	if err != nil {
		return nil, fmt.Errorf("failed to load radio configs: %w", err)
	}
	defer rows.Close()

	configs := make(map[string]bool)
	for rows.Next() {
		var guildID string
		var enabled bool
		if err := rows.Scan(&guildID, &enabled); err != nil {
			return nil, fmt.Errorf("failed to scan radio config: %w", err)
		}
		configs[guildID] = enabled
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate radio configs: %w", err)
	}

	return configs, nil
}

// SaveConfig upserts one guild's radio-enabled flag.
func (a *Adapter) SaveConfig(ctx context.Context, guildID string, enabled bool) error {
	query := `
		INSERT INTO radio_configs (guild_id, enabled) VALUES (?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET
			enabled=excluded.enabled,
			updated_at=CURRENT_TIMESTAMP;
	`
	if _, err := a.db.ExecContext(ctx, query, guildID, enabled); err != nil {
		return fmt.Errorf("failed to save radio config: %w", err)
	}
	return nil
}

// RecordPlay appends one play-history row. A missing ID gets a fresh UUID.
func (a *Adapter) RecordPlay(ctx context.Context, rec domain.PlayRecord) error {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	query := `
		INSERT INTO play_history (id, guild_id, url, title, artist, genres, fingerprint, energy)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := a.db.ExecContext(
		ctx,
		query,
		id,
		rec.GuildID,
		rec.URL,
		rec.Title,
		rec.Artist,
		strings.Join(rec.Genres, ","),
		rec.Fingerprint,
		rec.Energy,
	); err != nil {
		return fmt.Errorf("failed to record play: %w", err)
	}
	return nil
}

// RecentPlays returns up to limit history rows for a guild, newest first.
func (a *Adapter) RecentPlays(ctx context.Context, guildID string, limit int) ([]domain.PlayRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := a.db.QueryContext(ctx, `
		SELECT id, guild_id, url, title, artist, genres, fingerprint, energy
		FROM play_history
		WHERE guild_id = ?
		ORDER BY played_at DESC, rowid DESC
		LIMIT ?
	`, guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load play history: %w", err)
	}
	defer rows.Close()

	var records []domain.PlayRecord
	for rows.Next() {
		var rec domain.PlayRecord
		var genres sql.NullString
		var artist sql.NullString
		var fingerprint sql.NullString
		var energy sql.NullFloat64
		if err := rows.Scan(
			&rec.ID,
			&rec.GuildID,
			&rec.URL,
			&rec.Title,
			&artist,
			&genres,
			&fingerprint,
			&energy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan play record: %w", err)
		}
		if artist.Valid {
			rec.Artist = artist.String
		}
		if genres.Valid && genres.String != "" {
			rec.Genres = strings.Split(genres.String, ",")
		}
		if fingerprint.Valid {
			rec.Fingerprint = fingerprint.String
		}
		if energy.Valid {
			rec.Energy = energy.Float64
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate play history: %w", err)
	}

	return records, nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS radio_configs (
		guild_id TEXT PRIMARY KEY,
		enabled BOOLEAN NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS play_history (
		id TEXT PRIMARY KEY,
		guild_id TEXT NOT NULL,
		url TEXT NOT NULL,
		title TEXT NOT NULL,
		artist TEXT,
		genres TEXT,
		fingerprint TEXT,
		energy REAL,
		played_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_play_history_guild ON play_history(guild_id, played_at);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}

	if _, err := a.db.Exec("ALTER TABLE play_history ADD COLUMN energy REAL"); err != nil {
		if !isDuplicateColumnError(err) {
			return err
		}
	}

	return nil
}

func isDuplicateColumnError(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "duplicate column") || strings.Contains(err.Error(), "already exists"))
}
