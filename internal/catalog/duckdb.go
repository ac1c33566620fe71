// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/oscarmatch/internal/metrics"
	"github.com/tomtom215/oscarmatch/internal/models"
)

const driverDuckDB = "duckdb"

const moviesSchema = `CREATE TABLE IF NOT EXISTS movies (
	id TEXT PRIMARY KEY,
	tmdb_id INTEGER,
	title TEXT NOT NULL,
	original_title TEXT,
	year INTEGER,
	overview TEXT,
	poster_path TEXT,
	thematic_tags TEXT,
	mood_tags TEXT,
	vote_count INTEGER,
	vote_average DOUBLE,
	popularity DOUBLE,
	runtime INTEGER,
	is_best_picture_winner BOOLEAN NOT NULL DEFAULT false,
	is_best_picture_nominee BOOLEAN NOT NULL DEFAULT false,
	oscar_year INTEGER
)`

const movieColumns = `id, tmdb_id, title, original_title, year, overview, poster_path,
	thematic_tags, mood_tags, vote_count, vote_average, popularity, runtime,
	is_best_picture_winner, is_best_picture_nominee, oscar_year`

// DuckDBOptions tunes the DuckDB catalog.
type DuckDBOptions struct {
	// QueryTimeout bounds each query. Zero disables the bound.
	QueryTimeout time.Duration
}

// DuckDB is a catalog backed by the movies table.
type DuckDB struct {
	conn *sql.DB
	opts DuckDBOptions
}

// NewDuckDB wraps an open connection. Call EnsureSchema before first use.
func NewDuckDB(conn *sql.DB, opts DuckDBOptions) *DuckDB {
	return &DuckDB{conn: conn, opts: opts}
}

// EnsureSchema creates the movies table when missing.
func (d *DuckDB) EnsureSchema(ctx context.Context) error {
	if _, err := d.conn.ExecContext(ctx, moviesSchema); err != nil {
		return fmt.Errorf("failed to create movies table: %w", err)
	}
	return nil
}

func (d *DuckDB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.opts.QueryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d.opts.QueryTimeout)
}

// yearClause appends the oscar_year bounds of filter to a WHERE clause.
func yearClause(filter Filter, query string, args []any) (string, []any) {
	if filter.FromYear != 0 {
		query += " AND oscar_year >= ?"
		args = append(args, filter.FromYear)
	}
	if filter.ToYear != 0 {
		query += " AND oscar_year <= ?"
		args = append(args, filter.ToYear)
	}
	return query, args
}

// ListNominees implements Catalog.
func (d *DuckDB) ListNominees(ctx context.Context, filter Filter) (movies []models.Movie, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogQuery(driverDuckDB, "list_nominees", time.Since(start), err) }()

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	query, args := yearClause(filter,
		"SELECT "+movieColumns+" FROM movies WHERE is_best_picture_nominee = true", nil)
	query += " ORDER BY vote_count DESC NULLS LAST, id"

	return d.queryMovies(ctx, query, args...)
}

// Get implements Catalog.
func (d *DuckDB) Get(ctx context.Context, id string) (movie *models.Movie, err error) {
	start := time.Now()
	defer func() {
		if errors.Is(err, ErrNotFound) {
			metrics.RecordCatalogQuery(driverDuckDB, "get", time.Since(start), nil)
			return
		}
		metrics.RecordCatalogQuery(driverDuckDB, "get", time.Since(start), err)
	}()

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	row := d.conn.QueryRowContext(ctx, "SELECT "+movieColumns+" FROM movies WHERE id = ?", id)
	m, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return m, nil
}

// Random implements Catalog.
func (d *DuckDB) Random(ctx context.Context, filter Filter) (*models.Movie, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	query, args := yearClause(filter,
		"SELECT "+movieColumns+" FROM movies WHERE is_best_picture_nominee = true", nil)
	query += " ORDER BY random() LIMIT 1"

	m, err := scanMovie(d.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pick random movie: %w", err)
	}
	return m, nil
}

// Browse implements Catalog.
func (d *DuckDB) Browse(ctx context.Context, filter BrowseFilter) (movies []models.Movie, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogQuery(driverDuckDB, "browse", time.Since(start), err) }()

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	f := filter.Normalize()
	query, args := yearClause(f.Filter,
		"SELECT "+movieColumns+" FROM movies WHERE is_best_picture_nominee = true", nil)
	if f.WinnersOnly {
		query += " AND is_best_picture_winner = true"
	}
	if f.Mood != "" {
		// mood_tags is a JSON array of strings; match the quoted element.
		query += " AND mood_tags LIKE ?"
		args = append(args, "%"+jsonQuoted(f.Mood)+"%")
	}
	query += " ORDER BY oscar_year DESC NULLS LAST, title LIMIT ? OFFSET ?"
	args = append(args, f.Limit, f.Offset)

	return d.queryMovies(ctx, query, args...)
}

// UpsertMovies inserts movies or replaces existing rows with the same ID.
func (d *DuckDB) UpsertMovies(ctx context.Context, movies []models.Movie) (err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogQuery(driverDuckDB, "upsert", time.Since(start), err) }()

	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() //nolint:errcheck // original error is returned
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO movies (`+movieColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			tmdb_id = EXCLUDED.tmdb_id,
			title = EXCLUDED.title,
			original_title = EXCLUDED.original_title,
			year = EXCLUDED.year,
			overview = EXCLUDED.overview,
			poster_path = EXCLUDED.poster_path,
			thematic_tags = EXCLUDED.thematic_tags,
			mood_tags = EXCLUDED.mood_tags,
			vote_count = EXCLUDED.vote_count,
			vote_average = EXCLUDED.vote_average,
			popularity = EXCLUDED.popularity,
			runtime = EXCLUDED.runtime,
			is_best_picture_winner = EXCLUDED.is_best_picture_winner,
			is_best_picture_nominee = EXCLUDED.is_best_picture_nominee,
			oscar_year = EXCLUDED.oscar_year`)
	if err != nil {
		return fmt.Errorf("failed to prepare import: %w", err)
	}
	defer stmt.Close()

	for i := range movies {
		m := &movies[i]
		tags, err := json.Marshal(m.ThematicTags)
		if err != nil {
			return fmt.Errorf("failed to encode tags of %s: %w", m.ID, err)
		}
		moods, err := json.Marshal(m.MoodTags)
		if err != nil {
			return fmt.Errorf("failed to encode moods of %s: %w", m.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			m.ID, nullInt(m.TMDBID), m.Title, nullString(m.OriginalTitle), nullInt(m.Year),
			nullString(m.Overview), nullString(m.PosterPath), string(tags), string(moods),
			derefInt(m.VoteCount), derefFloat(m.VoteAverage), derefFloat(m.Popularity), derefInt(m.Runtime),
			m.IsBestPictureWinner, m.IsBestPictureNominee, derefInt(m.OscarYear),
		); err != nil {
			return fmt.Errorf("failed to import movie %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// Ping implements Catalog.
func (d *DuckDB) Ping(ctx context.Context) error {
	return d.conn.PingContext(ctx)
}

// Close is a no-op. The connection belongs to the database package.
func (d *DuckDB) Close() error { return nil }

func (d *DuckDB) queryMovies(ctx context.Context, query string, args ...any) ([]models.Movie, error) {
	rows, err := d.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movies: %w", err)
	}
	return movies, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMovie(s scanner) (*models.Movie, error) {
	var (
		m                          models.Movie
		tmdbID, year               sql.NullInt64
		originalTitle, overview    sql.NullString
		posterPath, tags, moods    sql.NullString
		voteCount, runtime, oscarY sql.NullInt64
		voteAverage, popularity    sql.NullFloat64
	)

	if err := s.Scan(
		&m.ID, &tmdbID, &m.Title, &originalTitle, &year, &overview, &posterPath,
		&tags, &moods, &voteCount, &voteAverage, &popularity, &runtime,
		&m.IsBestPictureWinner, &m.IsBestPictureNominee, &oscarY,
	); err != nil {
		return nil, err
	}

	m.TMDBID = int(tmdbID.Int64)
	m.Year = int(year.Int64)
	m.OriginalTitle = originalTitle.String
	m.Overview = overview.String
	m.PosterPath = posterPath.String
	m.VoteCount = intPtrFrom(voteCount)
	m.Runtime = intPtrFrom(runtime)
	m.OscarYear = intPtrFrom(oscarY)
	m.VoteAverage = floatPtrFrom(voteAverage)
	m.Popularity = floatPtrFrom(popularity)

	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &m.ThematicTags); err != nil {
			return nil, fmt.Errorf("decode thematic_tags of %s: %w", m.ID, err)
		}
	}
	if moods.Valid && moods.String != "" {
		if err := json.Unmarshal([]byte(moods.String), &m.MoodTags); err != nil {
			return nil, fmt.Errorf("decode mood_tags of %s: %w", m.ID, err)
		}
	}
	return &m, nil
}

func intPtrFrom(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func floatPtrFrom(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func derefInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func derefFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt(v int) any {
	if v == 0 {
		return nil
	}
	return v
}

func nullString(v string) any {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return v
}

func jsonQuoted(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return s
	}
	return string(b)
}
