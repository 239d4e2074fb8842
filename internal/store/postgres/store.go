package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type DBStore struct {
	conn *pgx.Conn
}

func NewPostgresStore(dsn string) (*DBStore, error) {
	conn, err := pgx.Connect(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to DB: %w", err)
	}
	dbStore := &DBStore{conn: conn}

	if err := dbStore.CreateTable(); err != nil {
		return nil, err
	}

	return dbStore, nil
}

func (db *DBStore) Get(shortURL string) (string, error) {
	row := db.conn.QueryRow(context.Background(),
		"SELECT original_url FROM shortener WHERE short_url = $1", shortURL)
	var result string
	if err := row.Scan(&result); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("error querying record: %w", err)
	}
	return result, nil
}

func (db *DBStore) GetByOriginal(originalURL string) (string, error) {
	row := db.conn.QueryRow(context.Background(),
		"SELECT short_url FROM shortener WHERE original_url = $1", originalURL)
	var result string
	if err := row.Scan(&result); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("error querying record: %w", err)
	}
	return result, nil
}

// Put inserts a mapping; on an original_url conflict the previously
// stored alias is returned, so re-submission stays idempotent even
// under concurrent writers.
func (db *DBStore) Put(id string, url string) (string, error) {
	row := db.conn.QueryRow(context.Background(), `
		INSERT INTO shortener (uuid, short_url, original_url)
		VALUES (gen_random_uuid(), $1, $2)
		ON CONFLICT (original_url)
		DO UPDATE SET
			original_url=EXCLUDED.original_url
		RETURNING short_url
	`, id, url)
	var result string
	if err := row.Scan(&result); err != nil {
		return "", fmt.Errorf("error inserting record: %w", err)
	}

	return result, nil
}

func (db *DBStore) CreateTable() error {
	_, err := db.conn.Exec(context.Background(), "CREATE TABLE IF NOT EXISTS shortener( "+
		"uuid UUID NOT NULL, "+
		"short_url VARCHAR(255) NOT NULL, "+
		"original_url VARCHAR(2048) PRIMARY KEY "+
		");")
	if err != nil {
		return fmt.Errorf("error creating table: %w", err)
	}
	return nil
}

func (db *DBStore) Ping() error {
	return db.conn.Ping(context.Background())
}

func (db *DBStore) Close() {
	_ = db.conn.Close(context.Background())
}
