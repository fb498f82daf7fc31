package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"artag/internal/artag"
	"artag/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteDatabase implements the artag.Database interface using SQLite.
type SQLiteDatabase struct {
	db   *sql.DB
	path string
}

// NewSQLiteDatabase creates a new SQLite database connection.
// path can be a file path or ":memory:" for in-memory database.
func NewSQLiteDatabase(path string) (*SQLiteDatabase, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	return &SQLiteDatabase{db: db, path: path}, nil
}

// NewSQLiteDatabaseFromDB wraps an existing database connection.
// The caller is responsible for ensuring the connection is properly configured.
func NewSQLiteDatabaseFromDB(db *sql.DB) *SQLiteDatabase {
	return &SQLiteDatabase{db: db}
}

// OpenConnection opens and configures a SQLite database connection with appropriate PRAGMAs.
// This is exported for use in tools and tests that need a properly configured SQLite connection.
// path can be a file path or ":memory:" for in-memory database.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// DB exposes the underlying connection for migration checks.
func (s *SQLiteDatabase) DB() *sql.DB {
	return s.db
}

// Profile operations

func (s *SQLiteDatabase) CreateProfile(ctx context.Context, p *model.UserProfile) error {
	query := `INSERT INTO user_profiles (id, username, full_name, bio, avatar_url, password_hash, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.Username, p.FullName, p.Bio, p.AvatarURL, p.PasswordHash, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting profile: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) FindProfileByID(ctx context.Context, id string) (*model.UserProfile, error) {
	query := `SELECT id, username, full_name, bio, avatar_url, password_hash, created_at, updated_at
	          FROM user_profiles WHERE id = ?`
	return s.scanProfile(s.db.QueryRowContext(ctx, query, id))
}

func (s *SQLiteDatabase) FindProfileByUsername(ctx context.Context, username string) (*model.UserProfile, error) {
	query := `SELECT id, username, full_name, bio, avatar_url, password_hash, created_at, updated_at
	          FROM user_profiles WHERE username = ?`
	return s.scanProfile(s.db.QueryRowContext(ctx, query, username))
}

func (s *SQLiteDatabase) scanProfile(row *sql.Row) (*model.UserProfile, error) {
	p := &model.UserProfile{}
	err := row.Scan(&p.ID, &p.Username, &p.FullName, &p.Bio, &p.AvatarURL, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding profile: %w", err)
	}
	return p, nil
}

func (s *SQLiteDatabase) UpdateProfile(ctx context.Context, p *model.UserProfile) error {
	query := `UPDATE user_profiles
	          SET username = ?, full_name = ?, bio = ?, avatar_url = ?, updated_at = ?
	          WHERE id = ?`

	_, err := s.db.ExecContext(ctx, query,
		p.Username, p.FullName, p.Bio, p.AvatarURL, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) UpdateProfilePassword(ctx context.Context, id string, passwordHash string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE user_profiles SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	return nil
}

// Artwork operations

func (s *SQLiteDatabase) CreateArtwork(ctx context.Context, a *model.Artwork) error {
	query := `INSERT INTO artworks (id, owner_id, title, artist, year, medium, dimensions, status, image_url, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		a.ID, a.OwnerID, a.Title, a.Artist, a.Year, a.Medium, a.Dimensions, a.Status, a.ImageURL, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting artwork: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) FindArtworkByID(ctx context.Context, id string) (*model.Artwork, error) {
	query := `SELECT id, owner_id, title, artist, year, medium, dimensions, status, image_url, created_at, updated_at
	          FROM artworks WHERE id = ?`

	a := &model.Artwork{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.OwnerID, &a.Title, &a.Artist, &a.Year, &a.Medium, &a.Dimensions, &a.Status, &a.ImageURL, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding artwork: %w", err)
	}
	return a, nil
}

func (s *SQLiteDatabase) ListArtworksByOwner(ctx context.Context, ownerID string) ([]*model.Artwork, error) {
	query := `SELECT id, owner_id, title, artist, year, medium, dimensions, status, image_url, created_at, updated_at
	          FROM artworks WHERE owner_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing artworks: %w", err)
	}
	defer rows.Close()

	var artworks []*model.Artwork
	for rows.Next() {
		a := &model.Artwork{}
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.Title, &a.Artist, &a.Year, &a.Medium, &a.Dimensions, &a.Status, &a.ImageURL, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning artwork: %w", err)
		}
		artworks = append(artworks, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing artworks: %w", err)
	}
	return artworks, nil
}

func (s *SQLiteDatabase) UpdateArtwork(ctx context.Context, a *model.Artwork) error {
	query := `UPDATE artworks
	          SET title = ?, artist = ?, year = ?, medium = ?, dimensions = ?, image_url = ?, updated_at = ?
	          WHERE id = ?`

	_, err := s.db.ExecContext(ctx, query,
		a.Title, a.Artist, a.Year, a.Medium, a.Dimensions, a.ImageURL, a.UpdatedAt, a.ID)
	if err != nil {
		return fmt.Errorf("updating artwork: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) UpdateArtworkStatus(ctx context.Context, id string, status string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE artworks SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("updating artwork status: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) DeleteArtwork(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM artworks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting artwork: %w", err)
	}
	return nil
}

// Certificate operations

func (s *SQLiteDatabase) CreateCertificate(ctx context.Context, c *model.Certificate) error {
	query := `INSERT INTO certificates (id, certificate_id, artwork_id, qr_code_url, blockchain_hash, generated_at)
	          VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		c.ID, c.CertificateID, c.ArtworkID, c.QRCodeURL, c.BlockchainHash, c.GeneratedAt)
	if err != nil {
		return fmt.Errorf("inserting certificate: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) FindCertificateByDisplayID(ctx context.Context, certificateID string) (*model.Certificate, error) {
	query := `SELECT id, certificate_id, artwork_id, qr_code_url, blockchain_hash, generated_at
	          FROM certificates WHERE certificate_id = ?`

	c := &model.Certificate{}
	err := s.db.QueryRowContext(ctx, query, certificateID).Scan(
		&c.ID, &c.CertificateID, &c.ArtworkID, &c.QRCodeURL, &c.BlockchainHash, &c.GeneratedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding certificate: %w", err)
	}
	return c, nil
}

func (s *SQLiteDatabase) ListCertificatesByArtwork(ctx context.Context, artworkID string) ([]*model.Certificate, error) {
	query := `SELECT id, certificate_id, artwork_id, qr_code_url, blockchain_hash, generated_at
	          FROM certificates WHERE artwork_id = ? ORDER BY generated_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, artworkID)
	if err != nil {
		return nil, fmt.Errorf("listing certificates: %w", err)
	}
	defer rows.Close()

	var certs []*model.Certificate
	for rows.Next() {
		c := &model.Certificate{}
		if err := rows.Scan(&c.ID, &c.CertificateID, &c.ArtworkID, &c.QRCodeURL, &c.BlockchainHash, &c.GeneratedAt); err != nil {
			return nil, fmt.Errorf("scanning certificate: %w", err)
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing certificates: %w", err)
	}
	return certs, nil
}

func (s *SQLiteDatabase) CountCertificatesByArtwork(ctx context.Context, artworkID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM certificates WHERE artwork_id = ?`, artworkID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting certificates: %w", err)
	}
	return count, nil
}

func (s *SQLiteDatabase) DeleteCertificate(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM certificates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting certificate: %w", err)
	}
	return nil
}

// Tag operations

func (s *SQLiteDatabase) FindTagByUID(ctx context.Context, uid string) (*model.NFCTag, error) {
	query := `SELECT uid, is_bound, artwork_id, created_at, updated_at
	          FROM nfc_tags WHERE uid = ?`

	t := &model.NFCTag{}
	err := s.db.QueryRowContext(ctx, query, uid).Scan(
		&t.UID, &t.IsBound, &t.ArtworkID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding tag: %w", err)
	}
	return t, nil
}

func (s *SQLiteDatabase) UpsertTag(ctx context.Context, t *model.NFCTag) error {
	query := `INSERT INTO nfc_tags (uid, is_bound, artwork_id, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?)
	          ON CONFLICT(uid) DO UPDATE SET
	              is_bound = excluded.is_bound,
	              artwork_id = excluded.artwork_id,
	              updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		t.UID, t.IsBound, t.ArtworkID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting tag: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) UnbindTagsForArtwork(ctx context.Context, artworkID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE nfc_tags SET is_bound = 0, artwork_id = NULL WHERE artwork_id = ?`, artworkID)
	if err != nil {
		return fmt.Errorf("unbinding tags: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) Close() error {
	return s.db.Close()
}

// Compile-time check that SQLiteDatabase implements artag.Database
var _ artag.Database = (*SQLiteDatabase)(nil)
