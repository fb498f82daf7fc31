package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"artag/internal/database/migrations"
	"artag/internal/model"
)

func newTestDB(t *testing.T) *SQLiteDatabase {
	t.Helper()

	sqlDB, err := OpenConnection(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	if err := migrations.MigrateUp(sqlDB); err != nil {
		sqlDB.Close()
		t.Fatalf("migrating: %v", err)
	}

	db := NewSQLiteDatabaseFromDB(sqlDB)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedProfile(t *testing.T, db *SQLiteDatabase, id, username string) *model.UserProfile {
	t.Helper()

	now := time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)
	p := &model.UserProfile{
		ID:           id,
		Username:     username,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.CreateProfile(context.Background(), p); err != nil {
		t.Fatalf("CreateProfile() error: %v", err)
	}
	return p
}

func seedArtworkRow(t *testing.T, db *SQLiteDatabase, id, ownerID, title string) *model.Artwork {
	t.Helper()

	now := time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)
	a := &model.Artwork{
		ID:        id,
		OwnerID:   ownerID,
		Title:     title,
		Status:    model.StatusUnverified,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateArtwork(context.Background(), a); err != nil {
		t.Fatalf("CreateArtwork() error: %v", err)
	}
	return a
}

func TestProfileRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedProfile(t, db, "u1", "alice")

	t.Run("find by id", func(t *testing.T) {
		p, err := db.FindProfileByID(ctx, "u1")
		if err != nil {
			t.Fatalf("FindProfileByID() error: %v", err)
		}
		if p == nil || p.Username != "alice" {
			t.Errorf("profile = %+v, want alice", p)
		}
	})

	t.Run("find by username", func(t *testing.T) {
		p, err := db.FindProfileByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("FindProfileByUsername() error: %v", err)
		}
		if p == nil || p.ID != "u1" {
			t.Errorf("profile = %+v, want u1", p)
		}
	})

	t.Run("absence is nil not error", func(t *testing.T) {
		p, err := db.FindProfileByID(ctx, "nope")
		if err != nil {
			t.Fatalf("FindProfileByID() error: %v", err)
		}
		if p != nil {
			t.Errorf("profile = %+v, want nil", p)
		}
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		now := time.Now()
		err := db.CreateProfile(ctx, &model.UserProfile{
			ID: "u2", Username: "alice", PasswordHash: "h", CreatedAt: now, UpdatedAt: now,
		})
		if err == nil {
			t.Error("CreateProfile() with duplicate username succeeded, want error")
		}
	})

	t.Run("update password", func(t *testing.T) {
		if err := db.UpdateProfilePassword(ctx, "u1", "newhash"); err != nil {
			t.Fatalf("UpdateProfilePassword() error: %v", err)
		}
		p, _ := db.FindProfileByID(ctx, "u1")
		if p.PasswordHash != "newhash" {
			t.Errorf("PasswordHash = %q, want newhash", p.PasswordHash)
		}
	})
}

func TestArtworkRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedProfile(t, db, "u1", "alice")
	seedArtworkRow(t, db, "a1", "u1", "Sunset")

	t.Run("find", func(t *testing.T) {
		a, err := db.FindArtworkByID(ctx, "a1")
		if err != nil {
			t.Fatalf("FindArtworkByID() error: %v", err)
		}
		if a == nil || a.Title != "Sunset" {
			t.Errorf("artwork = %+v, want Sunset", a)
		}
	})

	t.Run("status check constraint", func(t *testing.T) {
		now := time.Now()
		err := db.CreateArtwork(ctx, &model.Artwork{
			ID: "bad", OwnerID: "u1", Title: "Bad", Status: "pending",
			CreatedAt: now, UpdatedAt: now,
		})
		if err == nil {
			t.Error("CreateArtwork() with invalid status succeeded, want error")
		}
	})

	t.Run("update status", func(t *testing.T) {
		if err := db.UpdateArtworkStatus(ctx, "a1", model.StatusVerified); err != nil {
			t.Fatalf("UpdateArtworkStatus() error: %v", err)
		}
		a, _ := db.FindArtworkByID(ctx, "a1")
		if a.Status != model.StatusVerified {
			t.Errorf("Status = %q, want verified", a.Status)
		}
	})

	t.Run("list by owner newest first", func(t *testing.T) {
		later := &model.Artwork{
			ID: "a2", OwnerID: "u1", Title: "Later", Status: model.StatusUnverified,
			CreatedAt: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		}
		if err := db.CreateArtwork(ctx, later); err != nil {
			t.Fatalf("CreateArtwork() error: %v", err)
		}

		artworks, err := db.ListArtworksByOwner(ctx, "u1")
		if err != nil {
			t.Fatalf("ListArtworksByOwner() error: %v", err)
		}
		if len(artworks) != 2 {
			t.Fatalf("got %d artworks, want 2", len(artworks))
		}
		if artworks[0].ID != "a2" {
			t.Errorf("first artwork = %s, want newest (a2)", artworks[0].ID)
		}
	})
}

func TestCertificateCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedProfile(t, db, "u1", "alice")
	seedArtworkRow(t, db, "a1", "u1", "Sunset")

	cert := &model.Certificate{
		ID:            "c1",
		CertificateID: "COA-2025-0000AAAA",
		ArtworkID:     "a1",
		GeneratedAt:   time.Now(),
	}
	if err := db.CreateCertificate(ctx, cert); err != nil {
		t.Fatalf("CreateCertificate() error: %v", err)
	}

	count, err := db.CountCertificatesByArtwork(ctx, "a1")
	if err != nil {
		t.Fatalf("CountCertificatesByArtwork() error: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	// Deleting the artwork cascades to its certificates.
	if err := db.DeleteArtwork(ctx, "a1"); err != nil {
		t.Fatalf("DeleteArtwork() error: %v", err)
	}

	c, err := db.FindCertificateByDisplayID(ctx, "COA-2025-0000AAAA")
	if err != nil {
		t.Fatalf("FindCertificateByDisplayID() error: %v", err)
	}
	if c != nil {
		t.Errorf("certificate survived artwork delete: %+v", c)
	}
}

func TestTagRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedProfile(t, db, "u1", "alice")
	seedArtworkRow(t, db, "a1", "u1", "Sunset")

	now := time.Now()
	tag := &model.NFCTag{
		UID:       "04A1B2C3",
		IsBound:   true,
		ArtworkID: sql.NullString{String: "a1", Valid: true},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.UpsertTag(ctx, tag); err != nil {
		t.Fatalf("UpsertTag() error: %v", err)
	}

	t.Run("upsert updates in place", func(t *testing.T) {
		tag.IsBound = false
		tag.ArtworkID = sql.NullString{}
		if err := db.UpsertTag(ctx, tag); err != nil {
			t.Fatalf("UpsertTag() second error: %v", err)
		}

		got, err := db.FindTagByUID(ctx, "04A1B2C3")
		if err != nil {
			t.Fatalf("FindTagByUID() error: %v", err)
		}
		if got.IsBound || got.ArtworkID.Valid {
			t.Errorf("tag = %+v, want unbound", got)
		}
	})

	t.Run("unbind by artwork", func(t *testing.T) {
		tag.IsBound = true
		tag.ArtworkID = sql.NullString{String: "a1", Valid: true}
		if err := db.UpsertTag(ctx, tag); err != nil {
			t.Fatalf("UpsertTag() error: %v", err)
		}

		if err := db.UnbindTagsForArtwork(ctx, "a1"); err != nil {
			t.Fatalf("UnbindTagsForArtwork() error: %v", err)
		}

		got, _ := db.FindTagByUID(ctx, "04A1B2C3")
		if got.IsBound || got.ArtworkID.Valid {
			t.Errorf("tag = %+v, want unbound", got)
		}
	})

	t.Run("artwork delete sets binding null", func(t *testing.T) {
		tag.IsBound = true
		tag.ArtworkID = sql.NullString{String: "a1", Valid: true}
		if err := db.UpsertTag(ctx, tag); err != nil {
			t.Fatalf("UpsertTag() error: %v", err)
		}

		if err := db.DeleteArtwork(ctx, "a1"); err != nil {
			t.Fatalf("DeleteArtwork() error: %v", err)
		}

		got, err := db.FindTagByUID(ctx, "04A1B2C3")
		if err != nil {
			t.Fatalf("FindTagByUID() error: %v", err)
		}
		if got == nil {
			t.Fatal("tag row deleted with artwork, want it kept")
		}
		if got.ArtworkID.Valid {
			t.Errorf("ArtworkID = %+v, want NULL after artwork delete", got.ArtworkID)
		}
	})
}
