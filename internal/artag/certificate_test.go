package artag_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"artag/internal/artag"
	"artag/internal/model"
)

func TestIssueCertificate(t *testing.T) {
	f := newFixture(t)
	owner := f.seedOwner(t, "gallery")
	artwork := f.seedArtwork(t, owner.ID, "Verified Piece")
	ctx := context.Background()

	cert, err := f.service.IssueCertificate(ctx, artwork.ID)
	if err != nil {
		t.Fatalf("IssueCertificate() error: %v", err)
	}

	t.Run("display id format", func(t *testing.T) {
		// COA-<year>-<8 hex digits>
		re := regexp.MustCompile(`^COA-2025-[0-9A-F]{8}$`)
		if !re.MatchString(cert.CertificateID) {
			t.Errorf("CertificateID = %q, want COA-2025-XXXXXXXX", cert.CertificateID)
		}
	})

	t.Run("placeholder hash shape", func(t *testing.T) {
		re := regexp.MustCompile(`^0x[0-9a-f]{64}$`)
		if !re.MatchString(cert.BlockchainHash) {
			t.Errorf("BlockchainHash = %q, want 0x + 64 hex digits", cert.BlockchainHash)
		}
	})

	t.Run("qr code url carries the payload", func(t *testing.T) {
		if cert.QRCodeURL == "" {
			t.Fatal("QRCodeURL empty")
		}
	})

	t.Run("artwork flips to verified", func(t *testing.T) {
		a, err := f.service.GetArtwork(ctx, artwork.ID)
		if err != nil {
			t.Fatalf("GetArtwork() error: %v", err)
		}
		if a.Status != model.StatusVerified {
			t.Errorf("Status = %q, want %q", a.Status, model.StatusVerified)
		}
	})
}

func TestRevokeCertificate(t *testing.T) {
	ctx := context.Background()

	t.Run("revoking the last certificate unverifies the artwork", func(t *testing.T) {
		f := newFixture(t)
		owner := f.seedOwner(t, "gallery")
		artwork := f.seedArtwork(t, owner.ID, "Piece")

		cert, err := f.service.IssueCertificate(ctx, artwork.ID)
		if err != nil {
			t.Fatalf("IssueCertificate() error: %v", err)
		}

		if err := f.service.RevokeCertificate(ctx, cert.CertificateID); err != nil {
			t.Fatalf("RevokeCertificate() error: %v", err)
		}

		a, err := f.service.GetArtwork(ctx, artwork.ID)
		if err != nil {
			t.Fatalf("GetArtwork() error: %v", err)
		}
		if a.Status != model.StatusUnverified {
			t.Errorf("Status = %q, want %q", a.Status, model.StatusUnverified)
		}
	})

	t.Run("revoking one of several keeps the artwork verified", func(t *testing.T) {
		f := newFixture(t)
		owner := f.seedOwner(t, "gallery")
		artwork := f.seedArtwork(t, owner.ID, "Piece")

		first, err := f.service.IssueCertificate(ctx, artwork.ID)
		if err != nil {
			t.Fatalf("IssueCertificate() first error: %v", err)
		}
		f.clock.Advance(1) // distinct nanos for the second hash
		if _, err := f.service.IssueCertificate(ctx, artwork.ID); err != nil {
			t.Fatalf("IssueCertificate() second error: %v", err)
		}

		if err := f.service.RevokeCertificate(ctx, first.CertificateID); err != nil {
			t.Fatalf("RevokeCertificate() error: %v", err)
		}

		a, err := f.service.GetArtwork(ctx, artwork.ID)
		if err != nil {
			t.Fatalf("GetArtwork() error: %v", err)
		}
		if a.Status != model.StatusVerified {
			t.Errorf("Status = %q, want %q", a.Status, model.StatusVerified)
		}

		certs, err := f.service.ListCertificates(ctx, artwork.ID)
		if err != nil {
			t.Fatalf("ListCertificates() error: %v", err)
		}
		if len(certs) != 1 {
			t.Errorf("certificates remaining = %d, want 1", len(certs))
		}
	})

	t.Run("unknown certificate id", func(t *testing.T) {
		f := newFixture(t)
		err := f.service.RevokeCertificate(ctx, "COA-2025-FFFFFFFF")
		if !errors.Is(err, artag.ErrNotFound) {
			t.Errorf("RevokeCertificate() error = %v, want ErrNotFound", err)
		}
	})
}
