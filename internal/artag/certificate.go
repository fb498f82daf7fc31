package artag

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/url"

	"artag/internal/model"
)

// qrRenderEndpoint renders an arbitrary payload as a QR image. The stored
// qr_code_url is a link to this service; no QR image is generated locally.
const qrRenderEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// IssueCertificate creates a certificate of authenticity for the artwork and
// flips its status to verified. The status transition is maintained here and
// in RevokeCertificate only — best-effort, no transactional guarantee.
func (s *RegistryService) IssueCertificate(ctx context.Context, artworkID string) (*model.Certificate, error) {
	a, err := s.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	id := s.idgen.New()
	c := &model.Certificate{
		ID:             id,
		CertificateID:  certificateDisplayID(now.Year(), id),
		ArtworkID:      a.ID,
		BlockchainHash: placeholderHash(a.ID, id, now.UnixNano()),
		GeneratedAt:    now,
	}
	c.QRCodeURL = qrCodeURL(c.CertificateID, a.ID)

	if err := s.database.CreateCertificate(ctx, c); err != nil {
		return nil, fmt.Errorf("creating certificate: %w", err)
	}

	if err := s.database.UpdateArtworkStatus(ctx, a.ID, model.StatusVerified); err != nil {
		return nil, fmt.Errorf("marking artwork verified: %w", err)
	}

	s.logger.Info("certificate issued", "certificate", c.CertificateID, "artwork", a.ID)
	return c, nil
}

// RevokeCertificate deletes the certificate with the given display id. When
// it was the artwork's last certificate, the artwork drops back to
// unverified.
func (s *RegistryService) RevokeCertificate(ctx context.Context, certificateID string) error {
	c, err := s.database.FindCertificateByDisplayID(ctx, certificateID)
	if err != nil {
		return fmt.Errorf("finding certificate: %w", err)
	}
	if c == nil {
		return fmt.Errorf("certificate %s: %w", certificateID, ErrNotFound)
	}

	if err := s.database.DeleteCertificate(ctx, c.ID); err != nil {
		return fmt.Errorf("deleting certificate: %w", err)
	}

	remaining, err := s.database.CountCertificatesByArtwork(ctx, c.ArtworkID)
	if err != nil {
		return fmt.Errorf("counting certificates: %w", err)
	}
	if remaining == 0 {
		if err := s.database.UpdateArtworkStatus(ctx, c.ArtworkID, model.StatusUnverified); err != nil {
			return fmt.Errorf("marking artwork unverified: %w", err)
		}
	}

	s.logger.Info("certificate revoked", "certificate", certificateID, "artwork", c.ArtworkID)
	return nil
}

// ListCertificates returns the artwork's certificates, newest first.
func (s *RegistryService) ListCertificates(ctx context.Context, artworkID string) ([]*model.Certificate, error) {
	return s.database.ListCertificatesByArtwork(ctx, artworkID)
}

// certificateDisplayID builds the human-facing certificate id,
// e.g. "COA-2026-1A2B3C4D". The hex segment is derived from the row id.
func certificateDisplayID(year int, rowID string) string {
	h := fnv.New32a()
	h.Write([]byte(rowID))
	return fmt.Sprintf("COA-%d-%08X", year, h.Sum32())
}

// placeholderHash produces a 64-hex-digit stand-in for a blockchain record
// hash. No ledger exists; the value only needs to look like one and stay
// stable for a given certificate.
func placeholderHash(artworkID string, certID string, nanos int64) string {
	out := "0x"
	seed := fmt.Sprintf("%s:%s:%d", artworkID, certID, nanos)
	for round := 0; round < 4; round++ {
		h := fnv.New64a()
		fmt.Fprintf(h, "%s:%d", seed, round)
		out += fmt.Sprintf("%016x", h.Sum64())
	}
	return out
}

// qrCodeURL builds a link that renders the certificate verification payload
// as a QR image.
func qrCodeURL(certificateID string, artworkID string) string {
	v := url.Values{}
	v.Set("size", "300x300")
	v.Set("data", fmt.Sprintf("artag:cert:%s:artwork:%s", certificateID, artworkID))
	return qrRenderEndpoint + "?" + v.Encode()
}
