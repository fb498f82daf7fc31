package nfc

import (
	"fmt"

	"artag/internal/artag"
	"artag/internal/config"
)

// NewReaderFromConfig creates a TagReader implementation based on the reader config type.
func NewReaderFromConfig(cfg config.ReaderConfig, logger artag.Logger) (artag.TagReader, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryReader(), nil
	case "libnfc":
		return NewLibNFCReader(cfg.Device, cfg.ReadTimeout(), logger), nil
	default:
		return nil, fmt.Errorf("unknown reader type: %s", cfg.Type)
	}
}
