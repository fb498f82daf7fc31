package media

import (
	"context"
	"fmt"

	"artag/internal/artag"
	"artag/internal/config"
)

// NewMediaStoreFromConfig creates a MediaStore implementation based on the media config type.
func NewMediaStoreFromConfig(cfg config.MediaConfig) (artag.MediaStore, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "filesystem":
		if cfg.FSRoot == "" {
			return nil, fmt.Errorf("filesystem media store requires fs_root to be set")
		}
		return NewFileSystemStore(cfg.FSRoot, cfg.FSBaseURL)
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("s3 media store requires s3_bucket to be set")
		}
		return NewS3Store(context.Background(), cfg.S3Bucket, cfg.S3Prefix, cfg.S3Region, cfg.S3BaseURL,
			cfg.S3AccessKeyID, cfg.S3SecretAccessKey)
	default:
		return nil, fmt.Errorf("unknown media store type: %s", cfg.Type)
	}
}
