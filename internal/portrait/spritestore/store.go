// Package spritestore checks that the sprite files named by the catalog
// exist in a directory or an S3-compatible bucket.
package spritestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/louisbranch/crewportrait/internal/platform/timeouts"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store reports whether a sprite object exists under a key such as
// "PortraitSprites/10_Hair_Hair/hair_09_03_female.png".
type Store interface {
	Exists(ctx context.Context, key string) (bool, error)
}

// FSStore reads sprites from a file system.
type FSStore struct {
	fsys fs.FS
}

// NewFSStore wraps fsys.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// NewDirStore reads sprites below dir.
func NewDirStore(dir string) (*FSStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("sprite directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open sprite directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("sprite root %s is not a directory", dir)
	}
	return NewFSStore(os.DirFS(dir)), nil
}

// Exists implements Store.
func (s *FSStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	info, err := fs.Stat(s.fsys, cleanKey(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// S3Config locates a sprite bucket.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	// Prefix is prepended to every key, e.g. "assets/".
	Prefix string
	UseSSL bool
}

// S3Store reads sprites from an S3-compatible bucket.
type S3Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewS3Store creates a read-only store for cfg.
func NewS3Store(cfg S3Config) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	opts := &minio.Options{Secure: cfg.UseSSL, Region: region}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access != "" || secret != "" {
		opts.Creds = credentials.NewStaticV4(access, secret, "")
	} else {
		opts.Creds = credentials.NewEnvAWS()
	}
	client, err := minio.New(endpoint, opts)
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	return &S3Store{client: client, bucket: bucket, prefix: strings.Trim(strings.TrimSpace(cfg.Prefix), "/")}, nil
}

// Exists implements Store. Each lookup is capped by timeouts.SpriteStat.
func (s *S3Store) Exists(ctx context.Context, key string) (bool, error) {
	statCtx, cancel := context.WithTimeout(ctx, timeouts.SpriteStat)
	defer cancel()
	_, err := s.client.StatObject(statCtx, s.bucket, s.objectKey(key), minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", key, err)
}

func (s *S3Store) objectKey(key string) string {
	if s.prefix == "" {
		return cleanKey(key)
	}
	return s.prefix + "/" + cleanKey(key)
}

func cleanKey(key string) string {
	return strings.TrimPrefix(path.Clean("/"+strings.TrimSpace(key)), "/")
}
