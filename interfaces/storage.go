package interfaces

import "context"

type StorageService interface {
	// Upload puts the local file under key. Failures are logged and reported
	// as false rather than returned as errors.
	Upload(ctx context.Context, localPath, key string) bool
	// Download fetches key into localPath, same failure contract as Upload.
	Download(ctx context.Context, key, localPath string) bool
	// ListKeys returns every key under prefix, following pagination until
	// the listing is complete.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
