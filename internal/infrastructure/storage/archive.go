package storage

import "context"

// File is an uploaded archive handed to the storage port.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Archive abstracts photo upload/replace/delete against a blob store.
type Archive interface {
	// Store uploads the file under a container prefix and returns its URL.
	Store(ctx context.Context, container string, file File) (string, error)

	// Remove deletes the object behind url. Empty url is a no-op.
	Remove(ctx context.Context, url, container string) error

	// Edit replaces the object behind oldURL with file: Remove then Store.
	Edit(ctx context.Context, oldURL, container string, file File) (string, error)
}
