// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so trainer records can be mirrored into, and
// served from, an S3-compatible bucket (AWS S3 or self-hosted MinIO).
//
// # Client Interface
//
// The Client interface narrows the MinIO client to the calls the record
// source needs, which keeps it mockable (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: verify or create the target bucket.
//   - PutObject / GetObject: write and read record payloads.
//   - ListObjects: enumerate records under a prefix.
//   - RemoveObjects: prune records that are no longer listed.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
