// Package storage wraps the MinIO client used by the S3 snapshot cache driver.
//
// Client is the subset of minio-go the service needs. It is an interface so the
// snapshot driver can be tested against core/storage/mocks instead of a live
// bucket. NewClient configures strict transport timeouts: a stalled object
// store must degrade into a cache miss, not a hung request.
//
//	client, err := storage.NewClient(cfg)
//	err = storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region)
package storage
