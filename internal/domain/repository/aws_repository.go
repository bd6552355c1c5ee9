package repository

import (
	"context"
)

// AWSRepository defines the AWS operations used to publish report artifacts.
type AWSRepository interface {
	GetAccountID(ctx context.Context, profile string) (string, error)
	UploadFile(ctx context.Context, profile, bucket, key, filePath string) (string, error)
	PutFailureEvents(ctx context.Context, profile, logGroup, logStream string, messages []string) error
}
