package storage

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"

	"github.com/cellstrat/invoicestack/config"
	"github.com/cellstrat/invoicestack/interfaces"
	"github.com/cellstrat/invoicestack/internal/logger"
	"github.com/cellstrat/invoicestack/services/storage/aws_client"
)

// NewS3StorageService creates a StorageService configured for AWS S3.
// When no static credentials are configured the SDK default chain is used.
func NewS3StorageService(cfg *config.StorageConfig, log logger.Logger) interfaces.StorageService {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.AccessKeySecret, "")
	}

	s3Client := aws_client.NewS3Client(awsConfig)

	return NewStorageService(s3Client, cfg.BucketName, log)
}
