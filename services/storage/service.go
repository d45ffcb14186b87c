package storage

import (
	"mime"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/opentracing/opentracing-go"
	"golang.org/x/net/context"

	"github.com/cellstrat/invoicestack/interfaces"
	"github.com/cellstrat/invoicestack/internal/logger"
	"github.com/cellstrat/invoicestack/internal/tracing"
	"github.com/cellstrat/invoicestack/services/storage/aws_client"
)

// ObjectStorageService implements StorageService using S3Client.
// Upload and download failures are swallowed into a boolean plus a log line;
// this is the one pipeline component with non-fatal failure handling.
type ObjectStorageService struct {
	client     aws_client.S3Client
	bucketName string
	log        logger.Logger
}

func NewStorageService(client aws_client.S3Client, bucketName string, log logger.Logger) interfaces.StorageService {
	return &ObjectStorageService{
		client:     client,
		bucketName: bucketName,
		log:        log,
	}
}

func (s *ObjectStorageService) Upload(ctx context.Context, localPath, key string) bool {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ObjectStorageService.Upload")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	span.SetTag("key", key)

	file, err := os.Open(localPath)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("Error uploading file %s: %v", localPath, err)
		return false
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(localPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	err = s.client.Upload(ctx, s3manager.UploadInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("Error uploading file %s to %s: %v", localPath, key, err)
		return false
	}

	return true
}

func (s *ObjectStorageService) Download(ctx context.Context, key, localPath string) bool {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ObjectStorageService.Download")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	span.SetTag("key", key)

	file, err := os.Create(localPath)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("Error downloading %s: %v", key, err)
		return false
	}
	defer file.Close()

	err = s.client.Download(ctx, s.bucketName, key, file)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("Error downloading %s to %s: %v", key, localPath, err)
		return false
	}

	return true
}

func (s *ObjectStorageService) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ObjectStorageService.ListKeys")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	return s.client.ListKeysWithPrefix(ctx, s.bucketName, prefix)
}
