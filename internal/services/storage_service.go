// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/JonathanMaverick/split-chain-backend/internal/config"
	"github.com/JonathanMaverick/split-chain-backend/internal/utils"
)

// StorageService stores receipt images. With AWS credentials configured it
// writes to S3; without them it falls back to the local uploads directory
// for development.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

type UploadResult struct {
	URL  string `json:"url"`
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".heic"}

func NewStorageService(config *config.Config) (*StorageService, error) {
	if config.AWS.AccessKeyID == "" {
		// Return service without S3 for local development
		return &StorageService{config: config}, nil
	}

	// Create AWS session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   config,
	}, nil
}

// StoreReceiptImage persists one receipt image and returns where it lives.
// Objects are keyed by content hash, so re-uploading the same photo reuses
// the same key.
func (s *StorageService) StoreReceiptImage(filename string, data []byte) (*UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !isAllowedImageExtension(ext) {
		return nil, fmt.Errorf("unsupported image type %q", ext)
	}

	key := fmt.Sprintf("receipts/%s%s", utils.HashBytes(data), ext)

	if s.s3Client == nil {
		return s.storeLocal(key, data)
	}

	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.config.AWS.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentTypeForExtension(ext)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:  s.publicURL(key),
		Key:  key,
		Size: int64(len(data)),
	}, nil
}

func (s *StorageService) storeLocal(key string, data []byte) (*UploadResult, error) {
	path := filepath.Join("uploads", key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write local file: %w", err)
	}

	return &UploadResult{
		URL:  "/" + filepath.ToSlash(path),
		Key:  key,
		Size: int64(len(data)),
	}, nil
}

func (s *StorageService) publicURL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return strings.TrimSuffix(s.config.AWS.CloudFrontURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}

func isAllowedImageExtension(ext string) bool {
	for _, allowed := range allowedImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func contentTypeForExtension(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".heic":
		return "image/heic"
	default:
		return "application/octet-stream"
	}
}
