package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SaideLeon/nativespeak-api/internal/config"
	"github.com/SaideLeon/nativespeak-api/internal/util"
	"github.com/SaideLeon/nativespeak-api/pkg/logger"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider stores uploaded media (audio clips, icons) and hands back a
// servable URL.
type StorageProvider interface {
	Save(ctx context.Context, file *multipart.FileHeader, objectName string) (string, error)
	Delete(ctx context.Context, objectName string) error
}

// StorageService routes uploads to the configured provider and enforces the
// media type whitelist.
type StorageService struct {
	provider StorageProvider
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	switch cfg.Storage.Type {
	case util.StorageLocal, "":
		return &StorageService{provider: &localProvider{basePath: cfg.Storage.LocalPath}}, nil
	case util.StorageMinio:
		provider, err := newMinioProvider(cfg)
		if err != nil {
			return nil, err
		}
		return &StorageService{provider: provider}, nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Storage.Type)
	}
}

// SaveImage stores an image upload after extension validation.
func (s *StorageService) SaveImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return s.save(ctx, file, util.AllowedImageExtensions, "images")
}

// SaveAudio stores an audio upload after extension validation.
func (s *StorageService) SaveAudio(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return s.save(ctx, file, util.AllowedAudioExtensions, "audio")
}

func (s *StorageService) Delete(ctx context.Context, objectName string) error {
	return s.provider.Delete(ctx, objectName)
}

func (s *StorageService) save(ctx context.Context, file *multipart.FileHeader, allowed []string, prefix string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extensionAllowed(ext, allowed) {
		return "", fmt.Errorf("file type %s is not allowed", ext)
	}

	objectName := fmt.Sprintf("%s/%s/%s%s", prefix, time.Now().Format("2006/01"), uuid.New().String(), ext)
	url, err := s.provider.Save(ctx, file, objectName)
	if err != nil {
		logger.Log.Error("upload failed", zap.String("object", objectName), zap.Error(err))
		return "", err
	}
	return url, nil
}

func extensionAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

type localProvider struct {
	basePath string
}

func (p *localProvider) Save(ctx context.Context, file *multipart.FileHeader, objectName string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	fullPath := filepath.Join(p.basePath, objectName)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + objectName, nil
}

func (p *localProvider) Delete(ctx context.Context, objectName string) error {
	return os.Remove(filepath.Join(p.basePath, strings.TrimPrefix(objectName, "/uploads/")))
}

type minioProvider struct {
	client *minio.Client
	bucket string
}

func newMinioProvider(cfg *config.Config) (*minioProvider, error) {
	client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Storage.MinioBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Storage.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &minioProvider{client: client, bucket: cfg.Storage.MinioBucket}, nil
}

func (p *minioProvider) Save(ctx context.Context, file *multipart.FileHeader, objectName string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = p.client.PutObject(ctx, p.bucket, objectName, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/%s/%s", p.bucket, objectName), nil
}

func (p *minioProvider) Delete(ctx context.Context, objectName string) error {
	return p.client.RemoveObject(ctx, p.bucket, strings.TrimPrefix(objectName, "/"+p.bucket+"/"), minio.RemoveObjectOptions{})
}
