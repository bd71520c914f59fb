package upload

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Provider implements blob storage on AWS S3
type S3Provider struct {
	client     *s3.Client
	bucketName string
	region     string
	baseURL    string
}

// NewS3Provider creates a new AWS S3 provider
func NewS3Provider(accessKeyID, secretAccessKey, region, bucketName string) (*S3Provider, error) {
	ctx := context.Background()

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	baseURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucketName, region)

	return &S3Provider{
		client:     client,
		bucketName: bucketName,
		region:     region,
		baseURL:    baseURL,
	}, nil
}

func (p *S3Provider) GetProviderName() string {
	return "S3"
}

// Upload stores the file on S3 under folder/filename with public-read ACL
func (p *S3Provider) Upload(file io.Reader, filename, folder string) (*UploadResult, error) {
	ctx := context.Background()

	key := path.Join(folder, filename)
	contentType := detectContentType(filepath.Ext(filename))

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
		ACL:         "public-read",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("%s/%s", p.baseURL, key)

	return &UploadResult{
		URL:      publicURL,
		FileName: filename,
		PublicID: key,
	}, nil
}

func (p *S3Provider) Delete(publicID string) error {
	ctx := context.Background()

	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucketName),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}

	return nil
}

func (p *S3Provider) GetURL(publicID string) string {
	return fmt.Sprintf("%s/%s", p.baseURL, publicID)
}
