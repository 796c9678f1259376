package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"avaliadores_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3ResultStore keeps one JSON artifact per solicitação in an S3 bucket under
// resultados/<uuid>.json. The locator is the object key.
//
// S3 PutObject only acknowledges after the object is durable, which satisfies
// the store contract; retried writes use the same key with the same content.

type S3ResultStore struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IResultStore = (*S3ResultStore)(nil)

func NewS3ResultStore(client *s3.Client, bucket string) *S3ResultStore {
	return &S3ResultStore{client: client, bucket: bucket}
}

// ConnectS3 creates an S3 client from the shared AWS config.
//
// S3_ENDPOINT switches to a local object store (e.g. MinIO/LocalStack), which
// also requires path-style addressing.
func ConnectS3(cfg aws.Config) *s3.Client {
	endpoint := os.Getenv("S3_ENDPOINT")
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

func (s *S3ResultStore) Put(ctx context.Context, key string, payload json.RawMessage) (string, error) {
	objectKey := fmt.Sprintf("resultados/%s.json", key)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", err
	}

	log.Printf("[store][s3] saved resultado bucket=%s key=%s bytes=%d", s.bucket, objectKey, len(payload))
	return objectKey, nil
}

func (s *S3ResultStore) Get(ctx context.Context, locator string) (json.RawMessage, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(locator),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, interfaces.ErrResultNotFound
		}
		return nil, err
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(b) {
		log.Printf("[store][s3] corrupt resultado bucket=%s key=%s", s.bucket, locator)
		return nil, interfaces.ErrResultNotFound
	}
	return b, nil
}
