// Package storage implementa el object storage de adjuntos sobre S3
// (o un servicio compatible como MinIO).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appcfg "github.com/grxsoft/crm-api/pkg/config"
)

// S3Store guarda y elimina adjuntos binarios en un bucket S3. La llave
// asignada se referencia desde la entidad dueña (interacciones.adjunto_key).
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store construye el almacén de adjuntos a partir de la configuración.
func NewS3Store(ctx context.Context, cfg appcfg.StorageConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("cargar config AWS: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // requerido por MinIO/LocalStack
		}
	})

	return &S3Store{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// Put sube un adjunto y devuelve (key, url). La llave la asigna el almacén;
// el nombre original solo se conserva como sufijo legible.
func (s *S3Store) Put(ctx context.Context, nombre, contentType string, data []byte) (key, publicURL string, err error) {
	key = s.prefix + uuid.New().String() + "-" + path.Base(nombre)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("s3 put: %w", err)
	}
	return key, s.urlFor(key), nil
}

// Delete elimina un adjunto por su llave. Borrar una llave inexistente no
// es error (S3 responde 204 igualmente).
func (s *S3Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) urlFor(key string) string {
	u := &url.URL{
		Scheme: "https",
		Host:   fmt.Sprintf("%s.s3.amazonaws.com", s.bucket),
		Path:   "/" + key,
	}
	return u.String()
}
