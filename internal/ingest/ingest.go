// Package ingest accepts uploaded audio and lands it in the pipeline's
// source bucket under a collision-free key. Landing an object is what
// kicks off the rest of the pipeline.
package ingest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UnsupportedMediaError rejects uploads that are not one of the supported
// audio formats.
type UnsupportedMediaError struct {
	DeclaredType string
}

func (e *UnsupportedMediaError) Error() string {
	return fmt.Sprintf("unsupported media type %q: only mp3 and wav are accepted", e.DeclaredType)
}

// ObjectKey prefixes the original file name with a fresh uuid so two
// concurrent uploads of the same name never collide.
func ObjectKey(name string) string {
	return uuid.New().String() + "_" + name
}

// LegacyObjectKey is the single-file variant: the original name is dropped
// and only the extension survives.
func LegacyObjectKey(ext string) string {
	return uuid.New().String() + "." + strings.ToLower(ext)
}

// Gateway uploads accepted audio into the landing bucket.
type Gateway struct {
	Uploader s3manageriface.UploaderAPI
	Bucket   string
	Log      *logrus.Entry
}

// Ingest validates the declared media type, generates the object key, and
// stores the blob. On success the object is durably retrievable at the
// returned key and the storage tier emits the object-created event.
func (g *Gateway) Ingest(ctx context.Context, name string, body io.Reader, declaredType string) (string, error) {
	switch strings.ToLower(declaredType) {
	case "mp3", "wav":
	default:
		return "", &UnsupportedMediaError{DeclaredType: declaredType}
	}

	key := ObjectKey(name)
	_, err := g.Uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(g.Bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return "", fmt.Errorf("uploading %q to %s: %w", name, g.Bucket, err)
	}

	g.Log.WithFields(logrus.Fields{"bucket": g.Bucket, "key": key}).Info("audio object ingested")
	return key, nil
}
