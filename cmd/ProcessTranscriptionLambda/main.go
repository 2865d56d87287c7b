package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"example.com/audioinsights/internal/config"
	"example.com/audioinsights/internal/logger"
	"example.com/audioinsights/internal/sentiment"
	"example.com/audioinsights/internal/store"
	"example.com/audioinsights/internal/transcribe"
)

func main() {
	log := logger.New()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	enrichments, err := store.Open(config.DatabaseFromEnv().DSN())
	if err != nil {
		log.WithError(err).Fatal("cannot open enrichment store")
	}
	defer enrichments.Close()

	processor := &transcribe.Processor{
		S3:       s3.New(sess),
		Store:    enrichments,
		Analyzer: sentiment.NewAnalyzer(),
		Log:      log,
	}

	lambda.Start(func(ctx context.Context, event events.S3Event) (transcribe.Summary, error) {
		var summary transcribe.Summary
		var firstErr error
		for _, record := range event.Records {
			bucket := record.S3.Bucket.Name
			key := record.S3.Object.Key
			s, err := processor.Process(ctx, bucket, key)
			if err != nil {
				log.WithError(err).WithField("key", key).Error("processing transcript failed")
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			summary = s
		}
		return summary, firstErr
	})
}
