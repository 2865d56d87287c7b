package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/transcribeservice"

	"example.com/audioinsights/internal/config"
	"example.com/audioinsights/internal/logger"
	"example.com/audioinsights/internal/transcribe"
)

func main() {
	log := logger.New()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	dispatcher := &transcribe.Dispatcher{
		Transcribe: transcribeservice.New(sess),
		SNS:        sns.New(sess),
		Config:     config.PipelineFromEnv(),
		Log:        log,
	}

	lambda.Start(func(ctx context.Context, event events.S3Event) error {
		var firstErr error
		for _, record := range event.Records {
			bucket := record.S3.Bucket.Name
			key := record.S3.Object.Key
			if _, err := dispatcher.Dispatch(ctx, bucket, key); err != nil {
				log.WithError(err).WithField("key", key).Error("dispatch failed")
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		return firstErr
	})
}
