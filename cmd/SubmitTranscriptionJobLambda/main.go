// Direct-invoke variant of the dispatcher: callers hand it an explicit
// bucket/key pair instead of an S3 notification. Used by operators to
// resubmit an object and by the intermediate-bucket flow, where the
// transcript artifact is routed to TRANSCRIBE_OUTPUT_BUCKET.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/transcribeservice"

	"example.com/audioinsights/internal/config"
	"example.com/audioinsights/internal/logger"
	"example.com/audioinsights/internal/transcribe"
)

type request struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

type response struct {
	JobName string `json:"job_name"`
	Bucket  string `json:"bucket"`
	Key     string `json:"key"`
}

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

	lambda.Start(func(ctx context.Context, req request) (response, error) {
		handle, err := dispatcher.Dispatch(ctx, req.Bucket, req.Key)
		if err != nil {
			log.WithError(err).WithField("key", req.Key).Error("dispatch failed")
			return response{}, err
		}
		return response{JobName: handle.JobName, Bucket: handle.Bucket, Key: handle.Key}, nil
	})
}
