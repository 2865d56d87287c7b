package transcribe

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/aws/aws-sdk-go/service/transcribeservice"
	"github.com/aws/aws-sdk-go/service/transcribeservice/transcribeserviceiface"
	"github.com/sirupsen/logrus"

	"example.com/audioinsights/internal/config"
	"example.com/audioinsights/internal/types"
)

// Dispatcher reacts to object-created events by starting one transcription
// job per event. It performs no internal retry: submission failures go back
// to the event framework, which owns redelivery.
type Dispatcher struct {
	Transcribe transcribeserviceiface.TranscribeServiceAPI
	SNS        snsiface.SNSAPI
	Config     config.Pipeline
	Log        *logrus.Entry
}

// Dispatch classifies the object, submits a transcription job for it, and
// announces the job to the fan-out topic when one is configured. The
// announcement is best-effort: by the time it runs the job is already
// started, so a publish failure is logged and swallowed.
func (d *Dispatcher) Dispatch(ctx context.Context, bucket, key string) (types.JobHandle, error) {
	var handle types.JobHandle

	if bucket == "" || key == "" {
		return handle, &JobSubmissionError{Key: key, Err: errMissingLocation}
	}

	format, err := MediaFormatOf(key)
	if err != nil {
		return handle, err
	}

	handle = types.JobHandle{
		JobName:     NewJobName(),
		Bucket:      bucket,
		Key:         key,
		MediaFormat: format,
	}

	input := transcribeservice.StartTranscriptionJobInput{
		TranscriptionJobName: aws.String(handle.JobName),
		Media: &transcribeservice.Media{
			MediaFileUri: aws.String(SourceURI(bucket, key)),
		},
		MediaFormat:  aws.String(format),
		LanguageCode: aws.String(d.Config.LanguageCode),
	}
	if d.Config.OutputBucket != "" {
		input.OutputBucketName = aws.String(d.Config.OutputBucket)
	}

	if _, err := d.Transcribe.StartTranscriptionJobWithContext(ctx, &input); err != nil {
		return types.JobHandle{}, &JobSubmissionError{Key: key, Err: err}
	}

	d.Log.WithFields(logrus.Fields{
		"job":    handle.JobName,
		"bucket": bucket,
		"key":    key,
		"format": format,
	}).Info("transcription job submitted")

	d.announce(ctx, handle)
	return handle, nil
}

func (d *Dispatcher) announce(ctx context.Context, handle types.JobHandle) {
	if d.Config.TopicARN == "" || d.SNS == nil {
		return
	}

	msg := types.JobNotification{
		AudioFileName: handle.Key,
		AudioFileType: handle.MediaFormat,
		SourceLink:    SourceURI(handle.Bucket, handle.Key),
		JobName:       handle.JobName,
	}
	body, err := json.Marshal(msg)
	if err != nil {
		d.Log.WithError(err).WithField("job", handle.JobName).Warn("could not marshal job notification")
		return
	}

	_, err = d.SNS.PublishWithContext(ctx, &sns.PublishInput{
		TopicArn: aws.String(d.Config.TopicARN),
		Message:  aws.String(string(body)),
		Subject:  aws.String("Transcription Job Started"),
	})
	if err != nil {
		d.Log.WithError(err).WithField("job", handle.JobName).Warn("could not publish job notification")
	}
}
