package transcribe

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/sirupsen/logrus"

	"example.com/audioinsights/internal/sentiment"
	"example.com/audioinsights/internal/store"
	"example.com/audioinsights/internal/types"
)

// Summary is returned to the invoking framework after a successful
// processing run.
type Summary struct {
	AudioFileName  string  `json:"audio_file_name"`
	SentimentScore float64 `json:"sentiment_score"`
}

// Processor reacts to transcript-artifact events: it fetches the artifact,
// extracts the transcript, scores it, and appends one enrichment record.
// Every successful invocation writes exactly one row; there is no update
// path, and retry on failure is the event framework's call.
type Processor struct {
	S3       s3iface.S3API
	Store    *store.EnrichmentStore
	Analyzer *sentiment.Analyzer
	Log      *logrus.Entry
}

// Process handles one artifact at bucket/key and returns a summary of the
// record it wrote.
func (p *Processor) Process(ctx context.Context, bucket, key string) (Summary, error) {
	log := p.Log.WithFields(logrus.Fields{"bucket": bucket, "key": key})

	obj, err := p.S3.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return Summary{}, fmt.Errorf("fetching transcript artifact %q: %w", key, err)
	}
	defer obj.Body.Close()

	text, err := ParseTranscript(obj.Body, key)
	if err != nil {
		return Summary{}, err
	}

	score := p.Analyzer.Compound(text)

	audioFileName := BaseName(key)
	fileType := FileTypeOf(audioFileName)
	log = log.WithFields(logrus.Fields{"audio_file": audioFileName, "score": score})

	if err := p.Store.EnsureSchema(ctx); err != nil {
		return Summary{}, err
	}
	rec := types.EnrichmentRecord{
		AudioFileName:  audioFileName,
		FileType:       fileType,
		Text:           text,
		SentimentScore: score,
	}
	if err := p.Store.Insert(ctx, rec); err != nil {
		return Summary{}, err
	}

	log.Info("enrichment record inserted")
	return Summary{AudioFileName: audioFileName, SentimentScore: score}, nil
}
