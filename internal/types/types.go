package types

import "time"

// EnrichmentRecord is the durable output of the pipeline: one row per
// successfully processed transcript. Rows are append-only; nothing in the
// pipeline updates or deletes them.
type EnrichmentRecord struct {
	ID             int       `json:"id"`
	AudioFileName  string    `json:"audio_file_name"`
	FileType       string    `json:"file_type"`
	Text           string    `json:"transcription_text"`
	SentimentScore float64   `json:"transcription_sentiment_score"`
	CreatedAt      time.Time `json:"created_at"`
}

// JobHandle identifies one transcription job submitted to the speech
// service, along with the source object it was started for.
type JobHandle struct {
	JobName     string `json:"job_name"`
	Bucket      string `json:"bucket"`
	Key         string `json:"key"`
	MediaFormat string `json:"media_format"`
}

// JobNotification is the fan-out payload published when a job is started.
// Field names are part of the topic contract with downstream consumers.
type JobNotification struct {
	AudioFileName string `json:"audio_file_name"`
	AudioFileType string `json:"audio_file_type"`
	SourceLink    string `json:"source_link"`
	JobName       string `json:"transcription_job_name"`
}

// TranscriptDocument mirrors the artifact the speech service writes to the
// output bucket. Only the first alternative transcript is consumed.
type TranscriptDocument struct {
	JobName string            `json:"jobName"`
	Results TranscriptResults `json:"results"`
}

type TranscriptResults struct {
	Transcripts []TranscriptAlternative `json:"transcripts"`
}

type TranscriptAlternative struct {
	Transcript string `json:"transcript"`
}
