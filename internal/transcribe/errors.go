package transcribe

import (
	"errors"
	"fmt"
)

var errMissingLocation = errors.New("missing s3 bucket or key")

// UnsupportedFormatError is permanent: the object's extension is not one of
// the supported media formats, and redelivering the event will not help.
type UnsupportedFormatError struct {
	Key    string
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type %q for %q: pipeline only supports mp3 and wav", e.Format, e.Key)
}

// JobSubmissionError covers malformed events and speech-service failures at
// submit time. Treated as transient; the event framework decides whether to
// redeliver.
type JobSubmissionError struct {
	Key string
	Err error
}

func (e *JobSubmissionError) Error() string {
	return fmt.Sprintf("submitting transcription job for %q: %v", e.Key, e.Err)
}

func (e *JobSubmissionError) Unwrap() error { return e.Err }

// EmptyTranscriptError means the artifact held no usable transcript.
// Permanent for that artifact; no record is written.
type EmptyTranscriptError struct {
	Key string
}

func (e *EmptyTranscriptError) Error() string {
	return fmt.Sprintf("no transcription text found in %q", e.Key)
}
