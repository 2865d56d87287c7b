package transcribe

import (
	"encoding/json"
	"io"

	"example.com/audioinsights/internal/types"
)

// ParseTranscript decodes a transcript artifact and returns the first
// alternative's text. Malformed documents and documents with no
// alternatives both yield an EmptyTranscriptError for the given key.
func ParseTranscript(r io.Reader, key string) (string, error) {
	var doc types.TranscriptDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return "", &EmptyTranscriptError{Key: key}
	}
	if len(doc.Results.Transcripts) == 0 {
		return "", &EmptyTranscriptError{Key: key}
	}
	return doc.Results.Transcripts[0].Transcript, nil
}
