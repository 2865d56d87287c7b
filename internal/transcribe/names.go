package transcribe

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// MediaFormatOf classifies an object key by its extension. Only mp3 and wav
// are accepted.
func MediaFormatOf(key string) (string, error) {
	idx := strings.LastIndex(key, ".")
	format := ""
	if idx >= 0 {
		format = strings.ToLower(key[idx+1:])
	}
	switch format {
	case "mp3", "wav":
		return format, nil
	default:
		return "", &UnsupportedFormatError{Key: key, Format: format}
	}
}

// NewJobName generates a fresh globally unique job name. Freshness is
// deliberate: redelivery of the same creation event starts a second job
// under a new name instead of colliding with the first.
func NewJobName() string {
	return "TranscriptionJob-" + uuid.New().String()
}

// FileTypeOf returns the lowercased extension of a file name, without the
// dot. A name with no extension lowercases to itself, matching how the
// enrichment rows have always been keyed.
func FileTypeOf(name string) string {
	idx := strings.LastIndex(name, ".")
	return strings.ToLower(name[idx+1:])
}

// BaseName strips any prefix directories from an object key.
func BaseName(key string) string {
	return path.Base(key)
}

// SourceURI renders the object's s3 location.
func SourceURI(bucket, key string) string {
	return "s3://" + bucket + "/" + key
}
