package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineFromEnv_Defaults(t *testing.T) {
	t.Setenv("TRANSCRIBE_LANGUAGE_CODE", "")
	t.Setenv("TRANSCRIBE_OUTPUT_BUCKET", "")
	t.Setenv("SNS_TOPIC_ARN", "")

	cfg := PipelineFromEnv()

	assert.Equal(t, "en-US", cfg.LanguageCode)
	assert.Empty(t, cfg.OutputBucket)
	assert.Empty(t, cfg.TopicARN)
}

func TestPipelineFromEnv_Overrides(t *testing.T) {
	t.Setenv("TRANSCRIBE_LANGUAGE_CODE", "de-DE")
	t.Setenv("TRANSCRIBE_OUTPUT_BUCKET", "intermediate")
	t.Setenv("SNS_TOPIC_ARN", "arn:aws:sns:eu-central-1:000000000000:jobs")

	cfg := PipelineFromEnv()

	assert.Equal(t, "de-DE", cfg.LanguageCode)
	assert.Equal(t, "intermediate", cfg.OutputBucket)
	assert.Equal(t, "arn:aws:sns:eu-central-1:000000000000:jobs", cfg.TopicARN)
}

func TestDatabaseDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "admin")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "transcriptionsdb")

	dsn := DatabaseFromEnv().DSN()

	assert.Equal(t, "host=db.internal port=5432 user=admin password=secret dbname=transcriptionsdb sslmode=disable", dsn)
}

func TestFrontendFromEnv_DefaultPort(t *testing.T) {
	t.Setenv("PORT", "")
	assert.Equal(t, "8080", FrontendFromEnv().Port)

	t.Setenv("PORT", "9000")
	assert.Equal(t, "9000", FrontendFromEnv().Port)
}
