package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/audioinsights/internal/types"
)

type stubLister struct {
	records []types.EnrichmentRecord
	err     error
}

func (s *stubLister) ListAll(ctx context.Context) ([]types.EnrichmentRecord, error) {
	return s.records, s.err
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0.0, summary.AverageSentiment)
	assert.Equal(t, 0.0, summary.AverageTextLength)
}

func TestSummarize(t *testing.T) {
	records := []types.EnrichmentRecord{
		{Text: "I love this", SentimentScore: 0.6},
		{Text: "", SentimentScore: -0.2}, // missing text counts as length 0
	}

	summary := Summarize(records)

	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 0.2, summary.AverageSentiment, 1e-9)
	assert.InDelta(t, 5.5, summary.AverageTextLength, 1e-9)
}

func TestListTranscriptionsHandler_EmptyTable(t *testing.T) {
	app := &application{enrichments: &stubLister{records: []types.EnrichmentRecord{}}}

	rec := httptest.NewRecorder()
	app.ListTranscriptionsHandler(rec, httptest.NewRequest("GET", "/transcriptions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []types.EnrichmentRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Empty(t, got)
}

func TestListTranscriptionsHandler_StoreFailure(t *testing.T) {
	app := &application{enrichments: &stubLister{err: errors.New("store unreachable")}}

	rec := httptest.NewRecorder()
	app.ListTranscriptionsHandler(rec, httptest.NewRequest("GET", "/transcriptions", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "store unreachable")
}

func TestSummaryHandler(t *testing.T) {
	app := &application{enrichments: &stubLister{records: []types.EnrichmentRecord{
		{Text: "fine", SentimentScore: 0.5},
	}}}

	rec := httptest.NewRecorder()
	app.SummaryHandler(rec, httptest.NewRequest("GET", "/transcriptions/summary", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got ReportSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, 0.5, got.AverageSentiment)
	assert.Equal(t, 4.0, got.AverageTextLength)
}
