package main

import "example.com/audioinsights/internal/types"

// ReportSummary aggregates the dashboard's headline numbers.
type ReportSummary struct {
	Count             int     `json:"count"`
	AverageSentiment  float64 `json:"average_sentiment"`
	AverageTextLength float64 `json:"average_text_length"`
}

// Summarize computes the dashboard aggregates. A record whose transcript
// text is missing counts as length zero rather than breaking the average.
func Summarize(records []types.EnrichmentRecord) ReportSummary {
	summary := ReportSummary{Count: len(records)}
	if len(records) == 0 {
		return summary
	}

	var sentiment, length float64
	for _, rec := range records {
		sentiment += rec.SentimentScore
		length += float64(len(rec.Text))
	}
	summary.AverageSentiment = sentiment / float64(len(records))
	summary.AverageTextLength = length / float64(len(records))
	return summary
}
