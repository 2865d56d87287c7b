package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/urfave/negroni"

	"example.com/audioinsights/internal/config"
	"example.com/audioinsights/internal/logger"
	"example.com/audioinsights/internal/store"
	"example.com/audioinsights/internal/types"
)

// enrichmentLister is the read-only slice of the store the frontend needs.
// The frontend has no write authority over pipeline state.
type enrichmentLister interface {
	ListAll(ctx context.Context) ([]types.EnrichmentRecord, error)
}

type application struct {
	enrichments enrichmentLister
}

func main() {
	log := logger.New()
	if err := config.LoadEnv(); err != nil {
		log.WithError(err).Fatal("cannot load environment")
	}

	enrichments, err := store.Open(config.DatabaseFromEnv().DSN())
	if err != nil {
		log.WithError(err).Fatal("cannot open enrichment store")
	}
	defer enrichments.Close()

	app := &application{enrichments: enrichments}

	r := mux.NewRouter()
	r.HandleFunc("/ping", PingHandler)
	r.HandleFunc("/transcriptions", app.ListTranscriptionsHandler).Methods("GET")
	r.HandleFunc("/transcriptions/summary", app.SummaryHandler).Methods("GET")

	n := negroni.Classic()
	n.UseHandler(r)
	n.Run(":" + config.FrontendFromEnv().Port)
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, "pong", nil)
}

func (app *application) ListTranscriptionsHandler(w http.ResponseWriter, r *http.Request) {
	records, err := app.enrichments.ListAll(r.Context())
	WriteResponse(w, records, err)
}

func (app *application) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	records, err := app.enrichments.ListAll(r.Context())
	if err != nil {
		WriteResponse(w, nil, err)
		return
	}
	WriteResponse(w, Summarize(records), nil)
}

func WriteResponse(w http.ResponseWriter, body interface{}, err error) {
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}
