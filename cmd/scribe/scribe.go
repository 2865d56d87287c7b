package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/cenkalti/backoff/v4"

	"example.com/audioinsights/internal/config"
	"example.com/audioinsights/internal/ingest"
	"example.com/audioinsights/internal/logger"
	"example.com/audioinsights/internal/types"
)

type args struct {
	fileName *string
	name     *string
	api      *string
}

func main() {
	var arg args

	uploadCommand := flag.NewFlagSet("upload", flag.ExitOnError)
	arg.fileName = uploadCommand.String("filename", "", "The audio file to be uploaded")
	arg.name = uploadCommand.String("name", "", "Override for the stored file name")

	probeCommand := flag.NewFlagSet("probe", flag.ExitOnError)
	probeFile := probeCommand.String("filename", "", "The audio file to inspect")

	listCommand := flag.NewFlagSet("list", flag.ExitOnError)
	arg.api = listCommand.String("api", "http://localhost:8080", "Base URL of the reporting frontend")

	if len(os.Args) < 2 {
		fmt.Println("expected one of: upload, probe, list")
		os.Exit(2)
	}

	if err := config.LoadEnv(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "upload":
		uploadCommand.Parse(os.Args[2:])
		err = doUpload(arg)
	case "probe":
		probeCommand.Parse(os.Args[2:])
		err = doProbe(*probeFile)
	case "list":
		listCommand.Parse(os.Args[2:])
		err = doList(*arg.api)
	default:
		fmt.Printf("%q is not a valid command.\n", os.Args[1])
		os.Exit(2)
	}
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func doUpload(arg args) error {
	file, err := os.Open(*arg.fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	name := *arg.name
	if name == "" {
		name = filepath.Base(*arg.fileName)
	}
	declaredType := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")

	if meta, ok := ingest.Probe(file, declaredType); ok {
		fmt.Printf("Duration: %.2f seconds\n", meta.Duration.Seconds())
		fmt.Printf("Bitrate: %d kbps\n", meta.BitrateKbps)
	} else {
		fmt.Println("Warning: could not read audio metadata.")
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))
	gateway := &ingest.Gateway{
		Uploader: s3manager.NewUploader(sess),
		Bucket:   config.IngestFromEnv().LandingBucket,
		Log:      logger.New(),
	}

	// The pipeline itself never retries; the operator CLI may, since a
	// failed attempt lands nothing.
	var key string
	operation := func() error {
		if _, err := file.Seek(0, 0); err != nil {
			return backoff.Permanent(err)
		}
		key, err = gateway.Ingest(context.Background(), name, file, declaredType)
		if err != nil {
			var unsupported *ingest.UnsupportedMediaError
			if errors.As(err, &unsupported) {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4)
	if err := backoff.Retry(operation, policy); err != nil {
		return err
	}

	fmt.Printf("Uploaded to s3://%s/%s\n", gateway.Bucket, key)
	return nil
}

func doProbe(fileName string) error {
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	declaredType := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	meta, ok := ingest.Probe(file, declaredType)
	if !ok {
		fmt.Println("Warning: could not read audio metadata.")
		return nil
	}
	fmt.Printf("Duration: %.2f seconds\n", meta.Duration.Seconds())
	fmt.Printf("Bitrate: %d kbps\n", meta.BitrateKbps)
	return nil
}

func doList(api string) error {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(api + "/transcriptions")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var records []types.EnrichmentRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return err
	}
	for _, rec := range records {
		fmt.Printf("%d\t%s\t%s\t%+.4f\t%s\n",
			rec.ID, rec.AudioFileName, rec.FileType, rec.SentimentScore, rec.CreatedAt.Format(time.RFC3339))
	}
	if len(records) == 0 {
		fmt.Println("No transcriptions yet.")
	}
	return nil
}
