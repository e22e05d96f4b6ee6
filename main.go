// Command volley-shot-analysis serves the stroke comparison API. The
// reference ("pro") recording is embedded at build time; trainee
// recordings arrive as uploads and are analyzed against it.
package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/volley-llc/volley-shot-analysis/internal/api"
	"github.com/volley-llc/volley-shot-analysis/internal/config"
	"github.com/volley-llc/volley-shot-analysis/internal/pose"
	"github.com/volley-llc/volley-shot-analysis/internal/timeutil"
	"github.com/volley-llc/volley-shot-analysis/internal/version"
)

//go:embed static/*
var staticFiles embed.FS

const embeddedReferencePath = "static/pro_reference.json"

var (
	listen        = flag.String("listen", ":8080", "Listen address")
	configPath    = flag.String("config", "", "Optional analysis config JSON file")
	referencePath = flag.String("reference", "", "Override the embedded reference recording with a file")
)

func main() {
	flag.Parse()

	cfg := config.DefaultAnalysisConfig()
	if *configPath != "" {
		loaded, err := config.LoadAnalysisConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}

	reference, err := loadReference(*referencePath)
	if err != nil {
		log.Fatalf("failed to load reference recording: %v", err)
	}
	log.Printf("loaded reference recording: %d frames", len(reference))

	server := api.NewServer(reference, cfg, timeutil.RealClock{})
	httpServer := &http.Server{
		Addr:              *listen,
		Handler:           server.ServeMux(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("volley-shot-analysis %s listening on %s", version.Version, *listen)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Print("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// loadReference reads the pro recording from an override file when given,
// otherwise from the embedded dataset.
func loadReference(path string) ([]pose.Frame, error) {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		data, err = staticFiles.ReadFile(embeddedReferencePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded reference: %w", err)
		}
	}
	return pose.ParseRecording(data)
}
