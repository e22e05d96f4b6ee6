// Package api exposes the stroke analysis pipeline over HTTP. The server
// owns the latest analysis result; the pipeline itself stays stateless.
package api

import (
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/volley-llc/volley-shot-analysis/internal/analysis"
	"github.com/volley-llc/volley-shot-analysis/internal/config"
	"github.com/volley-llc/volley-shot-analysis/internal/httputil"
	"github.com/volley-llc/volley-shot-analysis/internal/monitoring"
	"github.com/volley-llc/volley-shot-analysis/internal/pose"
	"github.com/volley-llc/volley-shot-analysis/internal/report"
	"github.com/volley-llc/volley-shot-analysis/internal/timeutil"
	"github.com/volley-llc/volley-shot-analysis/internal/version"
)

// maxUploadBytes bounds trainee recording uploads.
const maxUploadBytes = 16 * 1024 * 1024

// Server serves analysis requests against an immutable reference
// recording. A new upload supersedes the previous result after its
// pipeline run completes; a failed parse leaves the previous result in
// place.
type Server struct {
	mu        sync.Mutex
	cfg       *config.AnalysisConfig
	clock     timeutil.Clock
	reference []pose.Frame
	latest    analysis.Result
	latestID  string
}

// AnalysisResponse is the envelope returned for analysis results.
type AnalysisResponse struct {
	AnalysisID string                  `json:"analysisId"`
	Demo       bool                    `json:"demo"`
	Comparison analysis.ComparisonData `json:"comparison"`
	Phases     []analysis.PhaseMarker  `json:"phases"`
	Stats      analysis.FormattedStats `json:"stats"`
	Report     analysis.Report         `json:"report"`
}

// NewServer builds a server seeded with a demo-backed result so the API
// never serves an empty state before the first upload.
func NewServer(reference []pose.Frame, cfg *config.AnalysisConfig, clock timeutil.Clock) *Server {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	s := &Server{
		cfg:       cfg,
		clock:     clock,
		reference: reference,
	}
	s.latest = analysis.Analyze(reference, nil, cfg)
	s.latestID = uuid.New().String()
	return s
}

// ServeMux registers all routes and returns the mux.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/analysis", s.handleLatest)
	mux.HandleFunc("/api/phases", s.handlePhases)
	mux.HandleFunc("/api/reference", s.handleReference)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/charts/comparison", s.handleComparisonChart)
	return mux
}

// handleAnalyze accepts a trainee recording upload and runs the pipeline
// against the embedded reference. Malformed JSON aborts the invocation
// with a 400 and keeps the previous result untouched.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}

	start := s.clock.Now()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		httputil.BadRequest(w, "failed to read upload: "+err.Error())
		return
	}

	frames, err := pose.ParseRecording(body)
	if err != nil {
		monitoring.Logf("rejected trainee upload: %v", err)
		httputil.BadRequest(w, "could not read the uploaded recording; please upload a valid JSON pose export")
		return
	}

	result := analysis.Analyze(s.reference, frames, s.cfg)
	id := uuid.New().String()

	s.mu.Lock()
	s.latest = result
	s.latestID = id
	s.mu.Unlock()

	monitoring.Logf("analysis %s: %d trainee frames, demo=%v, score=%d (%s)",
		id, len(frames), result.Demo, result.Report.OverallScore, s.clock.Since(start))

	httputil.WriteJSONOK(w, s.envelope(result, id))
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	s.mu.Lock()
	result, id := s.latest, s.latestID
	s.mu.Unlock()
	httputil.WriteJSONOK(w, s.envelope(result, id))
}

func (s *Server) handlePhases(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteJSONOK(w, analysis.Phases())
}

// handleReference reports shape metadata about the embedded reference
// recording without exposing the raw frames.
func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	set := analysis.ExtractMetrics(s.reference, analysis.SidePro)
	httputil.WriteJSONOK(w, map[string]int{
		"frames":           len(s.reference),
		"wristHipSamples":  len(set.WristHip),
		"rotationSamples":  len(set.Rotation),
		"weightSamples":    len(set.Weight),
		"extensionSamples": len(set.Extension),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONOK(w, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONOK(w, map[string]string{
		"version":   version.Version,
		"gitSha":    version.GitSHA,
		"buildTime": version.BuildTime,
	})
}

// handleComparisonChart renders the latest comparison as an HTML page of
// echarts line charts.
func (s *Server) handleComparisonChart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	result := s.latest
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.RenderComparisonHTML(w, result); err != nil {
		monitoring.Logf("failed to render comparison chart: %v", err)
	}
}

func (s *Server) envelope(result analysis.Result, id string) AnalysisResponse {
	return AnalysisResponse{
		AnalysisID: id,
		Demo:       result.Demo,
		Comparison: result.Comparison,
		Phases:     result.Phases,
		Stats:      result.Stats.Formatted(),
		Report:     result.Report,
	}
}
