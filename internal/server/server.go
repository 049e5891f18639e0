package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/geo"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/render"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/scene2d"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/spec"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/validation"
)

// Server is the local development server for previewing a wheel.
// The spec is re-read on every request so edits show up on reload.
type Server struct {
	projectPath string
	port        int
	logger      *slog.Logger
	metrics     *Metrics
	svgOptions  render.Options
	variant     string // overrides the spec's variant when set
}

// New creates a server for the given project directory.
func New(projectPath string, port int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		projectPath: projectPath,
		port:        port,
		logger:      logger,
		metrics:     NewMetrics(),
		svgOptions:  render.DefaultOptions(),
	}
}

// WithVariant makes every request render with the named variant instead
// of the one in wheel.yaml. An empty name keeps the spec's choice.
func (s *Server) WithVariant(name string) *Server {
	s.variant = name
	return s
}

// loadSpec reads the project spec and applies the variant override.
func (s *Server) loadSpec() (*spec.WheelSpec, error) {
	ws, err := spec.LoadProject(s.projectPath)
	if err != nil {
		return nil, err
	}
	if s.variant != "" {
		ws.Wheel.Variant = s.variant
	}
	return ws, nil
}

// Handler returns the instrumented request router.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/hit", s.handleHit)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /wheel.svg", s.handleSVG)
	mux.Handle("GET /metrics", s.metrics.Handler())
	mux.HandleFunc("GET /{$}", s.handleIndex)

	return s.instrument(mux)
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("healthwheel server starting", "url", "http://localhost"+addr, "project", s.projectPath)
	return http.ListenAndServe(addr, s.Handler())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		s.metrics.RecordHTTPRequest(r.Method, routeLabel(r), strconv.Itoa(rec.status), elapsed)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", elapsed)
	})
}

// routeLabel names the route that served r without its method. Requests
// no route matched share one label so metric cardinality stays bounded.
func routeLabel(r *http.Request) string {
	p := r.Pattern
	if p == "" {
		return "unmatched"
	}
	if i := strings.IndexByte(p, ' '); i >= 0 {
		p = p[i+1:]
	}
	return p
}

// frameFromQuery reads the t and highlight parameters.
func frameFromQuery(r *http.Request) (scene2d.Frame, error) {
	var frame scene2d.Frame
	q := r.URL.Query()
	if t := q.Get("t"); t != "" {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return frame, fmt.Errorf("invalid t %q: %w", t, err)
		}
		frame.TimeMs = v
	}
	if h := q.Get("highlight"); h != "" {
		for _, id := range strings.Split(h, ",") {
			if id = strings.TrimSpace(id); id != "" {
				frame.Highlight = append(frame.Highlight, id)
			}
		}
	}
	return frame, nil
}

// layout loads the project spec and runs one layout pass. On failure it
// writes the response itself and returns a nil scene.
func (s *Server) layout(w http.ResponseWriter, r *http.Request) (*spec.WheelSpec, *scene2d.Scene) {
	frame, err := frameFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, nil
	}

	ws, err := s.loadSpec()
	if err != nil {
		s.logger.Error("loading spec", "project", s.projectPath, "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return nil, nil
	}

	start := time.Now()
	sc, report := scene2d.Assemble(ws, frame)
	elapsed := time.Since(start)

	if sc == nil {
		s.metrics.RecordLayout(ws.Wheel.Variant, "error", elapsed, len(ws.Entities), 0, 0)
		s.logger.Warn("layout failed", "variant", ws.Wheel.Variant, "summary", report.Summary)
		writeJSON(w, http.StatusUnprocessableEntity, report)
		return nil, nil
	}

	s.metrics.RecordLayout(sc.Metadata.Variant, "ok", elapsed,
		sc.Metadata.EntityCount, len(sc.Connectors), sc.Metadata.ConnectionsDropped)
	return ws, sc
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, indexHTML)
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	_, sc := s.layout(w, r)
	if sc == nil {
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	_, sc := s.layout(w, r)
	if sc == nil {
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := render.SVG(w, sc, s.svgOptions); err != nil {
		s.logger.Error("writing svg", "err", err)
	}
}

func (s *Server) handleHit(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if errX != nil || errY != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("x and y must be numbers"))
		return
	}

	ws, sc := s.layout(w, r)
	if sc == nil {
		return
	}
	id, ok := sc.EntityAt(geo.Pt(x, y))
	resp := map[string]any{
		"hit":     ok,
		"id":      id,
		"related": sc.Related(id),
	}
	if e := ws.EntityByID(id); ok && e != nil {
		resp["entity"] = e
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	ws, err := s.loadSpec()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	report := validation.ValidateSchema(ws)
	if report.Valid {
		sc, layoutReport := scene2d.Assemble(ws, scene2d.Frame{})
		report.Merge(layoutReport)
		if sc != nil {
			report.Merge(scene2d.ValidateScene(sc))
		}
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	ws, err := s.loadSpec()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, ws)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

const indexHTML = `<!DOCTYPE html>
<html><head><title>Health Wheel</title></head>
<body style="margin:0;background:#f7f7f9;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<img id="wheel" src="/wheel.svg" width="480" height="480" alt="wheel">
<script>
const img = document.getElementById("wheel");
const start = performance.now();
setInterval(() => { img.src = "/wheel.svg?t=" + Math.round(performance.now() - start); }, 500);
</script>
</body></html>`
