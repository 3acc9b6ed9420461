// Package server exposes the appearance engine over HTTP: analysis of
// uploaded headshots, catalog introspection and a health probe.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"hoopvision/internal/appearance"
	"hoopvision/internal/catalog"
)

// maxImageBytes caps uploaded image bodies. Headshots run well under a
// megabyte; anything bigger is not a headshot.
const maxImageBytes = 8 << 20

// Server routes HTTP traffic to one analyzer and its catalog. Safe for
// concurrent use.
type Server struct {
	analyzer *appearance.Analyzer
	cat      *catalog.Catalog
	log      *zap.Logger
	router   chi.Router
}

// New builds the HTTP surface over an analyzer and the catalog it matches
// against. A nil logger disables request logging.
func New(an *appearance.Analyzer, cat *catalog.Catalog, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{analyzer: an, cat: cat, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/appearance", s.handleAppearance)
		r.Get("/catalog", s.handleCatalog)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAppearance analyzes an uploaded headshot, submitted either as a
// raw image body or as a multipart form's "image" field. Undecodable
// images are not an error: the engine answers with its default result.
func (s *Server) handleAppearance(w http.ResponseWriter, r *http.Request) {
	data, err := readImage(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.analyzer.Analyze(data))
}

func readImage(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImageBytes); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
		f, _, err := r.FormFile("image")
		if err != nil {
			return nil, fmt.Errorf(`multipart field "image": %w`, err)
		}
		defer f.Close()
		return io.ReadAll(f)
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	return data, nil
}

// catalogResponse reports the loaded catalog's shape: how many styles each
// category holds and how they spread across classification buckets.
type catalogResponse struct {
	TotalStyles int               `json:"total_styles"`
	Hair        hairBreakdown     `json:"hair"`
	FacialHair  categoryBreakdown `json:"facial_hair"`
	Accessories categoryBreakdown `json:"accessories"`
}

type hairBreakdown struct {
	Count   int            `json:"count"`
	Volume  map[string]int `json:"volume"`
	Texture map[string]int `json:"texture"`
	Length  map[string]int `json:"length"`
}

type categoryBreakdown struct {
	Count   int            `json:"count"`
	Buckets map[string]int `json:"buckets"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	idx := s.cat.Index()

	resp := catalogResponse{
		TotalStyles: s.cat.TotalStyles,
		Hair: hairBreakdown{
			Count:   len(s.cat.Hair),
			Volume:  make(map[string]int, len(catalog.Volumes)),
			Texture: make(map[string]int, len(catalog.Textures)),
			Length:  make(map[string]int, len(catalog.Lengths)),
		},
		FacialHair: categoryBreakdown{
			Count:   len(s.cat.FacialHair),
			Buckets: make(map[string]int, len(catalog.Densities)),
		},
		Accessories: categoryBreakdown{
			Count:   len(s.cat.Accessories),
			Buckets: make(map[string]int, len(catalog.AccessoryKinds)),
		},
	}
	for _, v := range catalog.Volumes {
		resp.Hair.Volume[v.String()] = len(idx.HairByVolume(v))
	}
	for _, t := range catalog.Textures {
		resp.Hair.Texture[t.String()] = len(idx.HairByTexture(t))
	}
	for _, l := range catalog.Lengths {
		resp.Hair.Length[l.String()] = len(idx.HairByLength(l))
	}
	for _, d := range catalog.Densities {
		resp.FacialHair.Buckets[d.String()] = len(idx.FacialHairByDensity(d))
	}
	for _, k := range catalog.AccessoryKinds {
		resp.Accessories.Buckets[k.String()] = len(idx.AccessoriesByKind(k))
	}
	writeJSON(w, http.StatusOK, resp)
}

// requestLogger emits one structured line per completed request, leveled
// by status class.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		fields := []zap.Field{
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("latency", time.Since(start)),
			zap.String("remote_ip", r.RemoteAddr),
		}
		switch {
		case status >= http.StatusInternalServerError:
			s.log.Error("request completed", fields...)
		case status >= http.StatusBadRequest:
			s.log.Warn("request completed", fields...)
		default:
			s.log.Info("request completed", fields...)
		}
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
