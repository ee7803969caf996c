package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/kjet-tools/kjet-recon/internal/dataset"
	"github.com/kjet-tools/kjet-recon/internal/identity"
	"github.com/kjet-tools/kjet-recon/internal/reconcile"
	"github.com/kjet-tools/kjet-recon/pkg/types"
)

// Server exposes per-county comparisons over HTTP. The human dataset is
// loaded once at construction; county payloads are fetched per request
// through the source, with singleflight coalescing so one county's fetch and
// reconciliation runs at most once per cache window.
type Server struct {
	cfg         Config
	humans      []types.HumanRecord
	humanDigest types.InputDigest
	source      dataset.Source
	aliases     *identity.Aliases
	cache       *resultCache
	group       singleflight.Group
}

func New(cfg Config, humans []types.HumanRecord, humanDigest types.InputDigest, source dataset.Source, aliases *identity.Aliases) *Server {
	return &Server{
		cfg:         cfg,
		humans:      humans,
		humanDigest: humanDigest,
		source:      source,
		aliases:     aliases,
		cache:       newResultCache(time.Duration(cfg.CacheTTLSeconds) * time.Second),
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /counties", s.handleCounties)
	mux.HandleFunc("GET /counties/{county}/comparison", s.handleComparison)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) handleCounties(w http.ResponseWriter, r *http.Request) {
	lister, ok := s.source.(dataset.CountyLister)
	if !ok {
		http.Error(w, "county listing not supported by this source", http.StatusNotImplemented)
		return
	}
	counties, err := lister.Counties(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list counties")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string]any{"counties": counties})
}

func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	county := r.PathValue("county")
	if county == "" {
		http.Error(w, "county is required", http.StatusBadRequest)
		return
	}
	result, err := s.comparison(r, county)
	if err != nil {
		log.Error().Str("county", county).Err(err).Msg("reconcile county")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, result)
}

func (s *Server) comparison(r *http.Request, county string) (types.CountyComparisonResult, error) {
	key := s.aliases.Canonical(county)
	now := time.Now()
	if result, ok := s.cache.get(key, now); ok {
		return result, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		if result, ok := s.cache.get(key, time.Now()); ok {
			return result, nil
		}
		report, payloadDigest, err := s.source.Fetch(r.Context(), county)
		if err != nil {
			return types.CountyComparisonResult{}, err
		}
		digests := []types.InputDigest{s.humanDigest}
		if payloadDigest != nil {
			digests = append(digests, *payloadDigest)
		}
		result := reconcile.Run(reconcile.Inputs{
			County:  county,
			Humans:  s.humans,
			Report:  report,
			Aliases: s.aliases,
			Digests: digests,
		})
		s.cache.put(key, result, time.Now())
		return result, nil
	})
	if err != nil {
		return types.CountyComparisonResult{}, err
	}
	return v.(types.CountyComparisonResult), nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
