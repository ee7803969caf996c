package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kjet-tools/kjet-recon/internal/hash"
	"github.com/kjet-tools/kjet-recon/internal/identity"
	"github.com/kjet-tools/kjet-recon/pkg/types"
)

const maxPayloadBytes = 16 * 1024 * 1024 // 16 MB

// HTTPSource serves county payloads from a published base URL, e.g. the
// static hosting the dashboard reads from.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func (s HTTPSource) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return &http.Client{Timeout: 30 * time.Second}
}

// Fetch retrieves the county's payload. A 404 is not an error; a body that
// fails to decode is logged and treated as missing.
func (s HTTPSource) Fetch(ctx context.Context, county string) (*types.CountyReport, *types.InputDigest, error) {
	u, err := s.resolve(identity.PayloadFileName(county))
	if err != nil {
		return nil, nil, err
	}
	raw, found, err := s.get(ctx, u)
	if err != nil || !found {
		return nil, nil, err
	}

	report, err := DecodeCountyReport(raw)
	if err != nil {
		log.Warn().Str("county", county).Str("url", u).Err(err).
			Msg("malformed county payload, treating as missing")
		return nil, nil, nil
	}
	digest := &types.InputDigest{
		Name:   "llm_payload",
		URI:    u,
		SHA256: hash.DigestBytes(raw),
	}
	return report, digest, nil
}

// Counties fetches the counties.json manifest.
func (s HTTPSource) Counties(ctx context.Context) ([]string, error) {
	u, err := s.resolve("counties.json")
	if err != nil {
		return nil, err
	}
	raw, found, err := s.get(ctx, u)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("no counties manifest at %s", u)
	}
	var m countiesManifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse counties manifest %s: %w", u, err)
	}
	return m.Counties, nil
}

func (s HTTPSource) resolve(name string) (string, error) {
	base, err := url.Parse(strings.TrimSuffix(s.BaseURL, "/") + "/")
	if err != nil {
		return "", fmt.Errorf("parse base url %s: %w", s.BaseURL, err)
	}
	ref, err := url.Parse(name)
	if err != nil {
		return "", fmt.Errorf("parse payload name %s: %w", name, err)
	}
	return base.ResolveReference(ref).String(), nil
}

// get returns (body, found, err); found is false on 404.
func (s HTTPSource) get(ctx context.Context, u string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := s.client().Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("fetch %s: unexpected status %s", u, resp.Status)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", u, err)
	}
	return raw, true, nil
}
