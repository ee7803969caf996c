package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kjet-tools/kjet-recon/internal/hash"
	"github.com/kjet-tools/kjet-recon/internal/identity"
	"github.com/kjet-tools/kjet-recon/pkg/types"
)

// LocalSource serves county payloads from a directory of per-county JSON
// files, as published by the analysis pipeline.
type LocalSource struct {
	Dir string
}

// Fetch reads the county's payload file. A missing file is not an error; a
// file that fails to decode is logged and treated as missing.
func (s LocalSource) Fetch(_ context.Context, county string) (*types.CountyReport, *types.InputDigest, error) {
	path := filepath.Join(s.Dir, identity.PayloadFileName(county))
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read county payload %s: %w", path, err)
	}

	report, err := DecodeCountyReport(raw)
	if err != nil {
		log.Warn().Str("county", county).Str("path", path).Err(err).
			Msg("malformed county payload, treating as missing")
		return nil, nil, nil
	}
	sum, _, err := hash.DigestFile(path)
	if err != nil {
		return nil, nil, err
	}
	digest := &types.InputDigest{
		Name:   "llm_payload",
		URI:    path,
		SHA256: sum,
	}
	return report, digest, nil
}

// Counties lists serveable counties from the directory's counties.json
// manifest, falling back to a scan of the payload files.
func (s LocalSource) Counties(_ context.Context) ([]string, error) {
	raw, err := os.ReadFile(filepath.Join(s.Dir, "counties.json"))
	if err == nil {
		var m countiesManifest
		if err := json.Unmarshal(raw, &m); err == nil && len(m.Counties) > 0 {
			return m.Counties, nil
		}
		log.Warn().Str("dir", s.Dir).Msg("unreadable counties.json manifest, scanning directory")
	}

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("scan payload dir %s: %w", s.Dir, err)
	}
	counties := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || name == "counties.json" {
			continue
		}
		counties = append(counties, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(counties)
	return counties, nil
}
