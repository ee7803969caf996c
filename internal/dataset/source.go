package dataset

import (
	"context"

	"github.com/kjet-tools/kjet-recon/pkg/types"
)

// Source fetches the automated-analysis payload for one county. A nil report
// with a nil error means no payload exists for the county, which is a valid
// business outcome and yields County Not Found rows downstream. Malformed
// payloads are logged and reported the same way, never as errors.
type Source interface {
	Fetch(ctx context.Context, county string) (*types.CountyReport, *types.InputDigest, error)
}

// CountyLister enumerates the counties a source can serve, from the
// counties.json manifest when present.
type CountyLister interface {
	Counties(ctx context.Context) ([]string, error)
}

type countiesManifest struct {
	Counties []string `json:"counties"`
}
