package report

import (
	"encoding/json"
	"os"

	"github.com/kjet-tools/kjet-recon/pkg/types"
)

func WriteJSON(path string, r types.CountyComparisonResult) error {
	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
