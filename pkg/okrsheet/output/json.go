// Package output serializes run results.
package output

import (
	"encoding/json"
	"os"

	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/inspect"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
)

// Manifest records what a run wrote and, when verified, what was read back.
type Manifest struct {
	Report   *models.Report  `json:"report"`
	Verified *inspect.Result `json:"verified,omitempty"`
}

// ToJSON serializes a manifest.
func ToJSON(m *Manifest, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(m, "", "  ")
	}
	return json.Marshal(m)
}

// WriteFile writes the manifest as indented JSON to path.
func WriteFile(path string, m *Manifest) error {
	data, err := ToJSON(m, true)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
