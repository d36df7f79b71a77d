package swatchgen

import (
	"database/sql/driver"
	"encoding/json"
)

const ManifestVersion = "1"

type ManifestColor struct {
	Name string  `json:"name"`
	Hex  string  `json:"hex"`
	R    float64 `json:"r"`
	G    float64 `json:"g"`
	B    float64 `json:"b"`
	H    float64 `json:"h"`
	S    float64 `json:"s"`
	V    float64 `json:"v"`
	Line int     `json:"line"`
}

type Manifest struct {
	Version      string           `json:"version"`
	Source       string           `json:"source"`
	Fingerprint  string           `json:"fingerprint"`
	Package      string           `json:"package"`
	TypeName     string           `json:"type_name"`
	LegacySyntax bool             `json:"legacy_syntax"`
	GenerateMap  bool             `json:"generate_map"`
	Stats        Stats            `json:"stats"`
	Colors       []*ManifestColor `json:"colors"`
	Preview      string           `json:"preview,omitempty"`

	// Output is the generated source; it is not part of the JSON document.
	Output []byte `json:"-"`
}

// GetColorByName returns the manifest entry for name or nil.
func (m *Manifest) GetColorByName(name string) *ManifestColor {
	for _, c := range m.Colors {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Scan reads a manifest stored as a JSON column.
func (m *Manifest) Scan(src interface{}) error {
	return JsonScan(src, m)
}

func (m Manifest) Value() (driver.Value, error) {
	return json.Marshal(m)
}
