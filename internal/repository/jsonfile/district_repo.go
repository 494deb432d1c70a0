package jsonfile

import (
	"encoding/json"
	"log/slog"
	"os"

	"almocoprodigi/internal/domain"
)

// DistrictCatalogue is the read-only district/municipality reference data,
// loaded once at boot from a static JSON file.
type DistrictCatalogue struct {
	names  []string
	byName map[string][]string
}

// NewDistrictCatalogue reads the catalogue file. A read or parse failure is
// logged and yields an empty catalogue; the application still boots, the
// registration form just offers no district choices.
func NewDistrictCatalogue(path string, logger *slog.Logger) *DistrictCatalogue {
	cat := &DistrictCatalogue{byName: map[string][]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("reading district catalogue", "path", path, "error", err)
		return cat
	}
	var entries []domain.District
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Error("parsing district catalogue", "path", path, "error", err)
		return cat
	}
	for _, e := range entries {
		cat.names = append(cat.names, e.Name)
		cat.byName[e.Name] = e.Municipalities
	}
	return cat
}

func (c *DistrictCatalogue) DistrictNames() []string { return c.names }

func (c *DistrictCatalogue) MunicipalitiesByDistrict() map[string][]string { return c.byName }
