package catalogfile

import (
	"bytes"
	_ "embed"
	"log/slog"
	"os"

	"homeclean-booking/internal/domain/catalog"
	"homeclean-booking/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Load reads the catalog at path, or the embedded default when path is empty.
// The result is validated; an invalid catalog must stop startup.
func Load(path string) (*catalog.Catalog, error) {
	data := defaultCatalog
	source := "embedded"
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.Wrapf(err, "read catalog %s", path)
		}
		data = raw
		source = path
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, errs.Wrapf(err, "catalog from %s", source)
	}

	slog.Info("catalog loaded",
		"source", source,
		"housing_types", len(cat.HousingTypes),
		"service_options", len(cat.ServiceOptions),
		"room_tiers", len(cat.RoomSizesLifeCleaning),
		"detail_types", len(cat.ServiceDetailTypes))
	return cat, nil
}

// Parse decodes strictly: unknown keys are rejected so typos in the file do
// not silently fall back to zero values.
func Parse(data []byte) (*catalog.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cat catalog.Catalog
	if err := dec.Decode(&cat); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode catalog yaml"), catalog.ErrInvalidCatalog)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}
