package database

import (
	"github.com/fieldserve/restoration-api/internal/domain/entity"
	"gorm.io/gorm"
)

// OptionalJobColumns lists job columns added by later migrations. A
// deployment whose jobs table predates them still accepts intakes; the
// composer drops whatever the store cannot hold and logs what it dropped.
var OptionalJobColumns = []string{
	"square_footage",
	"year_built",
	"power_on",
	"rooms_affected",
	"foundation_type",
	"basement_type",
	"units_affected",
	"floors_affected",
	"parking_location",
	"msa_on_file",
	"property_reference",
	"storm_event_id",
}

// Capabilities records which optional job columns the connected store
// actually has. Probed once at startup instead of inferring column
// presence from insert error text per request.
type Capabilities struct {
	missing map[string]bool
}

// DetectCapabilities probes the jobs table for each optional column.
func DetectCapabilities(db *gorm.DB) *Capabilities {
	caps := &Capabilities{missing: make(map[string]bool)}
	m := db.Migrator()
	for _, col := range OptionalJobColumns {
		if !m.HasColumn(&entity.Job{}, col) {
			caps.missing[col] = true
		}
	}
	return caps
}

// FullCapabilities returns capabilities with every optional column present.
func FullCapabilities() *Capabilities {
	return &Capabilities{missing: make(map[string]bool)}
}

// WithoutColumns returns capabilities that treat the named columns as
// absent. Used by tests and by deployments pinned to an old schema.
func WithoutColumns(cols ...string) *Capabilities {
	caps := &Capabilities{missing: make(map[string]bool, len(cols))}
	for _, c := range cols {
		caps.missing[c] = true
	}
	return caps
}

// HasColumn reports whether the store supports the named job column.
// Columns outside the optional set are always supported.
func (c *Capabilities) HasColumn(name string) bool {
	return !c.missing[name]
}

// MissingColumns returns the optional columns the store lacks.
func (c *Capabilities) MissingColumns() []string {
	out := make([]string, 0, len(c.missing))
	for _, col := range OptionalJobColumns {
		if c.missing[col] {
			out = append(out, col)
		}
	}
	return out
}
