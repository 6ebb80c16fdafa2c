// Package offsets manages named fixed UTC offsets ("IST" for +05:30) loaded
// from YAML definition files. Names are convenience labels for constant
// whole-minute displacements; this is not a time-zone database and carries
// no daylight-saving or historical rules.
package offsets

import (
	"fmt"
	"strings"

	"github.com/coolbeans/tempo/pkg/temporal"
)

// Definition is one named fixed offset as it appears in a YAML file.
type Definition struct {
	// Name is the label used to look the offset up, e.g. "IST".
	Name string `yaml:"name" json:"name"`

	// Offset is the textual offset, "Z" or "±HH:MM".
	Offset string `yaml:"offset" json:"offset"`

	// Description is optional free text.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Validate checks that the definition carries a name and a well-formed
// offset.
func (d *Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("offset definition missing name")
	}
	if _, err := temporal.ParseOffset(d.Offset); err != nil {
		return fmt.Errorf("offset definition %q: %w", d.Name, err)
	}
	return nil
}

// UtcOffset returns the parsed offset value. Validate must have succeeded.
func (d *Definition) UtcOffset() (temporal.UtcOffset, error) {
	return temporal.ParseOffset(d.Offset)
}

// File is the on-disk YAML document shape: a list of definitions.
type File struct {
	Offsets []Definition `yaml:"offsets"`
}

// Builtin returns the definitions every registry starts with: UTC plus a
// few widely used fixed displacements.
func Builtin() []Definition {
	return []Definition{
		{Name: "UTC", Offset: "Z", Description: "Coordinated Universal Time"},
		{Name: "IST", Offset: "+05:30", Description: "India Standard Time"},
		{Name: "NPT", Offset: "+05:45", Description: "Nepal Time"},
		{Name: "MMT", Offset: "+06:30", Description: "Myanmar Time"},
		{Name: "JST", Offset: "+09:00", Description: "Japan Standard Time"},
		{Name: "HST", Offset: "-10:00", Description: "Hawaii Standard Time"},
	}
}
