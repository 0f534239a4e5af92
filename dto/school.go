package dto

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// CreateSchoolInput is the typed form of a validated create-school body.
type CreateSchoolInput struct {
	Name       string   `mapstructure:"name"`
	Location   string   `mapstructure:"location"`
	Programs   []string `mapstructure:"programs"`
	Website    string   `mapstructure:"website"`
	Accredited *bool    `mapstructure:"accredited"`
}

// UpdateSchoolInput is the typed form of a validated partial-update body.
// Nil fields were not supplied.
type UpdateSchoolInput struct {
	Name       *string   `mapstructure:"name"`
	Location   *string   `mapstructure:"location"`
	Programs   *[]string `mapstructure:"programs"`
	Website    *string   `mapstructure:"website"`
	Accredited *bool     `mapstructure:"accredited"`
}

// SchoolFilters are the optional list filters.
type SchoolFilters struct {
	Program  string `mapstructure:"program"`
	Location string `mapstructure:"location"`
}

// StudentFilters are the optional student list filters.
type StudentFilters struct {
	EnrolledProgram string `mapstructure:"enrolledProgram"`
	Status          string `mapstructure:"status"`
}

// DecodeValidated decodes a coerced validation result into a typed input.
func DecodeValidated(src map[string]any, dst any) error {
	if err := mapstructure.Decode(src, dst); err != nil {
		return fmt.Errorf("failed to decode validated input: %w", err)
	}
	return nil
}

// Fields returns the partial-update field map in datastore column form.
func (in *UpdateSchoolInput) Fields() map[string]any {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Programs != nil {
		fields["programs"] = *in.Programs
	}
	if in.Website != nil {
		fields["website"] = *in.Website
	}
	if in.Accredited != nil {
		fields["accredited"] = *in.Accredited
	}
	return fields
}
