// Package config provides the YAML configuration of the mapping
// completeness check.
//
// # Schema Overview
//
// The configuration file (conventionally .mapcheck.yaml) has the
// following structure:
//
//	version: "1"
//	# Directive marking mapping functions (default "mapcheck:complete").
//	directive: mapcheck:complete
//	# Warn about exempted names that are not fields of the target type.
//	check_unknown_exemptions: true
//	# Fields never required for a target type, whatever the mapping function.
//	ignore:
//	  - type: example.com/app/dto.User   # or dto.User, or User
//	    fields: [CreatedAt, UpdatedAt]
//
// Every key is optional; a missing file is equivalent to an empty one.
package config
