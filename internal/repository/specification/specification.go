package specification

import "gorm.io/gorm"

// Specification defines the interface for query specifications
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// Scopes adapts specifications to GORM scopes.
func Scopes(specs ...Specification) []func(*gorm.DB) *gorm.DB {
	scopes := make([]func(*gorm.DB) *gorm.DB, len(specs))
	for i, spec := range specs {
		scopes[i] = spec.Apply
	}
	return scopes
}
