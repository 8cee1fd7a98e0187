package softdelete

import (
	"reflect"
	"sync"

	"gorm.io/gorm"
)

// Policy is the on-delete rule of a relation. Only Cascade takes part in
// soft delete and restore propagation.
type Policy int

const (
	NoAction Policy = iota
	Cascade
	SetNull
	Restrict
)

func (p Policy) String() string {
	switch p {
	case Cascade:
		return "CASCADE"
	case SetNull:
		return "SET NULL"
	case Restrict:
		return "RESTRICT"
	default:
		return "NO ACTION"
	}
}

// Relation is an edge from a dependent type to the parent type P.
type Relation[P any] struct {
	// Name is the accessor name of the related collection, used in logs.
	Name     string
	OnDelete Policy
	// SoftDeletable is true when the related type embeds Model.
	SoftDeletable bool
	// Related returns the query over the records that depend on parent.
	Related func(db *gorm.DB, parent *P) *gorm.DB
}

func (r Relation[P]) cascades() bool {
	return r.OnDelete == Cascade && r.SoftDeletable && r.Related != nil
}

// HasMany declares that rows of C reference P through foreignKey, whose
// value for a given parent is returned by key.
func HasMany[P, C any](name, foreignKey string, onDelete Policy, key func(*P) any) Relation[P] {
	return Relation[P]{
		Name:          name,
		OnDelete:      onDelete,
		SoftDeletable: IsSoftDeletable[C](),
		Related: func(db *gorm.DB, parent *P) *gorm.DB {
			return db.Model(new(C)).Where(foreignKey+" = ?", key(parent))
		},
	}
}

// Registry maps each parent type to its declared relations. Declarations
// are explicit; nothing is discovered from struct tags.
type Registry struct {
	mu        sync.RWMutex
	relations map[reflect.Type]any
}

func NewRegistry() *Registry {
	return &Registry{relations: make(map[reflect.Type]any)}
}

func typeKey[P any]() reflect.Type {
	return reflect.TypeOf((*P)(nil)).Elem()
}

// Register appends relations to the ones already declared for P.
func Register[P any](r *Registry, relations ...Relation[P]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := typeKey[P]()
	existing, _ := r.relations[key].([]Relation[P])
	merged := make([]Relation[P], 0, len(existing)+len(relations))
	merged = append(merged, existing...)
	merged = append(merged, relations...)
	r.relations[key] = merged
}

// RelationsOf returns a copy of the relations declared for P. A nil
// registry has no relations.
func RelationsOf[P any](r *Registry) []Relation[P] {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	rels, _ := r.relations[typeKey[P]()].([]Relation[P])
	out := make([]Relation[P], len(rels))
	copy(out, rels)
	return out
}
