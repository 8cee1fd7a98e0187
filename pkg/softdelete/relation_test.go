package softdelete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := newTestRegistry()

	rels := RelationsOf[author](reg)
	require.Len(t, rels, 3)
	assert.Equal(t, "Books", rels[0].Name)
	assert.Equal(t, "Reviews", rels[1].Name)
	assert.Equal(t, "Fans", rels[2].Name)

	assert.Len(t, RelationsOf[book](reg), 1)
	assert.Empty(t, RelationsOf[chapter](reg))
	assert.Empty(t, RelationsOf[author](nil))
}

func TestRegistryAppends(t *testing.T) {
	reg := NewRegistry()
	Register(reg, HasMany[author, book]("Books", "author_id", Cascade, authorKey))
	Register(reg, HasMany[author, fan]("Fans", "author_id", SetNull, authorKey))

	assert.Len(t, RelationsOf[author](reg), 2)
}

func TestRelationsOfReturnsCopy(t *testing.T) {
	reg := newTestRegistry()
	rels := RelationsOf[author](reg)
	rels[0].OnDelete = Restrict

	assert.Equal(t, Cascade, RelationsOf[author](reg)[0].OnDelete)
}

func TestRelationCascades(t *testing.T) {
	tests := []struct {
		name string
		rel  Relation[author]
		want bool
	}{
		{"cascade to soft deletable", HasMany[author, book]("Books", "author_id", Cascade, authorKey), true},
		{"cascade to plain model", HasMany[author, review]("Reviews", "author_id", Cascade, authorKey), false},
		{"set null", HasMany[author, fan]("Fans", "author_id", SetNull, authorKey), false},
		{"no resolver", Relation[author]{Name: "Broken", OnDelete: Cascade, SoftDeletable: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rel.cascades())
		})
	}
}

func TestHasManyRelated(t *testing.T) {
	db := newTestDB(t)
	a := seedAuthor(t, db, 2)
	other := seedAuthor(t, db, 1)

	rel := HasMany[author, book]("Books", "author_id", Cascade, authorKey)

	var n int64
	require.NoError(t, rel.Related(db, a).Count(&n).Error)
	assert.EqualValues(t, 2, n)

	require.NoError(t, rel.Related(db, other).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "CASCADE", Cascade.String())
	assert.Equal(t, "SET NULL", SetNull.String())
	assert.Equal(t, "RESTRICT", Restrict.String())
	assert.Equal(t, "NO ACTION", NoAction.String())
}
