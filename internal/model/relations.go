package model

import "notes-softdelete/pkg/softdelete"

// Relations declares, per model, the relations that soft delete and
// restore propagate along. Only direct children are reached: deleting a
// notebook flags its notes but not their embeddings.
func Relations() *softdelete.Registry {
	reg := softdelete.NewRegistry()

	softdelete.Register(reg,
		softdelete.HasMany[Notebook, Note]("Notes", "notebook_id", softdelete.Cascade, notebookKey),
		softdelete.HasMany[Notebook, Notebook]("Children", "parent_id", softdelete.SetNull, notebookKey),
	)
	softdelete.Register(reg,
		softdelete.HasMany[Note, NoteEmbedding]("Embeddings", "note_id", softdelete.Cascade, noteKey),
	)

	return reg
}

func notebookKey(n *Notebook) any { return n.Id }

func noteKey(n *Note) any { return n.Id }

// All lists every model for migrations.
func All() []interface{} {
	return []interface{}{
		&Notebook{},
		&Note{},
		&NoteEmbedding{},
	}
}
