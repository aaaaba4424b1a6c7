package model

// Todo is the domain model for a todo entry.
type Todo struct {
	ID        int     `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Labels    []Label `json:"labels,omitempty"`
}

// Patch is a partial todo. Nil fields are left untouched by Apply.
type Patch struct {
	ID        int
	Text      *string
	Completed *bool
	Labels    *[]Label
}

// Apply returns a copy of t with the fields present in p merged in.
// The ID is never changed.
func (t Todo) Apply(p Patch) Todo {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Labels != nil {
		t.Labels = UniqueLabels(*p.Labels)
	} else {
		t.Labels = cloneLabels(t.Labels)
	}
	return t
}

// Clone returns a deep copy of t.
func (t Todo) Clone() Todo {
	t.Labels = cloneLabels(t.Labels)
	return t
}

// ToggleCompleted builds the patch that flips t's completion flag.
func ToggleCompleted(t Todo) Patch {
	done := !t.Completed
	return Patch{ID: t.ID, Completed: &done}
}

// WithText builds a patch replacing the text of todo id.
func WithText(id int, text string) Patch {
	return Patch{ID: id, Text: &text}
}

// WithLabels builds a patch replacing the labels of todo id.
func WithLabels(id int, labels []Label) Patch {
	ls := cloneLabels(labels)
	if ls == nil {
		ls = []Label{}
	}
	return Patch{ID: id, Labels: &ls}
}
