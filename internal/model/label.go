package model

// Label is a tag attachable to a todo. Two labels are the same label
// when their IDs match; Name and Color are descriptive only.
type Label struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"` // hex ("#7D56F4") or ANSI code ("212")
}

// ToggleLabel removes target from labels if a label with the same ID is
// present, otherwise appends it. The input slice is never modified.
func ToggleLabel(labels []Label, target Label) []Label {
	if HasLabel(labels, target.ID) {
		out := make([]Label, 0, len(labels)-1)
		for _, l := range labels {
			if l.ID != target.ID {
				out = append(out, l)
			}
		}
		return out
	}
	out := make([]Label, 0, len(labels)+1)
	out = append(out, labels...)
	return append(out, target)
}

// HasLabel reports whether labels contains a label with the given ID.
func HasLabel(labels []Label, id int) bool {
	for _, l := range labels {
		if l.ID == id {
			return true
		}
	}
	return false
}

// UniqueLabels returns a copy of labels keeping the first occurrence of
// each ID.
func UniqueLabels(labels []Label) []Label {
	out := make([]Label, 0, len(labels))
	seen := make(map[int]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := seen[l.ID]; ok {
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l)
	}
	return out
}

func cloneLabels(labels []Label) []Label {
	if labels == nil {
		return nil
	}
	out := make([]Label, len(labels))
	copy(out, labels)
	return out
}
