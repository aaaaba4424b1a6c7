package model

import "testing"

func ids(labels []Label) []int {
	out := make([]int, 0, len(labels))
	for _, l := range labels {
		out = append(out, l.ID)
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var (
	bug     = Label{ID: 1, Name: "bug", Color: "#ff5f87"}
	feature = Label{ID: 2, Name: "feature", Color: "#5fafff"}
	chore   = Label{ID: 3, Name: "chore"}
	urgent  = Label{ID: 4, Name: "urgent", Color: "196"}
)

func TestToggleLabel(t *testing.T) {
	tests := []struct {
		name   string
		labels []Label
		target Label
		want   []int
	}{
		{"add to empty", nil, bug, []int{1}},
		{"append last", []Label{bug, feature}, chore, []int{1, 2, 3}},
		{"remove first", []Label{bug, feature, chore}, bug, []int{2, 3}},
		{"remove middle keeps order", []Label{bug, feature, chore}, feature, []int{1, 3}},
		{"remove last", []Label{bug, feature, chore}, chore, []int{1, 2}},
		{"remove only", []Label{urgent}, urgent, []int{}},
		{"match by id only", []Label{bug}, Label{ID: 1, Name: "renamed"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToggleLabel(tt.labels, tt.target)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("ToggleLabel: got %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestToggleLabelDoesNotMutateInput(t *testing.T) {
	in := []Label{bug, feature, chore}
	before := ids(in)

	_ = ToggleLabel(in, feature)
	_ = ToggleLabel(in, urgent)

	if !equalIDs(ids(in), before) {
		t.Errorf("input mutated: got %v, want %v", ids(in), before)
	}

	// appending must not write into spare capacity of the caller's slice
	backing := make([]Label, 1, 4)
	backing[0] = bug
	out := ToggleLabel(backing, feature)
	out[1].Name = "changed"
	if got := backing[:2][1].Name; got == "changed" {
		t.Error("ToggleLabel shares backing array with input")
	}
}

func TestToggleLabelTwiceIsIdentity(t *testing.T) {
	sets := [][]Label{
		nil,
		{bug},
		{bug, feature},
		{chore, bug, urgent},
	}
	targets := []Label{bug, feature, chore, urgent}

	for _, set := range sets {
		for _, target := range targets {
			got := ToggleLabel(ToggleLabel(set, target), target)
			if HasLabel(set, target.ID) {
				// removed then re-appended: target moved last
				var want []int
				for _, l := range set {
					if l.ID != target.ID {
						want = append(want, l.ID)
					}
				}
				want = append(want, target.ID)
				if !equalIDs(ids(got), want) {
					t.Errorf("toggle twice %v with %d: got %v, want %v", ids(set), target.ID, ids(got), want)
				}
				continue
			}
			if !equalIDs(ids(got), ids(set)) {
				t.Errorf("toggle twice %v with %d: got %v, want %v", ids(set), target.ID, ids(got), ids(set))
			}
		}
	}
}

func TestUniqueLabels(t *testing.T) {
	got := UniqueLabels([]Label{bug, feature, {ID: 1, Name: "dup"}, chore, feature})
	if want := []int{1, 2, 3}; !equalIDs(ids(got), want) {
		t.Fatalf("UniqueLabels: got %v, want %v", ids(got), want)
	}
	if got[0].Name != "bug" {
		t.Errorf("first occurrence should win, got %q", got[0].Name)
	}
}
