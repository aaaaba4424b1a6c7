package model

import (
	"reflect"
	"testing"
)

func TestApply(t *testing.T) {
	base := Todo{ID: 1, Text: "A", Labels: []Label{bug}}

	t.Run("merges completed only", func(t *testing.T) {
		done := true
		got := base.Apply(Patch{ID: 1, Completed: &done})
		want := Todo{ID: 1, Text: "A", Completed: true, Labels: []Label{bug}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Apply: got %+v, want %+v", got, want)
		}
	})

	t.Run("replaces text", func(t *testing.T) {
		got := base.Apply(WithText(1, "B"))
		if got.Text != "B" || got.Completed || len(got.Labels) != 1 {
			t.Errorf("Apply: got %+v", got)
		}
	})

	t.Run("replaces labels and dedupes", func(t *testing.T) {
		got := base.Apply(WithLabels(1, []Label{feature, feature, chore}))
		if want := []int{2, 3}; !equalIDs(ids(got.Labels), want) {
			t.Errorf("labels: got %v, want %v", ids(got.Labels), want)
		}
	})

	t.Run("empty labels clears", func(t *testing.T) {
		got := base.Apply(WithLabels(1, nil))
		if len(got.Labels) != 0 {
			t.Errorf("labels: got %v, want none", ids(got.Labels))
		}
	})

	t.Run("id is kept", func(t *testing.T) {
		got := base.Apply(Patch{ID: 42})
		if got.ID != 1 {
			t.Errorf("ID: got %d, want 1", got.ID)
		}
	})

	t.Run("does not alias receiver labels", func(t *testing.T) {
		got := base.Apply(Patch{ID: 1})
		got.Labels[0].Name = "changed"
		if base.Labels[0].Name != "bug" {
			t.Error("Apply result shares labels with receiver")
		}
	})
}

func TestToggleCompleted(t *testing.T) {
	p := ToggleCompleted(Todo{ID: 7, Completed: false})
	if p.ID != 7 || p.Completed == nil || !*p.Completed {
		t.Fatalf("ToggleCompleted(false): got %+v", p)
	}
	if p.Text != nil || p.Labels != nil {
		t.Error("ToggleCompleted should only carry the completed field")
	}

	p = ToggleCompleted(Todo{ID: 7, Completed: true})
	if *p.Completed {
		t.Error("ToggleCompleted(true) should clear the flag")
	}
}
