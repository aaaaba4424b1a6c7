package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/idilsaglam/todolist/internal/model"
)

var (
	ErrEmptyLabelName = errors.New("label name is empty")
	ErrDuplicateLabel = errors.New("label already exists")
	ErrLabelNotFound  = errors.New("label not found")
)

// CreateLabel adds a label to the catalog. Names are unique,
// ignoring case.
func (s *Store) CreateLabel(name, color string) (model.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Label{}, ErrEmptyLabelName
	}
	for _, l := range s.labels {
		if strings.EqualFold(l.Name, name) {
			return model.Label{}, fmt.Errorf("create label %q: %w", name, ErrDuplicateLabel)
		}
	}
	l := model.Label{ID: s.nextLabelID, Name: name, Color: strings.TrimSpace(color)}
	s.nextLabelID++
	s.labels = append(s.labels, l)
	s.log.Debug("label created", "id", l.ID, "name", l.Name)
	return l, nil
}

// Labels returns the catalog in creation order.
func (s *Store) Labels() []model.Label {
	out := make([]model.Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// Label returns the catalog entry with the given ID.
func (s *Store) Label(id int) (model.Label, bool) {
	for _, l := range s.labels {
		if l.ID == id {
			return l, true
		}
	}
	return model.Label{}, false
}

// DeleteLabel removes a label from the catalog and detaches it from
// every todo carrying it.
func (s *Store) DeleteLabel(id int) error {
	idx := -1
	for i, l := range s.labels {
		if l.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("delete label %d: %w", id, ErrLabelNotFound)
	}
	removed := s.labels[idx]
	s.labels = append(s.labels[:idx:idx], s.labels[idx+1:]...)

	detached := 0
	for i, t := range s.todos {
		if model.HasLabel(t.Labels, id) {
			s.todos[i].Labels = model.ToggleLabel(t.Labels, removed)
			detached++
		}
	}
	s.log.Debug("label deleted", "id", id, "name", removed.Name, "detached", detached)
	if detached > 0 {
		s.notify()
	}
	return nil
}
