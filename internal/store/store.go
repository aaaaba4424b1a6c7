// Package store holds the in-memory todo collection for one session.
//
// A Store is owned by the application root and is not safe for
// concurrent use: Bubble Tea delivers messages one at a time, and the
// store is only touched from the model's Update.
package store

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
)

// Store is the single source of truth for todos and the label catalog.
type Store struct {
	todos  []model.Todo // newest first
	nextID int

	labels      []model.Label
	nextLabelID int

	subs   map[int]func([]model.Todo)
	subSeq int

	log *log.Logger
}

// New returns an empty store. A nil logger discards output.
func New(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		nextID:      1,
		nextLabelID: 1,
		subs:        map[int]func([]model.Todo){},
		log:         logger,
	}
}

// Create prepends a new todo with the given text. Empty or
// whitespace-only text is ignored and reported with ok == false.
func (s *Store) Create(text string) (model.Todo, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		s.log.Debug("create ignored", "reason", "empty text")
		return model.Todo{}, false
	}
	t := model.Todo{ID: s.nextID, Text: text}
	s.nextID++

	s.todos = append([]model.Todo{t}, s.todos...)
	s.log.Debug("todo created", "id", t.ID, "text", t.Text)
	s.notify()
	return t.Clone(), true
}

// Update merges p into the todo with ID p.ID. Unknown IDs leave the
// collection untouched and return false.
func (s *Store) Update(p model.Patch) bool {
	i := s.index(p.ID)
	if i < 0 {
		s.log.Debug("update ignored", "id", p.ID, "reason", "not found")
		return false
	}
	s.todos[i] = s.todos[i].Apply(p)
	s.log.Debug("todo updated", "id", p.ID,
		"completed", s.todos[i].Completed, "labels", len(s.todos[i].Labels))
	s.notify()
	return true
}

// ToggleCompleted flips the completed flag of the todo as currently
// stored.
func (s *Store) ToggleCompleted(id int) bool {
	t, ok := s.Find(id)
	if !ok {
		s.log.Debug("toggle ignored", "id", id, "reason", "not found")
		return false
	}
	return s.Update(model.ToggleCompleted(t))
}

// ToggleLabel adds l to the todo's labels, or removes it when a label
// with the same ID is already attached.
func (s *Store) ToggleLabel(todoID int, l model.Label) bool {
	t, ok := s.Find(todoID)
	if !ok {
		s.log.Debug("label toggle ignored", "id", todoID, "reason", "not found")
		return false
	}
	return s.Update(model.WithLabels(todoID, model.ToggleLabel(t.Labels, l)))
}

// Delete removes the todo with the given ID. IDs are never reused.
func (s *Store) Delete(id int) bool {
	i := s.index(id)
	if i < 0 {
		s.log.Debug("delete ignored", "id", id, "reason", "not found")
		return false
	}
	s.todos = append(s.todos[:i:i], s.todos[i+1:]...)
	s.log.Debug("todo deleted", "id", id)
	s.notify()
	return true
}

// Find returns a copy of the todo with the given ID.
func (s *Store) Find(id int) (model.Todo, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Todo{}, false
	}
	return s.todos[i].Clone(), true
}

// All returns a copy of the collection, newest first.
func (s *Store) All() []model.Todo {
	out := make([]model.Todo, len(s.todos))
	for i, t := range s.todos {
		out[i] = t.Clone()
	}
	return out
}

// Len returns the number of todos.
func (s *Store) Len() int { return len(s.todos) }

// Stats counts completed and pending todos.
func (s *Store) Stats() (done, pending int) {
	for _, t := range s.todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Subscribe registers fn to receive a snapshot of the collection after
// every successful mutation. The returned func unregisters it.
func (s *Store) Subscribe(fn func([]model.Todo)) (unsubscribe func()) {
	id := s.subSeq
	s.subSeq++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Store) notify() {
	if len(s.subs) == 0 {
		return
	}
	// subscribers fire in registration order
	for id := 0; id < s.subSeq; id++ {
		if fn, ok := s.subs[id]; ok {
			fn(s.All())
		}
	}
}

func (s *Store) index(id int) int {
	for i, t := range s.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
