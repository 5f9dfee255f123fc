package main

import "sort"

// Scene owns the math objects. Additions and removals requested during a
// logic pass are buffered and applied by Flush at the end of the update, so
// a frame that is already drawing never sees a half-applied mutation and new
// objects appear on the very next draw.
type Scene struct {
	objects []*MathObject

	pendingAdd    []*MathObject
	pendingRemove map[string]bool
}

func NewScene() *Scene {
	return &Scene{pendingRemove: make(map[string]bool)}
}

// Add queues an object for insertion at the next Flush.
func (s *Scene) Add(obj *MathObject) {
	s.pendingAdd = append(s.pendingAdd, obj)
}

// Remove queues an object for removal at the next Flush.
func (s *Scene) Remove(id string) {
	s.pendingRemove[id] = true
}

// Clear queues every current object for removal.
func (s *Scene) Clear() {
	for _, obj := range s.objects {
		s.pendingRemove[obj.ID] = true
	}
}

// Flush applies queued removals then additions and re-sorts by layer.
func (s *Scene) Flush() {
	if len(s.pendingRemove) == 0 && len(s.pendingAdd) == 0 {
		return
	}
	if len(s.pendingRemove) > 0 {
		kept := s.objects[:0]
		for _, obj := range s.objects {
			if !s.pendingRemove[obj.ID] {
				kept = append(kept, obj)
			}
		}
		s.objects = kept
		s.pendingRemove = make(map[string]bool)
	}
	s.objects = append(s.objects, s.pendingAdd...)
	s.pendingAdd = nil
	sort.SliceStable(s.objects, func(i, j int) bool {
		return s.objects[i].Layer < s.objects[j].Layer
	})
}

// Objects returns the committed object list. Callers must not hold the slice
// across a Flush.
func (s *Scene) Objects() []*MathObject {
	return s.objects
}

func (s *Scene) Count() int {
	return len(s.objects)
}

func (s *Scene) ByID(id string) *MathObject {
	for _, obj := range s.objects {
		if obj.ID == id {
			return obj
		}
	}
	return nil
}
