package ecs

// System is one stage of a tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Scheduler runs systems in the order they were added. Every system sees
// the writes of the systems before it in the same tick.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	s.Add(systems...)
	return s
}

// Add appends systems, skipping nils.
func (s *Scheduler) Add(systems ...System) {
	for _, system := range systems {
		if system != nil {
			s.systems = append(s.systems, system)
		}
	}
}

func (s *Scheduler) Len() int {
	return len(s.systems)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}
