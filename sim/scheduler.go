package sim

// System is one phase of the per-step pipeline. Systems run in the order
// they were registered; the session relies on attachment recomputation
// running before platform movement, and the outcome check running after the
// physics step.
type System interface {
	Step(s *Session)
}

// Scheduler runs systems in a fixed order each step.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Step(sess *Session) {
	for _, system := range s.systems {
		system.Step(sess)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
