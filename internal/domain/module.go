package domain

// Module is one sequential phase of the estate-administration workflow.
// Modules are created once at triage completion (or app start with a nil
// path), mutated only through status/progress updates, and never deleted.
type Module struct {
	ID          int
	Title       string
	Description string
	Status      ModuleStatus
	Progress    int
	Total       int
	Route       string
}

// PercentDone returns completion as a fraction in [0, 1].
func (m Module) PercentDone() float64 {
	if m.Total <= 0 {
		return 0
	}
	pct := float64(m.Progress) / float64(m.Total)
	if pct > 1 {
		return 1
	}
	return pct
}
