package domain

// BankStatus is the per-institution outreach record. One instance per known
// institution, seeded from the fixed catalog at startup; only Selected and
// Status mutate.
type BankStatus struct {
	ID       string
	Name     string
	Selected bool
	Status   OutreachStatus
}
