package domain

// LegalPath is the jurisdiction-specific procedure determined by triage.
type LegalPath string

const (
	PathProbate       LegalPath = "probate"
	PathLOA           LegalPath = "loa"
	PathPublicTrustee LegalPath = "public-trustee"
	PathSyariah       LegalPath = "syariah"
)

type Relationship string

const (
	RelSpouse  Relationship = "spouse"
	RelChild   Relationship = "child"
	RelParent  Relationship = "parent"
	RelSibling Relationship = "sibling"
	RelOther   Relationship = "other"
)

// EstateBand is the coarse estate-value band asked during triage.
type EstateBand string

const (
	EstateBelow50k EstateBand = "below50k"
	EstateAbove50k EstateBand = "above50k"
	EstateUnsure   EstateBand = "unsure"
)

type ModuleStatus string

const (
	ModuleLocked     ModuleStatus = "locked"
	ModulePending    ModuleStatus = "pending"
	ModuleInProgress ModuleStatus = "in-progress"
	ModuleCompleted  ModuleStatus = "completed"
)

// OutreachStatus tracks the per-bank enquiry-letter loop.
/// Transitions are monotonic within a session:
// not-started → letter-generated → sent → {reply-found | reply-not-found}.
type OutreachStatus string

const (
	OutreachNotStarted      OutreachStatus = "not-started"
	OutreachLetterGenerated OutreachStatus = "letter-generated"
	OutreachSent            OutreachStatus = "sent"
	OutreachReplyFound      OutreachStatus = "reply-found"
	OutreachReplyNotFound   OutreachStatus = "reply-not-found"
)

// Rank orders outreach statuses along the forward-only path.
// Both terminal statuses share the highest rank.
func (s OutreachStatus) Rank() int {
	switch s {
	case OutreachNotStarted:
		return 0
	case OutreachLetterGenerated:
		return 1
	case OutreachSent:
		return 2
	case OutreachReplyFound, OutreachReplyNotFound:
		return 3
	default:
		return -1
	}
}

type BundleDocStatus string

const (
	BundleDrafting   BundleDocStatus = "drafting"
	BundleReady      BundleDocStatus = "ready"
	BundleDownloaded BundleDocStatus = "downloaded"
)
