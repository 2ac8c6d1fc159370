package triage

import "github.com/ytlim/estatepath/internal/domain"

// PathInfo holds presentation details for a legal path.
type PathInfo struct {
	Title       string
	Description string
}

var pathInfos = map[domain.LegalPath]PathInfo{
	domain.PathProbate: {
		Title:       "Grant of Probate",
		Description: "You will apply to the Family Justice Courts to be appointed as Executor under the Will.",
	},
	domain.PathLOA: {
		Title:       "Letters of Administration",
		Description: "You will apply to the Family Justice Courts to be appointed as Administrator of the estate.",
	},
	domain.PathPublicTrustee: {
		Title:       "Public Trustee Route",
		Description: "For estates below $50,000 without a Will, the Public Trustee can help administer the estate.",
	},
	domain.PathSyariah: {
		Title:       "Syariah Court Process",
		Description: "Muslim estates are administered under the Administration of Muslim Law Act through the Syariah Court.",
	},
}

// Info returns presentation details for the given path.
func Info(path domain.LegalPath) PathInfo {
	return pathInfos[path]
}

// LegalModuleDescription is the path-specific description for the legal
// application module. Each of the four paths gets its own label.
func LegalModuleDescription(path domain.LegalPath) string {
	switch path {
	case domain.PathProbate:
		return "Grant of Probate"
	case domain.PathLOA:
		return "Letters of Administration"
	case domain.PathSyariah:
		return "Syariah Court Application"
	case domain.PathPublicTrustee:
		return "Public Trustee Application"
	default:
		return "Legal Application"
	}
}
