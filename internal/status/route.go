package status

// Screen identifies the frontend screen the applicant should land on. The
// identifiers are the contract with the mobile app and keep its names.
type Screen string

const (
	ScreenStatusAwal       Screen = "StatusAwal"
	ScreenTungguKonfirmasi Screen = "TungguKonfirmasi"
	ScreenStatusProses     Screen = "StatusProses"
	ScreenStatusDoneOK     Screen = "StatusDone-Approved"
	ScreenStatusDoneNo     Screen = "StatusDone-Rejected"
)

// routes is the single authority for the phase-to-screen decision. The mobile
// app re-derived this mapping independently per screen and drifted; every call
// site goes through RouteFor instead.
var routes = map[Phase]Screen{
	PhaseDraft:                ScreenStatusAwal,
	PhaseAwaitingReview:       ScreenTungguKonfirmasi,
	PhaseInReviewWithFeedback: ScreenStatusProses,
	PhaseReviewed:             ScreenStatusProses,
	PhaseApproved:             ScreenStatusDoneOK,
	PhaseRejected:             ScreenStatusDoneNo,
}

// RouteFor is total: every phase maps to exactly one screen, and anything
// unrecognized falls back to the start-registration prompt.
func RouteFor(p Phase) Screen {
	if s, ok := routes[p]; ok {
		return s
	}
	return ScreenStatusAwal
}
