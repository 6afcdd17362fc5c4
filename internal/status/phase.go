package status

import (
	"fmt"

	"admissionsgateway/pkg/siakad"
)

// Phase is the applicant's overall registration state as presented to the
// frontend. It refines the upstream registration_status: "submitted" splits
// into awaiting-review and in-review-with-feedback depending on whether any
// document has received a reviewer verdict yet.
type Phase string

const (
	PhaseDraft                Phase = "draft"
	PhaseAwaitingReview       Phase = "awaiting_review"
	PhaseInReviewWithFeedback Phase = "in_review_with_feedback"
	PhaseReviewed             Phase = "reviewed"
	PhaseApproved             Phase = "approved"
	PhaseRejected             Phase = "rejected"
)

func AllPhases() []Phase {
	return []Phase{
		PhaseDraft,
		PhaseAwaitingReview,
		PhaseInReviewWithFeedback,
		PhaseReviewed,
		PhaseApproved,
		PhaseRejected,
	}
}

func ParsePhase(s string) (Phase, error) {
	switch Phase(s) {
	case PhaseDraft, PhaseAwaitingReview, PhaseInReviewWithFeedback, PhaseReviewed, PhaseApproved, PhaseRejected:
		return Phase(s), nil
	default:
		return "", fmt.Errorf("unknown phase: %s", s)
	}
}

// phaseOf derives the phase from the profile and the document verdicts.
// A missing profile is equivalent to a draft registration; an unknown upstream
// status is treated the same way rather than failing the whole aggregation.
func phaseOf(profile *siakad.Profile, documents []siakad.Document) Phase {
	if profile == nil {
		return PhaseDraft
	}
	switch profile.RegistrationStatus {
	case siakad.RegistrationSubmitted:
		if anyVerdict(documents) {
			return PhaseInReviewWithFeedback
		}
		return PhaseAwaitingReview
	case siakad.RegistrationReviewed:
		return PhaseReviewed
	case siakad.RegistrationApproved:
		return PhaseApproved
	case siakad.RegistrationRejected:
		return PhaseRejected
	default:
		return PhaseDraft
	}
}

// anyVerdict reports whether a reviewer has touched any document at all.
func anyVerdict(documents []siakad.Document) bool {
	for _, d := range documents {
		if d.VerificationStatus == siakad.VerificationApproved || d.VerificationStatus == siakad.VerificationRejected {
			return true
		}
	}
	return false
}
