package status

import (
	"reflect"
	"testing"

	"admissionsgateway/pkg/siakad"
)

func doc(id string, t siakad.DocumentType, vs siakad.VerificationStatus, reason string) siakad.Document {
	return siakad.Document{
		ID:                 id,
		DocumentType:       t,
		VerificationStatus: vs,
		RejectionReason:    reason,
		FilePath:           "/files/" + id + ".pdf",
	}
}

func profile(rs siakad.RegistrationStatus) *siakad.Profile {
	return &siakad.Profile{ID: "app-1", RegistrationStatus: rs, RegistrationNumber: "2026-0001"}
}

func categoryOf(t *testing.T, rep Report, c Category) CategoryStatus {
	t.Helper()
	for _, st := range rep.Categories {
		if st.Category == c {
			return st
		}
	}
	t.Fatalf("category %s missing from report", c)
	return CategoryStatus{}
}

func TestAggregate_NoDocumentsMeansNotUploadedNotApproved(t *testing.T) {
	rep := Aggregate(Snapshot{Profile: profile(siakad.RegistrationSubmitted)}, Policy{})

	for _, c := range []Category{CategoryIdentity, CategoryAddress, CategoryAcademic} {
		st := categoryOf(t, rep, c)
		if st.Uploaded {
			t.Fatalf("%s: expected not uploaded", c)
		}
		if st.Approved {
			t.Fatalf("%s: expected not approved", c)
		}
	}
}

func TestAggregate_AllApprovedCategory(t *testing.T) {
	snap := Snapshot{
		Profile: profile(siakad.RegistrationSubmitted),
		Documents: []siakad.Document{
			doc("d-1", siakad.DocTypeKTP, siakad.VerificationApproved, ""),
			doc("d-2", siakad.DocTypeAkta, siakad.VerificationApproved, ""),
		},
	}
	rep := Aggregate(snap, Policy{})

	st := categoryOf(t, rep, CategoryIdentity)
	if !st.Uploaded || !st.Approved {
		t.Fatalf("expected identity uploaded and approved, got %+v", st)
	}
	if st.Rejected {
		t.Fatalf("expected identity not rejected")
	}
}

func TestAggregate_OneRejectedMarksCategoryRejected(t *testing.T) {
	snap := Snapshot{
		Profile: profile(siakad.RegistrationSubmitted),
		Documents: []siakad.Document{
			doc("d-1", siakad.DocTypeKTP, siakad.VerificationApproved, ""),
			doc("d-2", siakad.DocTypeAkta, siakad.VerificationRejected, "foto tidak terbaca"),
		},
	}
	rep := Aggregate(snap, Policy{})

	st := categoryOf(t, rep, CategoryIdentity)
	if !st.Rejected {
		t.Fatalf("expected identity rejected")
	}
	if st.Approved {
		t.Fatalf("rejected category must not be approved")
	}
	if st.RejectedCount != 1 || len(st.RejectedItems) != 1 {
		t.Fatalf("expected one rejected item, got count=%d items=%d", st.RejectedCount, len(st.RejectedItems))
	}
	if st.RejectedItems[0].Reason != "foto tidak terbaca" {
		t.Fatalf("expected rejection reason carried, got %q", st.RejectedItems[0].Reason)
	}
	if !rep.AnyRejected {
		t.Fatalf("expected anyRejected")
	}
}

func TestAggregate_AnyRejectedFalseWhenAllClean(t *testing.T) {
	snap := Snapshot{
		Profile: profile(siakad.RegistrationSubmitted),
		Documents: []siakad.Document{
			doc("d-1", siakad.DocTypeKTP, siakad.VerificationPending, ""),
		},
	}
	rep := Aggregate(snap, Policy{})
	if rep.AnyRejected {
		t.Fatalf("expected anyRejected false")
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	snap := Snapshot{
		Profile: profile(siakad.RegistrationSubmitted),
		Documents: []siakad.Document{
			doc("d-1", siakad.DocTypeKTP, siakad.VerificationApproved, ""),
			doc("d-2", siakad.DocTypeAkta, siakad.VerificationRejected, "blur"),
		},
		Guardians: []siakad.Guardian{{ID: "g-1"}},
		Payment:   &siakad.Payment{ID: "p-1", Status: siakad.PaymentPending},
	}
	a := Aggregate(snap, Policy{})
	b := Aggregate(snap, Policy{})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical reports, got\n%+v\n%+v", a, b)
	}
}

// Scenario A: no profile yet.
func TestAggregate_NoProfileRoutesToStart(t *testing.T) {
	rep := Aggregate(Snapshot{}, Policy{})
	if rep.Phase != PhaseDraft {
		t.Fatalf("expected draft, got %s", rep.Phase)
	}
	if rep.Screen != ScreenStatusAwal {
		t.Fatalf("expected StatusAwal, got %s", rep.Screen)
	}
}

// Scenario B: submitted, no verdicts yet, no payment.
func TestAggregate_SubmittedWithoutFeedbackIsWaiting(t *testing.T) {
	snap := Snapshot{
		Profile: profile(siakad.RegistrationSubmitted),
		Documents: []siakad.Document{
			doc("d-1", siakad.DocTypeKTP, siakad.VerificationPending, ""),
			doc("d-2", siakad.DocTypeAkta, siakad.VerificationPending, ""),
		},
	}
	rep := Aggregate(snap, Policy{})
	if rep.Phase != PhaseAwaitingReview {
		t.Fatalf("expected awaiting_review, got %s", rep.Phase)
	}
	if rep.Screen != ScreenTungguKonfirmasi {
		t.Fatalf("expected TungguKonfirmasi, got %s", rep.Screen)
	}
}

// Scenario C: submitted, one rejected verdict.
func TestAggregate_SubmittedWithFeedbackIsInReview(t *testing.T) {
	snap := Snapshot{
		Profile: profile(siakad.RegistrationSubmitted),
		Documents: []siakad.Document{
			doc("d-1", siakad.DocTypeKTP, siakad.VerificationRejected, "buram"),
			doc("d-2", siakad.DocTypeAkta, siakad.VerificationPending, ""),
		},
	}
	rep := Aggregate(snap, Policy{})
	if rep.Phase != PhaseInReviewWithFeedback {
		t.Fatalf("expected in_review_with_feedback, got %s", rep.Phase)
	}
	if rep.Screen != ScreenStatusProses {
		t.Fatalf("expected StatusProses, got %s", rep.Screen)
	}
	if st := categoryOf(t, rep, CategoryIdentity); !st.Rejected {
		t.Fatalf("expected identity rejected")
	}
}

// Scenario D: approved profile.
func TestAggregate_ApprovedRoutesToDoneAccepted(t *testing.T) {
	rep := Aggregate(Snapshot{Profile: profile(siakad.RegistrationApproved)}, Policy{})
	if rep.Screen != ScreenStatusDoneOK {
		t.Fatalf("expected StatusDone-Approved, got %s", rep.Screen)
	}
}

// Scenario E: payment rejected while documents are clean.
func TestAggregate_PaymentRejectionCountsTowardAnyRejected(t *testing.T) {
	snap := Snapshot{
		Profile: profile(siakad.RegistrationSubmitted),
		Documents: []siakad.Document{
			doc("d-1", siakad.DocTypeKTP, siakad.VerificationApproved, ""),
			doc("d-2", siakad.DocTypeAkta, siakad.VerificationApproved, ""),
		},
		Payment: &siakad.Payment{
			ID:               "p-1",
			Status:           siakad.PaymentRejected,
			PaymentProofFile: "/files/bukti.jpg",
			RejectionReason:  "nominal tidak sesuai",
		},
	}
	rep := Aggregate(snap, Policy{})

	st := categoryOf(t, rep, CategoryPayment)
	if !st.Rejected {
		t.Fatalf("expected payment rejected")
	}
	if !st.Uploaded {
		t.Fatalf("expected payment proof counted as uploaded")
	}
	if len(st.RejectedItems) != 1 || st.RejectedItems[0].Reason != "nominal tidak sesuai" {
		t.Fatalf("expected payment rejection reason carried, got %+v", st.RejectedItems)
	}
	if !rep.AnyRejected {
		t.Fatalf("expected anyRejected")
	}
}

func TestAggregate_PaymentVerified(t *testing.T) {
	snap := Snapshot{
		Profile: profile(siakad.RegistrationSubmitted),
		Payment: &siakad.Payment{ID: "p-1", Status: siakad.PaymentVerified, PaymentProofFile: "/files/bukti.jpg"},
	}
	st := categoryOf(t, Aggregate(snap, Policy{}), CategoryPayment)
	if !st.Approved || st.Rejected {
		t.Fatalf("expected payment approved, got %+v", st)
	}
}

func TestAggregate_GuardianPresenceCompletesCategory(t *testing.T) {
	snap := Snapshot{
		Profile:   profile(siakad.RegistrationSubmitted),
		Guardians: []siakad.Guardian{{ID: "g-1", FullName: "Budi"}},
	}
	st := categoryOf(t, Aggregate(snap, Policy{}), CategoryGuardian)
	if !st.Uploaded || !st.Approved || st.Rejected {
		t.Fatalf("expected guardian complete, got %+v", st)
	}
}

func TestAggregate_AcademicStrictRequiresTranscriptPlusOne(t *testing.T) {
	base := Snapshot{Profile: profile(siakad.RegistrationSubmitted)}
	strict := Policy{AcademicStrict: true}

	// Transcript alone is not enough under the strict rule.
	base.Documents = []siakad.Document{doc("d-1", siakad.DocTypeTranskrip, siakad.VerificationApproved, "")}
	if st := categoryOf(t, Aggregate(base, strict), CategoryAcademic); st.Uploaded {
		t.Fatalf("strict: transcript alone should not satisfy, got %+v", st)
	}
	// The loose rule accepts any one of the three.
	if st := categoryOf(t, Aggregate(base, Policy{}), CategoryAcademic); !st.Uploaded {
		t.Fatalf("loose: transcript alone should satisfy, got %+v", st)
	}

	// Transcript plus SKL satisfies the strict rule.
	base.Documents = append(base.Documents, doc("d-2", siakad.DocTypeSKL, siakad.VerificationApproved, ""))
	st := categoryOf(t, Aggregate(base, strict), CategoryAcademic)
	if !st.Uploaded || !st.Approved {
		t.Fatalf("strict: transcript+skl should satisfy and approve, got %+v", st)
	}
}

func TestAggregate_AchievementPolicy(t *testing.T) {
	snap := Snapshot{Profile: profile(siakad.RegistrationSubmitted)}

	// Optional: an empty list is neutral.
	if st := categoryOf(t, Aggregate(snap, Policy{}), CategoryAchievement); st.Rejected {
		t.Fatalf("optional: empty achievements must not reject, got %+v", st)
	}
	// Required: an empty list demands correction.
	if st := categoryOf(t, Aggregate(snap, Policy{AchievementRequired: true}), CategoryAchievement); !st.Rejected {
		t.Fatalf("required: empty achievements must reject, got %+v", st)
	}

	snap.Achievements = []siakad.Achievement{{ID: "a-1", Title: "OSN Matematika"}}
	st := categoryOf(t, Aggregate(snap, Policy{AchievementRequired: true}), CategoryAchievement)
	if !st.Uploaded || st.Rejected {
		t.Fatalf("expected achievements satisfied, got %+v", st)
	}
}

func TestAggregate_RejectedPrestasiCertificateFoldsIntoAchievement(t *testing.T) {
	snap := Snapshot{
		Profile:      profile(siakad.RegistrationSubmitted),
		Achievements: []siakad.Achievement{{ID: "a-1", Title: "Lomba Robotik"}},
		Documents: []siakad.Document{
			doc("d-1", siakad.DocTypePrestasi, siakad.VerificationRejected, "sertifikat kadaluarsa"),
		},
	}
	st := categoryOf(t, Aggregate(snap, Policy{}), CategoryAchievement)
	if !st.Rejected || len(st.RejectedItems) != 1 {
		t.Fatalf("expected prestasi rejection folded in, got %+v", st)
	}
}
