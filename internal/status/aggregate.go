package status

import (
	"admissionsgateway/pkg/siakad"
)

// Snapshot is one applicant's independently-fetched records. Nil Profile or
// Payment means the upstream has no such record yet; the aggregation treats
// both as neutral rather than failing.
type Snapshot struct {
	Profile      *siakad.Profile
	Documents    []siakad.Document
	Guardians    []siakad.Guardian
	Achievements []siakad.Achievement
	Payment      *siakad.Payment
}

// Policy resolves the two aggregation rules the business owner has not
// settled; the source app disagreed with itself on both (see DESIGN.md).
type Policy struct {
	// AchievementRequired treats an empty achievement list as a rejection the
	// applicant must address instead of an optional, always-satisfied step.
	AchievementRequired bool

	// AcademicStrict requires transcript plus either diploma or SKL.
	// When false any one academic document satisfies the category.
	AcademicStrict bool
}

type Report struct {
	Categories  []CategoryStatus `json:"categories"`
	AnyRejected bool             `json:"anyRejected"`
	Phase       Phase            `json:"phase"`
	Screen      Screen           `json:"screen"`
}

// Aggregate derives the per-category completion state, the overall phase, and
// the destination screen from one snapshot. It is pure: the same snapshot and
// policy always produce the same report.
func Aggregate(snap Snapshot, pol Policy) Report {
	categories := []CategoryStatus{
		identityStatus(snap.Documents),
		addressStatus(snap.Documents),
		guardianStatus(snap.Guardians),
		academicStatus(snap.Documents, pol),
		achievementStatus(snap.Achievements, snap.Documents, pol),
		paymentStatus(snap.Payment),
	}

	anyRejected := false
	for _, c := range categories {
		if c.Rejected {
			anyRejected = true
			break
		}
	}

	phase := phaseOf(snap.Profile, snap.Documents)

	return Report{
		Categories:  categories,
		AnyRejected: anyRejected,
		Phase:       phase,
		Screen:      RouteFor(phase),
	}
}

// identityStatus requires both the ID card and the birth certificate.
func identityStatus(documents []siakad.Document) CategoryStatus {
	return documentSetStatus(CategoryIdentity, documents,
		[]siakad.DocumentType{siakad.DocTypeKTP, siakad.DocTypeAkta},
		requireAll)
}

// addressStatus covers the single family-card document.
func addressStatus(documents []siakad.Document) CategoryStatus {
	return documentSetStatus(CategoryAddress, documents,
		[]siakad.DocumentType{siakad.DocTypeKK},
		requireAll)
}

// guardianStatus has no reviewer verdict in the data model: presence of at
// least one guardian record completes the step and nothing can reject it.
func guardianStatus(guardians []siakad.Guardian) CategoryStatus {
	uploaded := len(guardians) > 0
	return CategoryStatus{
		Category: CategoryGuardian,
		Uploaded: uploaded,
		Approved: uploaded,
	}
}

// academicStatus covers diploma, transcript, and certificate-of-completion.
// Completion depends on policy: strict means transcript plus one of the other
// two; loose means any one of the three.
func academicStatus(documents []siakad.Document, pol Policy) CategoryStatus {
	types := []siakad.DocumentType{siakad.DocTypeIjazah, siakad.DocTypeTranskrip, siakad.DocTypeSKL}
	st := documentSetStatus(CategoryAcademic, documents, types, requireAny)

	if pol.AcademicStrict {
		present := typesPresent(documents, types)
		st.Uploaded = present[siakad.DocTypeTranskrip] &&
			(present[siakad.DocTypeIjazah] || present[siakad.DocTypeSKL])
		st.Approved = st.Approved && st.Uploaded
	}
	return st
}

// achievementStatus is satisfied by at least one achievement record. Prestasi
// certificate documents back the records, so their reviewer verdicts fold into
// this category's rejection state.
func achievementStatus(achievements []siakad.Achievement, documents []siakad.Document, pol Policy) CategoryStatus {
	st := documentSetStatus(CategoryAchievement, documents,
		[]siakad.DocumentType{siakad.DocTypePrestasi},
		requireAny)

	uploaded := len(achievements) > 0
	st.Uploaded = uploaded
	st.Approved = uploaded && !st.Rejected
	if pol.AchievementRequired && !uploaded {
		st.Rejected = true
		st.Approved = false
	}
	return st
}

// paymentStatus derives entirely from the payment record; a missing record is
// a step not started.
func paymentStatus(payment *siakad.Payment) CategoryStatus {
	st := CategoryStatus{Category: CategoryPayment}
	if payment == nil {
		return st
	}
	st.Uploaded = payment.PaymentProofFile != ""
	st.Approved = payment.Status == siakad.PaymentVerified
	if payment.Status == siakad.PaymentRejected {
		st.Rejected = true
		st.RejectedCount = 1
		st.RejectedItems = []RejectedItem{{
			ID:     payment.ID,
			Type:   "payment",
			Reason: payment.RejectionReason,
		}}
	}
	return st
}

type presenceRule int

const (
	requireAll presenceRule = iota
	requireAny
)

// documentSetStatus evaluates one category over the documents matching its
// type keys. Rejection wins over everything: one rejected document marks the
// category rejected regardless of its siblings.
func documentSetStatus(cat Category, documents []siakad.Document, types []siakad.DocumentType, rule presenceRule) CategoryStatus {
	st := CategoryStatus{Category: cat}

	present := typesPresent(documents, types)
	allApproved := true
	matched := 0
	for _, d := range documents {
		if !typeIn(d.DocumentType, types) {
			continue
		}
		matched++
		switch d.VerificationStatus {
		case siakad.VerificationRejected:
			st.Rejected = true
			st.RejectedCount++
			st.RejectedItems = append(st.RejectedItems, RejectedItem{
				ID:     d.ID,
				Type:   string(d.DocumentType),
				Reason: d.RejectionReason,
			})
			allApproved = false
		case siakad.VerificationApproved:
		default:
			allApproved = false
		}
	}

	switch rule {
	case requireAll:
		st.Uploaded = len(present) == len(types)
	case requireAny:
		st.Uploaded = len(present) > 0
	}

	st.Approved = st.Uploaded && matched > 0 && allApproved
	return st
}

func typesPresent(documents []siakad.Document, types []siakad.DocumentType) map[siakad.DocumentType]bool {
	present := make(map[siakad.DocumentType]bool, len(types))
	for _, d := range documents {
		if typeIn(d.DocumentType, types) {
			present[d.DocumentType] = true
		}
	}
	return present
}

func typeIn(t siakad.DocumentType, types []siakad.DocumentType) bool {
	for _, want := range types {
		if t == want {
			return true
		}
	}
	return false
}
