package status

// Category is one of the six fixed completion buckets the frontend renders as
// checklist rows.
type Category string

const (
	CategoryIdentity    Category = "identity"
	CategoryAddress     Category = "address"
	CategoryGuardian    Category = "guardian"
	CategoryAcademic    Category = "academic"
	CategoryAchievement Category = "achievement"
	CategoryPayment     Category = "payment"
)

func AllCategories() []Category {
	return []Category{
		CategoryIdentity,
		CategoryAddress,
		CategoryGuardian,
		CategoryAcademic,
		CategoryAchievement,
		CategoryPayment,
	}
}

// RejectedItem carries what the applicant needs to repair one rejected item:
// which record, which type, and the reviewer's reason.
type RejectedItem struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Reason string `json:"reason,omitempty"`
}

type CategoryStatus struct {
	Category      Category       `json:"category"`
	Uploaded      bool           `json:"uploaded"`
	Approved      bool           `json:"approved"`
	Rejected      bool           `json:"rejected"`
	RejectedCount int            `json:"rejectedCount,omitempty"`
	RejectedItems []RejectedItem `json:"rejectedItems,omitempty"`
}
