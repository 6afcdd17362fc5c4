package siakad

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegistrationStatus string

const (
	RegistrationDraft     RegistrationStatus = "draft"
	RegistrationSubmitted RegistrationStatus = "submitted"
	RegistrationReviewed  RegistrationStatus = "reviewed"
	RegistrationApproved  RegistrationStatus = "approved"
	RegistrationRejected  RegistrationStatus = "rejected"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentPending             PaymentStatus = "pending"
	PaymentWaitingVerification PaymentStatus = "waiting_verification"
	PaymentVerified            PaymentStatus = "verified"
	PaymentRejected            PaymentStatus = "rejected"
	PaymentExpired             PaymentStatus = "expired"
)

// DocumentType is the upstream category key for an uploaded file. Multiple
// documents may share a type.
type DocumentType string

const (
	DocTypeKTP       DocumentType = "ktp"
	DocTypeAkta      DocumentType = "akta_kelahiran"
	DocTypeKK        DocumentType = "kartu_keluarga"
	DocTypeIjazah    DocumentType = "ijazah"
	DocTypeTranskrip DocumentType = "transkrip"
	DocTypeSKL       DocumentType = "skl"
	DocTypePrestasi  DocumentType = "sertifikat_prestasi"
)

func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(s) {
	case DocTypeKTP, DocTypeAkta, DocTypeKK, DocTypeIjazah, DocTypeTranskrip, DocTypeSKL, DocTypePrestasi:
		return DocumentType(s), true
	default:
		return "", false
	}
}

type Profile struct {
	ID                 string             `json:"id"`
	FullName           string             `json:"full_name"`
	RegistrationStatus RegistrationStatus `json:"registration_status"`
	RegistrationNumber string             `json:"registration_number,omitempty"`
	ProgramID          string             `json:"id_program"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type Document struct {
	ID                 string             `json:"id"`
	DocumentType       DocumentType       `json:"id_document_type"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	RejectionReason    string             `json:"rejection_reason,omitempty"`
	FilePath           string             `json:"file_path"`
	UploadedAt         time.Time          `json:"uploaded_at"`
}

type Guardian struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone,omitempty"`
}

type Achievement struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level string `json:"level,omitempty"`
	Year  int    `json:"year,omitempty"`
}

type Payment struct {
	ID               string          `json:"id"`
	Status           PaymentStatus   `json:"status"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentProofFile string          `json:"payment_proof_file,omitempty"`
	SenderBank       string          `json:"sender_bank,omitempty"`
	SenderName       string          `json:"sender_name,omitempty"`
	RejectionReason  string          `json:"rejection_reason,omitempty"`
	ExpiresAt        *time.Time      `json:"expires_at,omitempty"`
}
