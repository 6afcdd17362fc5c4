package registration

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"admissionsgateway/internal/api"
	"admissionsgateway/pkg/siakad"
)

var validate = validator.New()

type paymentProofForm struct {
	SenderBank string `validate:"required,min=2,max=64"`
	SenderName string `validate:"required,min=2,max=128"`
}

// UploadPaymentProof forwards a transfer proof plus sender bank metadata to
// the upstream. Metadata is validated here so obvious mistakes never leave
// the gateway.
func (h Handlers) UploadPaymentProof(w http.ResponseWriter, r *http.Request) {
	applicantID := api.ApplicantIDFromContext(r.Context())
	if applicantID == "" {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing applicant identity")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid multipart form")
		return
	}

	form := paymentProofForm{
		SenderBank: strings.TrimSpace(r.FormValue("sender_bank")),
		SenderName: strings.TrimSpace(r.FormValue("sender_name")),
	}
	if err := validate.Struct(form); err != nil {
		fields := map[string]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fieldName(fe.Field())] = "invalid value"
			}
		}
		api.WriteFieldError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid sender bank metadata", fields)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "file is required")
		return
	}
	defer file.Close()

	meta := siakad.PaymentProofMeta{
		SenderBank: form.SenderBank,
		SenderName: form.SenderName,
	}
	payment, err := h.Client.UploadPaymentProof(r.Context(), applicantID, meta, header.Filename, file)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{"payment": payment})
}

// fieldName maps struct field names back to the form field names.
func fieldName(s string) string {
	switch s {
	case "SenderBank":
		return "sender_bank"
	case "SenderName":
		return "sender_name"
	default:
		return s
	}
}
