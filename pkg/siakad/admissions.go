package siakad

import (
	"context"
	"io"
	"net/http"
)

// The upstream wraps every payload in a {"data": ...} envelope.

func (c Client) GetProfile(ctx context.Context, applicantID string) (*Profile, error) {
	var env struct {
		Data Profile `json:"data"`
	}
	if _, err := c.doJSON(ctx, http.MethodGet, "/applicants/"+applicantID+"/profile", nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c Client) ListDocuments(ctx context.Context, applicantID string) ([]Document, error) {
	var env struct {
		Data []Document `json:"data"`
	}
	if _, err := c.doJSON(ctx, http.MethodGet, "/applicants/"+applicantID+"/documents", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c Client) ListGuardians(ctx context.Context, applicantID string) ([]Guardian, error) {
	var env struct {
		Data []Guardian `json:"data"`
	}
	if _, err := c.doJSON(ctx, http.MethodGet, "/applicants/"+applicantID+"/guardians", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c Client) ListAchievements(ctx context.Context, applicantID string) ([]Achievement, error) {
	var env struct {
		Data []Achievement `json:"data"`
	}
	if _, err := c.doJSON(ctx, http.MethodGet, "/applicants/"+applicantID+"/achievements", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c Client) GetPayment(ctx context.Context, applicantID string) (*Payment, error) {
	var env struct {
		Data Payment `json:"data"`
	}
	if _, err := c.doJSON(ctx, http.MethodGet, "/applicants/"+applicantID+"/payment", nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// UploadDocument sends a replacement (or first) file for one document type.
// The upstream replaces any previous document of the same type and resets its
// verification status to pending.
func (c Client) UploadDocument(ctx context.Context, applicantID string, docType DocumentType, filename string, file io.Reader) (*Document, error) {
	var env struct {
		Data Document `json:"data"`
	}
	fields := map[string]string{"id_document_type": string(docType)}
	if _, err := c.doMultipart(ctx, "/applicants/"+applicantID+"/documents", fields, filename, file, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// PaymentProofMeta is the sender bank metadata attached to a transfer proof.
type PaymentProofMeta struct {
	SenderBank string
	SenderName string
}

func (c Client) UploadPaymentProof(ctx context.Context, applicantID string, meta PaymentProofMeta, filename string, file io.Reader) (*Payment, error) {
	var env struct {
		Data Payment `json:"data"`
	}
	fields := map[string]string{
		"sender_bank": meta.SenderBank,
		"sender_name": meta.SenderName,
	}
	if _, err := c.doMultipart(ctx, "/applicants/"+applicantID+"/payment/proof", fields, filename, file, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
