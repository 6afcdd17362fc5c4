package registration

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"admissionsgateway/internal/snapshot"
	"admissionsgateway/internal/status"
	"admissionsgateway/pkg/siakad"
)

func TestBuildStatusResponse_CarriesPaymentDetails(t *testing.T) {
	expires := time.Unix(1790000000, 0)
	snap := status.Snapshot{
		Profile: &siakad.Profile{
			ID:                 "app-1",
			RegistrationStatus: siakad.RegistrationSubmitted,
			RegistrationNumber: "2026-0001",
		},
		Payment: &siakad.Payment{
			ID:        "p-1",
			Status:    siakad.PaymentPending,
			Amount:    decimal.RequireFromString("250000"),
			ExpiresAt: &expires,
		},
	}
	report := status.Aggregate(snap, status.Policy{})

	resp := buildStatusResponse(snap, snapshot.Sources{}, report)

	if resp.Phase != report.Phase || resp.Screen != report.Screen {
		t.Fatalf("expected report phase/screen carried, got %+v", resp)
	}
	if resp.RegistrationNumber != "2026-0001" {
		t.Fatalf("expected registration number, got %q", resp.RegistrationNumber)
	}
	if resp.Payment == nil {
		t.Fatalf("expected payment record in status payload")
	}
	if !resp.Payment.Amount.Equal(decimal.RequireFromString("250000")) {
		t.Fatalf("expected amount carried, got %s", resp.Payment.Amount)
	}
	if resp.Payment.ExpiresAt == nil || !resp.Payment.ExpiresAt.Equal(expires) {
		t.Fatalf("expected expiry carried, got %v", resp.Payment.ExpiresAt)
	}
}

func TestBuildStatusResponse_NoProfileNoPayment(t *testing.T) {
	report := status.Aggregate(status.Snapshot{}, status.Policy{})
	resp := buildStatusResponse(status.Snapshot{}, snapshot.Sources{}, report)

	if resp.RegistrationNumber != "" {
		t.Fatalf("expected empty registration number, got %q", resp.RegistrationNumber)
	}
	if resp.Payment != nil {
		t.Fatalf("expected nil payment, got %+v", resp.Payment)
	}
	if resp.Screen != status.ScreenStatusAwal {
		t.Fatalf("expected StatusAwal, got %s", resp.Screen)
	}
}
