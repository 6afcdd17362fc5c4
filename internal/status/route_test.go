package status

import "testing"

func TestRouteFor_MappingTable(t *testing.T) {
	cases := []struct {
		phase Phase
		want  Screen
	}{
		{PhaseDraft, ScreenStatusAwal},
		{PhaseAwaitingReview, ScreenTungguKonfirmasi},
		{PhaseInReviewWithFeedback, ScreenStatusProses},
		{PhaseReviewed, ScreenStatusProses},
		{PhaseApproved, ScreenStatusDoneOK},
		{PhaseRejected, ScreenStatusDoneNo},
	}
	for _, c := range cases {
		if got := RouteFor(c.phase); got != c.want {
			t.Fatalf("RouteFor(%s): expected %s, got %s", c.phase, c.want, got)
		}
	}
}

func TestRouteFor_TotalOverAllPhases(t *testing.T) {
	for _, p := range AllPhases() {
		if got := RouteFor(p); got == "" {
			t.Fatalf("RouteFor(%s): expected a screen, got empty", p)
		}
	}
}

func TestRouteFor_UnknownPhaseFallsBackToStart(t *testing.T) {
	if got := RouteFor(Phase("limbo")); got != ScreenStatusAwal {
		t.Fatalf("expected StatusAwal fallback, got %s", got)
	}
}

func TestParsePhase(t *testing.T) {
	for _, p := range AllPhases() {
		got, err := ParsePhase(string(p))
		if err != nil || got != p {
			t.Fatalf("ParsePhase(%s): got %s err=%v", p, got, err)
		}
	}
	if _, err := ParsePhase("limbo"); err == nil {
		t.Fatalf("expected error for unknown phase")
	}
}
