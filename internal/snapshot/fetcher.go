package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"admissionsgateway/internal/status"
	"admissionsgateway/pkg/siakad"
)

// fetchTimeout bounds the detached fetch body below.
const fetchTimeout = 30 * time.Second

// SourceResult records how one upstream fetch settled. An expected absence
// (no profile or payment record yet) counts as OK.
type SourceResult struct {
	OK  bool   `json:"ok"`
	Err string `json:"error,omitempty"`
}

// Sources is the per-source diagnostics for one snapshot, surfaced to the
// frontend so it can tell "empty" apart from "temporarily unavailable".
type Sources struct {
	Profile      SourceResult `json:"profile"`
	Documents    SourceResult `json:"documents"`
	Guardians    SourceResult `json:"guardians"`
	Achievements SourceResult `json:"achievements"`
	Payment      SourceResult `json:"payment"`
}

// Fetcher performs the five-way parallel fetch behind one status request.
// Overlapping refreshes for the same applicant (pull-to-refresh while a fetch
// is already in flight) are coalesced so derived state is never built from
// interleaved results.
type Fetcher struct {
	Client siakad.Client

	sf singleflight.Group
}

type fetchResult struct {
	snap status.Snapshot
	src  Sources
}

// Fetch returns a settled snapshot for the applicant.
//
// Failure semantics: every source failure except the profile's is absorbed
// into a neutral default and recorded in Sources. A missing profile is a
// meaningful signal (draft phase); any other profile failure aborts the fetch.
func (f *Fetcher) Fetch(ctx context.Context, applicantID string) (status.Snapshot, Sources, error) {
	// The fetch body runs on a detached context: the caller that started a
	// coalesced flight may disconnect without failing the followers sharing it.
	v, err, _ := f.sf.Do(applicantID, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		return f.fetch(fctx, applicantID)
	})
	if err != nil {
		return status.Snapshot{}, Sources{}, err
	}
	res := v.(fetchResult)
	return res.snap, res.src, nil
}

func (f *Fetcher) fetch(ctx context.Context, applicantID string) (fetchResult, error) {
	var res fetchResult

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := f.Client.GetProfile(gctx, applicantID)
		if err != nil {
			var nf siakad.NotFoundError
			if errors.As(err, &nf) {
				// No profile yet: the registration has not started.
				res.src.Profile = SourceResult{OK: true}
				return nil
			}
			return fmt.Errorf("fetch profile: %w", err)
		}
		res.snap.Profile = p
		res.src.Profile = SourceResult{OK: true}
		return nil
	})

	g.Go(func() error {
		d, err := f.Client.ListDocuments(gctx, applicantID)
		if err != nil {
			res.src.Documents = settleFailure(err)
			return nil
		}
		res.snap.Documents = d
		res.src.Documents = SourceResult{OK: true}
		return nil
	})

	g.Go(func() error {
		gs, err := f.Client.ListGuardians(gctx, applicantID)
		if err != nil {
			res.src.Guardians = settleFailure(err)
			return nil
		}
		res.snap.Guardians = gs
		res.src.Guardians = SourceResult{OK: true}
		return nil
	})

	g.Go(func() error {
		as, err := f.Client.ListAchievements(gctx, applicantID)
		if err != nil {
			res.src.Achievements = settleFailure(err)
			return nil
		}
		res.snap.Achievements = as
		res.src.Achievements = SourceResult{OK: true}
		return nil
	})

	g.Go(func() error {
		p, err := f.Client.GetPayment(gctx, applicantID)
		if err != nil {
			var nf siakad.NotFoundError
			if errors.As(err, &nf) {
				// No payment record yet: the step has not started.
				res.src.Payment = SourceResult{OK: true}
				return nil
			}
			res.src.Payment = settleFailure(err)
			return nil
		}
		res.snap.Payment = p
		res.src.Payment = SourceResult{OK: true}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fetchResult{}, err
	}
	return res, nil
}

// settleFailure turns one source failure into diagnostics. A 404 on a list
// endpoint is an empty collection, not an error.
func settleFailure(err error) SourceResult {
	var nf siakad.NotFoundError
	if errors.As(err, &nf) {
		return SourceResult{OK: true}
	}
	return SourceResult{Err: err.Error()}
}
