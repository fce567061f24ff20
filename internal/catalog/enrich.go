package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/profession-catalog/internal/llm"
	"github.com/jonathan/profession-catalog/internal/types"
)

// ProgressEvent reports the outcome of one enrichment unit as it completes.
type ProgressEvent struct {
	JobID    string
	Name     string
	Accepted bool
	Reason   string
	Done     int
	Total    int
}

// ProgressCallback is invoked once per completed unit, in completion order.
// Callbacks run serially while the batch lock is held, so Done values arrive
// strictly increasing; keep them cheap.
type ProgressCallback func(event ProgressEvent)

// Result accumulates the outcome of an enrichment batch.
// Accepted+Rejected always account for every submitted name.
type Result struct {
	Accepted []types.ProfessionRecord
	Rejected []types.RejectionEntry
}

// EnrichAll runs Stage B: one detail fetch-and-validate unit per name, with
// at most concurrency units in flight. Units never fail the batch; each
// outcome lands in the accepted or rejected list as it completes.
func EnrichAll(ctx context.Context, fetcher Fetcher, locale string, names []string, concurrency int, onProgress ProgressCallback) Result {
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		g    errgroup.Group
		mu   sync.Mutex
		res  Result
		done int
	)
	g.SetLimit(concurrency)

	for _, name := range names {
		name := name
		g.Go(func() error {
			jobID := uuid.NewString()
			rec, rej := enrichOne(ctx, fetcher, locale, name)

			mu.Lock()
			if rej != nil {
				res.Rejected = append(res.Rejected, *rej)
			} else {
				res.Accepted = append(res.Accepted, *rec)
			}
			done++
			event := ProgressEvent{
				JobID:    jobID,
				Name:     name,
				Accepted: rej == nil,
				Done:     done,
				Total:    len(names),
			}
			if rej != nil {
				event.Reason = rej.Reason
			}
			if onProgress != nil {
				onProgress(event)
			}
			mu.Unlock()
			return nil
		})
	}

	// Units never return errors; Wait only synchronizes completion.
	_ = g.Wait()
	return res
}

// enrichOne fetches and validates a single profession. An empty ladder
// result is a fetch failure; a constraint violation is a validation failure.
func enrichOne(ctx context.Context, fetcher Fetcher, locale, name string) (*types.ProfessionRecord, *types.RejectionEntry) {
	payload := fetcher.Fetch(ctx, llm.DetailRequest(locale, name))
	if len(payload) == 0 {
		return nil, &types.RejectionEntry{
			Profession: name,
			Reason:     types.FetchReason("empty_response"),
		}
	}

	rec := DetailRecord(name, payload)
	if err := rec.Validate(); err != nil {
		return nil, &types.RejectionEntry{
			Profession: name,
			Reason:     classifyValidation(err),
		}
	}
	return rec, nil
}
