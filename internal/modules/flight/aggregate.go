// README: Parallel multi-source flight search with partial-failure tolerance.
package flight

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Darkcom18/airlines-agent/internal/sftech"
)

// PageSize is how many offers a reply shows at most.
const PageSize = 10

// Searcher is one flight-search source. *sftech.Client satisfies it.
type Searcher interface {
	Source() string
	Search(ctx context.Context, req sftech.SearchRequest) (*sftech.SearchResponse, error)
}

// AggregateResult is the merged outcome across all sources.
type AggregateResult struct {
	Success       bool
	SearchID      string
	Flights       []sftech.FlightOffer
	TotalResults  int
	HasMore       bool
	FailedSources []string
}

// SearchAll fans the request out to every source concurrently and
// merges whatever comes back. A source failing never fails the search:
// Success means at least one offer was found anywhere. Merged offers
// are sorted by total price ascending; ties keep source order stable.
func SearchAll(ctx context.Context, searchers []Searcher, req sftech.SearchRequest) AggregateResult {
	type slot struct {
		resp *sftech.SearchResponse
		err  error
	}
	slots := make([]slot, len(searchers))

	var wg sync.WaitGroup
	for i, sr := range searchers {
		wg.Add(1)
		go func(i int, sr Searcher) {
			defer wg.Done()
			resp, err := sr.Search(ctx, req)
			slots[i] = slot{resp: resp, err: err}
		}(i, sr)
	}
	wg.Wait()

	agg := AggregateResult{SearchID: uuid.NewString()}
	for i, sl := range slots {
		if sl.err != nil {
			log.Printf("flight search source=%s failed: %v", searchers[i].Source(), sl.err)
			agg.FailedSources = append(agg.FailedSources, searchers[i].Source())
			continue
		}
		agg.Flights = append(agg.Flights, sl.resp.Flights...)
	}

	sort.SliceStable(agg.Flights, func(a, b int) bool {
		return agg.Flights[a].TotalPrice < agg.Flights[b].TotalPrice
	})

	agg.TotalResults = len(agg.Flights)
	agg.Success = agg.TotalResults > 0
	agg.HasMore = agg.TotalResults > PageSize
	return agg
}
