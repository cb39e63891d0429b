package match

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cardledger/server/internal/importer"
)

// SearchFunc queries the external reference catalog by card name.
type SearchFunc func(ctx context.Context, query string) ([]Candidate, error)

// BatchMatch resolves a batch of records against the catalog with one
// search per unique normalized name. Records sharing a name are matched
// against the same candidate set.
//
// Name groups run on a bounded worker pool (cfg.Concurrency). Failures are
// isolated per group: a search error records a nil match for every record
// in that group and the rest of the batch continues. The returned map has
// one entry per record with a non-empty name; records whose name
// normalizes to empty are never searched and map reads for them return
// nil, as does any record that found no match.
func BatchMatch(ctx context.Context, records []*importer.CanonicalRecord, search SearchFunc, cfg Config) map[*importer.CanonicalRecord]*Result {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	groups := groupByName(records)

	results := make(map[*importer.CanonicalRecord]*Result, len(records))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	limit := cfg.Concurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for _, group := range groups {
		group := group
		g.Go(func() error {
			candidates, err := search(ctx, group.records[0].Name)
			if err != nil {
				log.Warn("catalog search failed; recording no match for group",
					"name", group.name, "records", len(group.records), "error", err)
				candidates = nil
			}

			mu.Lock()
			defer mu.Unlock()
			for _, rec := range group.records {
				if err != nil {
					results[rec] = nil
					continue
				}
				results[rec] = FindBestMatch(rec, candidates, cfg)
			}
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes the pool.
	_ = g.Wait()

	return results
}

type nameGroup struct {
	name    string
	records []*importer.CanonicalRecord
}

// groupByName buckets records by normalized name, preserving discovery
// order of the groups.
func groupByName(records []*importer.CanonicalRecord) []nameGroup {
	index := make(map[string]int)
	var groups []nameGroup

	for _, rec := range records {
		key := NormalizeName(rec.Name)
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nameGroup{name: key})
		}
		groups[i].records = append(groups[i].records, rec)
	}

	return groups
}
