package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pfrederiksen/boulder-events/internal/config"
	"github.com/pfrederiksen/boulder-events/internal/event"
	"github.com/pfrederiksen/boulder-events/internal/logger"
	"github.com/pfrederiksen/boulder-events/internal/source"
	"github.com/pfrederiksen/boulder-events/internal/storage"
)

// SourceCount reports what happened to one source's records during a run.
type SourceCount struct {
	Name       string `json:"name"`
	Extracted  int    `json:"extracted"`
	Added      int    `json:"added"`
	Invalid    int    `json:"invalid"`
	Duplicates int    `json:"duplicates"`
	Failed     bool   `json:"failed,omitempty"`
}

// Summary is the result of one aggregation run.
type Summary struct {
	RunID         string        `json:"run_id"`
	StartedAt     time.Time     `json:"started_at"`
	Sources       []SourceCount `json:"sources"`
	TotalEvents   int           `json:"total_events"`
	NewEvents     int           `json:"new_events"`
	Invalid       int           `json:"invalid_records"`
	Duplicates    int           `json:"duplicates"`
	UnparsedDates int           `json:"unparsed_dates"`
	PastSkipped   int           `json:"past_skipped,omitempty"`
}

// Runner executes the aggregation pipeline: extract, normalize, tag, dedup,
// merge, sort, persist. Sources run sequentially in configured order, so
// identity-key ties always resolve to the earlier source.
type Runner struct {
	cfg        *config.Config
	store      *storage.Storage
	log        *logger.Logger
	normalizer *Normalizer
	tagger     *Tagger

	// SkipPast drops newly extracted events dated before today. Off by
	// default: the canonical dataset is curated manually.
	SkipPast bool
}

// NewRunner wires a pipeline over the given config and dataset storage.
func NewRunner(cfg *config.Config, store *storage.Storage, log *logger.Logger) *Runner {
	return &Runner{
		cfg:        cfg,
		store:      store,
		log:        log,
		normalizer: NewNormalizer(cfg),
		tagger:     NewTagger(cfg),
	}
}

// Run processes one full batch and writes the updated canonical dataset.
// Recoverable per-record conditions are absorbed into counts; only dataset
// read/write failures abort the run, leaving the prior file untouched.
func (r *Runner) Run() (*Summary, error) {
	summary := &Summary{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	counters := logger.NewCounters()

	dataset, err := r.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	r.log.Info("starting aggregation run", logger.Fields{
		"run_id":          summary.RunID,
		"existing_events": len(dataset.Events),
		"sources":         len(r.cfg.Sources),
	})

	loc := r.location()
	dedup := NewDeduplicator(dataset.Events)
	var admitted []*event.Event

	for _, sc := range r.cfg.Sources {
		count := SourceCount{Name: sc.Name}

		src, err := source.New(sc)
		if err != nil {
			r.log.Error("skipping misconfigured source", logger.Fields{"source": sc.Name}, err)
			count.Failed = true
			summary.Sources = append(summary.Sources, count)
			continue
		}

		records, err := src.Extract()
		if err != nil {
			r.log.Error("skipping failed source", logger.Fields{"source": sc.Name}, err)
			count.Failed = true
			summary.Sources = append(summary.Sources, count)
			continue
		}
		count.Extracted = len(records)

		for i := range records {
			raw := &records[i]

			evt, err := r.normalizer.Normalize(raw, src)
			if err != nil {
				count.Invalid++
				counters.Incr("invalid_records")
				r.log.Warn("skipping invalid record", logger.Fields{
					"source": sc.Name,
					"title":  raw.EffectiveTitle(),
				})
				continue
			}

			if DateUnparsed(raw, evt) {
				counters.Incr("unparsed_dates")
				r.log.Debug("date not parseable, treating as no fixed date", logger.Fields{
					"source": sc.Name,
					"title":  evt.Title,
					"date":   raw.Date,
				})
			}

			if r.SkipPast && evt.IsPast(loc) {
				summary.PastSkipped++
				continue
			}

			r.tagger.Tag(evt, raw)

			if !dedup.Admit(evt) {
				count.Duplicates++
				counters.Incr("duplicates")
				continue
			}

			count.Added++
			admitted = append(admitted, evt)
		}

		r.log.Info("processed source", logger.Fields{
			"source":    sc.Name,
			"extracted": count.Extracted,
			"added":     count.Added,
		})
		summary.Sources = append(summary.Sources, count)
	}

	combined, _ := event.Merge(dataset.Events, admitted)
	dataset.Events = combined

	if err := r.store.Save(dataset); err != nil {
		return nil, fmt.Errorf("saving dataset: %w", err)
	}

	summary.TotalEvents = len(combined)
	summary.NewEvents = len(admitted)
	summary.Invalid = int(counters.Get("invalid_records"))
	summary.Duplicates = dedup.Duplicates()
	summary.UnparsedDates = int(counters.Get("unparsed_dates"))

	r.log.Info("aggregation run complete", logger.Fields{
		"run_id":       summary.RunID,
		"total_events": summary.TotalEvents,
		"new_events":   summary.NewEvents,
		"counters":     counters.Snapshot(),
	})

	return summary, nil
}

// location resolves the configured timezone, falling back to UTC.
func (r *Runner) location() *time.Location {
	if r.cfg.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(r.cfg.Timezone)
	if err != nil {
		r.log.Warn("unknown timezone, using UTC", logger.Fields{"timezone": r.cfg.Timezone})
		return time.UTC
	}
	return loc
}
