package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pokemasdb/core/entity"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrTrainerNotFound is wrapped by *LookupError.
	ErrTrainerNotFound = errors.New("trainer not found")
	// ErrUnavailable means the source could not be reached or listed.
	ErrUnavailable = errors.New("source unavailable")
)

// LookupError reports a trainer record the source refused to serve.
type LookupError struct {
	Trainer string
	// Status is the HTTP-style status code (404 when the record is absent).
	Status int
	// Location is the URL, object key or table the record was requested from.
	Location string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("trainer %q: error code %d was returned from %s", e.Trainer, e.Status, e.Location)
}

func (e *LookupError) Unwrap() error {
	return ErrTrainerNotFound
}

// Source supplies raw trainer records.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// TrainerNames lists every trainer, in the order records should be built.
	TrainerNames(ctx context.Context) ([]string, error)
	// Trainer returns the raw JSON record of one trainer.
	Trainer(ctx context.Context, name string) ([]byte, error)
}

// Sink stores raw trainer records, typically to mirror another Source.
type Sink interface {
	// SaveTrainers replaces the stored records with records, keeping their order.
	SaveTrainers(ctx context.Context, records []Record) error
}

// Record is one raw trainer payload.
type Record struct {
	Name    string
	Payload []byte
}

// Result is the outcome of FetchAll.
type Result struct {
	// Trainers are the parsed records in listing order.
	Trainers []*entity.Trainer
	// Records are the raw payloads in listing order.
	Records []Record
	// Bytes is the total payload size received.
	Bytes int64
	// Took is the wall time spent fetching and parsing.
	Took time.Duration
}

// FetchAll lists every trainer and fetches and parses each record with at
// most concurrency requests in flight. The first failure cancels the
// remaining requests and is returned.
func FetchAll(ctx context.Context, src Source, concurrency int, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	start := time.Now()

	names, err := src.TrainerNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainers from %s: %w", src.Name(), err)
	}
	logger.Debug("Fetching trainer records", zap.String("source", src.Name()), zap.Int("trainers", len(names)))

	trainers := make([]*entity.Trainer, len(names))
	records := make([]Record, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, name := range names {
		g.Go(func() error {
			payload, err := src.Trainer(gctx, name)
			if err != nil {
				return fmt.Errorf("failed to fetch trainer %q: %w", name, err)
			}
			t, err := entity.ParseTrainerJSON(payload)
			if err != nil {
				return fmt.Errorf("failed to parse trainer %q: %w", name, err)
			}
			trainers[i] = t
			records[i] = Record{Name: name, Payload: payload}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Trainers: trainers, Records: records, Took: time.Since(start)}
	for _, r := range records {
		res.Bytes += int64(len(r.Payload))
	}
	logger.Info("Fetched trainer records",
		zap.String("source", src.Name()),
		zap.Int("trainers", len(trainers)),
		zap.String("size", humanize.Bytes(uint64(res.Bytes))),
		zap.Duration("took", res.Took),
	)
	return res, nil
}

// Mirror copies every record from src into dst.
func Mirror(ctx context.Context, src Source, dst Sink, concurrency int, logger *zap.Logger) (*Result, error) {
	res, err := FetchAll(ctx, src, concurrency, logger)
	if err != nil {
		return nil, err
	}
	if err := dst.SaveTrainers(ctx, res.Records); err != nil {
		return nil, fmt.Errorf("failed to save trainer records: %w", err)
	}
	return res, nil
}

// parseListing reads {"trainers": [...]} where entries are names or objects
// carrying a "name".
func parseListing(data []byte) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, &entity.ParseError{Entity: "trainer list", Reason: "malformed JSON"}
	}
	list := gjson.GetBytes(data, "trainers")
	if !list.IsArray() {
		return nil, &entity.ParseError{Entity: "trainer list", Field: "trainers", Reason: "expected array"}
	}

	var names []string
	var perr error
	i := 0
	list.ForEach(func(_, v gjson.Result) bool {
		defer func() { i++ }()
		switch {
		case v.Type == gjson.String:
			names = append(names, v.String())
		case v.IsObject() && v.Get("name").Type == gjson.String:
			names = append(names, v.Get("name").String())
		default:
			perr = &entity.ParseError{Entity: "trainer list", Field: fmt.Sprintf("trainers[%d]", i), Reason: "expected name"}
			return false
		}
		return true
	})
	if perr != nil {
		return nil, perr
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

type listingEntry struct {
	Name string `json:"name"`
}

// encodeListing is the inverse of parseListing.
func encodeListing(names []string) ([]byte, error) {
	entries := make([]listingEntry, len(names))
	for i, n := range names {
		entries[i] = listingEntry{Name: n}
	}
	return json.Marshal(struct {
		Trainers []listingEntry `json:"trainers"`
	}{entries})
}
