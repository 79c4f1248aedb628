package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/ahmethakanbesel/fxhist/internal/rate"
	"github.com/ahmethakanbesel/fxhist/internal/tsv"
)

const defaultBatchSize = 500

type Service struct {
	repo      rate.Repository
	batchSize int
}

func NewService(repo rate.Repository, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		batchSize: defaultBatchSize,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

type Option func(*Service)

// WithBatchSize sets how many parsed rates are buffered before each save.
func WithBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// Files ingests each path in order and returns the total number of rates
// stored. The first parse or storage error aborts the run.
func (s *Service) Files(ctx context.Context, paths ...string) (int64, error) {
	log := slog.With("run", uuid.NewString())

	var total int64
	for _, path := range paths {
		n, err := s.file(ctx, path)
		total += n
		if err != nil {
			return total, err
		}
		log.Info("ingested source", "path", path, "records", n)
	}
	log.Debug("ingestion finished", "sources", len(paths), "records", total)
	return total, nil
}

func (s *Service) file(ctx context.Context, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = f.Close() }()

	n, err := s.Reader(ctx, f)
	if err != nil {
		return n, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Reader streams one TSV source into the repository.
func (s *Service) Reader(ctx context.Context, src io.Reader) (int64, error) {
	r := tsv.NewReader(src)
	batch := make([]rate.Rate, 0, s.batchSize)
	var total int64

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := s.repo.SaveRates(ctx, batch)
		total += n
		batch = batch[:0]
		return err
	}

	for r.Next() {
		batch = append(batch, r.Rate())
		if len(batch) < s.batchSize {
			continue
		}
		if err := flush(); err != nil {
			return total, err
		}
	}
	if err := r.Err(); err != nil {
		return total, err
	}
	if err := flush(); err != nil {
		return total, err
	}
	return total, nil
}
