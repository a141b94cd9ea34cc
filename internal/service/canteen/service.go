// Package canteen assembles canteen profiles from storage.
package canteen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"golang.org/x/sync/errgroup"

	"kantine-klima/internal/storage"
)

// ErrUpstreamUnavailable means the canteen data could not be fetched even
// after retrying.
var ErrUpstreamUnavailable = errors.New("canteen data unavailable")

const maxRetryDelay = 2 * time.Second

type Storage interface {
	ListCanteens(ctx context.Context) ([]storage.CanteenSummary, error)
	GetCanteenByID(ctx context.Context, id int64) (*storage.Canteen, error)
	GetCanteenWaste(ctx context.Context, id int64) (*storage.CanteenWaste, error)
	UpdateCanteen(ctx context.Context, id int64, upd storage.CanteenUpdate) (*storage.Canteen, error)
}

type Options struct {
	Attempts uint
	Delay    time.Duration
}

type Service struct {
	log     *slog.Logger
	storage Storage
	cache   *ProfileCache
	opts    Options
}

func NewService(log *slog.Logger, storage Storage, cache *ProfileCache, opts Options) *Service {
	if opts.Attempts == 0 {
		opts.Attempts = 1
	}

	return &Service{
		log:     log,
		storage: storage,
		cache:   cache,
		opts:    opts,
	}
}

func (s *Service) List(ctx context.Context) ([]storage.CanteenSummary, error) {
	const op = "service.canteen.List"

	var canteens []storage.CanteenSummary
	err := s.withRetry(ctx, op, func() error {
		var err error
		canteens, err = s.storage.ListCanteens(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return canteens, nil
}

// Profile returns the assembled profile of one canteen, from cache when
// possible. Unknown ids fail with storage.ErrCanteenNotFound without
// retrying; anything else that survives the retries is ErrUpstreamUnavailable.
func (s *Service) Profile(ctx context.Context, id int64) (*Profile, error) {
	const op = "service.canteen.Profile"

	if p, ok := s.cache.Get(id); ok {
		return p, nil
	}

	var p *Profile
	err := s.withRetry(ctx, op, func() error {
		var err error
		p, err = s.fetchProfile(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Set(id, p)

	return p, nil
}

// Update stores the changed fields and drops the cached profile.
func (s *Service) Update(ctx context.Context, id int64, upd storage.CanteenUpdate) (*Profile, error) {
	const op = "service.canteen.Update"

	if err := upd.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.storage.UpdateCanteen(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(id)

	p := BuildProfile(c, &storage.CanteenWaste{
		CanteenID:        c.ID,
		FoodWastePercent: c.FoodWastePercent,
		MealsPerDay:      c.MealsPerDay,
	})

	return p, nil
}

// fetchProfile reads the record and its waste metrics in parallel.
func (s *Service) fetchProfile(ctx context.Context, id int64) (*Profile, error) {
	var (
		c *storage.Canteen
		w *storage.CanteenWaste
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c, err = s.storage.GetCanteenByID(gCtx, id)
		if err != nil {
			return fmt.Errorf("details: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		w, err = s.storage.GetCanteenWaste(gCtx, id)
		if err != nil {
			return fmt.Errorf("waste: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return BuildProfile(c, w), nil
}

// withRetry runs fn until it succeeds, fails with not found, or the
// attempts run out. The result is either nil, a not-found error, a context
// error or ErrUpstreamUnavailable wrapping the last failure.
func (s *Service) withRetry(ctx context.Context, op string, fn func() error) error {
	var lastErr error

	err := retry.Do(
		func() error {
			lastErr = fn()
			if errors.Is(lastErr, storage.ErrCanteenNotFound) {
				return retry.Unrecoverable(lastErr)
			}
			return lastErr
		},
		retry.Attempts(s.opts.Attempts),
		retry.Delay(s.opts.Delay),
		retry.MaxDelay(maxRetryDelay),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.OnRetry(func(n uint, err error) {
			s.log.Warn("retrying canteen fetch",
				slog.String("op", op),
				slog.Int("attempt", int(n)+1),
				slog.String("error", err.Error()),
			)
		}),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(lastErr, storage.ErrCanteenNotFound):
		return lastErr
	case ctx.Err() != nil:
		return ctx.Err()
	case lastErr != nil:
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, lastErr)
	default:
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
}
