package services

import (
	"context"
	"customer-directory-service/internal/domain"
	"customer-directory-service/internal/platform/obs"
	"customer-directory-service/internal/ports"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const loadKey = "customers"

// Options bound how long loading may take.
type Options struct {
	// LoadTimeout bounds a single call into the CustomerSource.
	LoadTimeout time.Duration
	// WaitTimeout bounds how long one caller waits for a load in flight.
	WaitTimeout time.Duration
}

func DefaultOptions() Options {
	return Options{LoadTimeout: 30 * time.Second, WaitTimeout: 30 * time.Second}
}

// DirectoryService owns the customer directory and answers queries over it.
//
// The directory is loaded from the source at most once per service. Any
// number of goroutines may call Initialize or a query concurrently: the
// first caller starts the load, the others wait for that same load, and
// nobody sees a partially built directory. A failed load is reported to
// every caller that waited on it and the next call tries again.
//
// Construct one service at startup and pass it to its consumers.
type DirectoryService struct {
	source ports.CustomerSource
	log    zerolog.Logger
	opts   Options

	group    singleflight.Group
	dir      atomic.Pointer[domain.CustomerSet]
	attempts atomic.Int64
}

func NewDirectoryService(source ports.CustomerSource, log zerolog.Logger, opts Options) *DirectoryService {
	def := DefaultOptions()
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = def.LoadTimeout
	}
	if opts.WaitTimeout <= 0 {
		opts.WaitTimeout = def.WaitTimeout
	}

	return &DirectoryService{
		source: source,
		log:    log.With().Str("component", "directory").Logger(),
		opts:   opts,
	}
}

// Initialize ensures the directory is loaded. It is a no-op once loaded.
func (s *DirectoryService) Initialize(ctx context.Context) error {
	_, err := s.directory(ctx)
	return err
}

// IsLoaded reports whether the directory is populated. It never blocks.
func (s *DirectoryService) IsLoaded() bool {
	return s.dir.Load() != nil
}

// Snapshot returns the loaded directory without waiting, or false when it
// has not been loaded yet.
func (s *DirectoryService) Snapshot() (*domain.CustomerSet, bool) {
	d := s.dir.Load()
	return d, d != nil
}

// LoadAttempts reports how many times the source has been asked for data.
func (s *DirectoryService) LoadAttempts() int64 {
	return s.attempts.Load()
}

// GetCustomer returns the customer with the given number. ok is false when
// no such customer exists.
func (s *DirectoryService) GetCustomer(ctx context.Context, id string) (_ *domain.Customer, ok bool, err error) {
	defer obs.Time(ctx, s.log, "directory.GetCustomer")(&err)

	dir, err := s.directory(ctx)
	if err != nil {
		return nil, false, err
	}

	c, ok := dir.Get(id)
	return c, ok, nil
}

// CustomersByDay returns the customers delivered on day that can be placed
// on a map, in dataset order. day is a full name or a trip code. An unknown
// day, or Sunday, yields an empty set and a warning rather than an error.
func (s *DirectoryService) CustomersByDay(ctx context.Context, day string) (_ *domain.CustomerSet, err error) {
	defer obs.Time(ctx, s.log, "directory.CustomersByDay")(&err)

	dir, err := s.directory(ctx)
	if err != nil {
		return nil, err
	}

	code, ok := domain.ParseDayCode(day)
	if !ok {
		s.log.Warn().Str("req_id", obs.RequestID(ctx)).Str("day", day).Msg("unknown delivery day")
		return domain.NewCustomerSet(0), nil
	}

	out := dir.Filter(func(c *domain.Customer) bool {
		return c.DeliversOn(code) && c.Geolocated()
	})

	s.log.Debug().Str("day", day).Int("customers", out.Len()).Msg("customers for day")
	return out, nil
}

// SearchCustomers returns every customer whose number, name, address or
// city contains query, ignoring case. An empty query matches everyone.
func (s *DirectoryService) SearchCustomers(ctx context.Context, query string) (_ *domain.CustomerSet, err error) {
	defer obs.Time(ctx, s.log, "directory.SearchCustomers")(&err)

	dir, err := s.directory(ctx)
	if err != nil {
		return nil, err
	}

	lowerQuery := strings.ToLower(query)
	return dir.Filter(func(c *domain.Customer) bool {
		return c.Matches(lowerQuery)
	}), nil
}

// DatabaseStats computes aggregate counts over the whole directory.
func (s *DirectoryService) DatabaseStats(ctx context.Context) (_ domain.Stats, err error) {
	defer obs.Time(ctx, s.log, "directory.DatabaseStats")(&err)

	dir, err := s.directory(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	return ComputeStats(dir), nil
}

// directory returns the loaded directory, loading it or waiting for the
// load in flight as needed.
func (s *DirectoryService) directory(ctx context.Context) (*domain.CustomerSet, error) {
	if d := s.dir.Load(); d != nil {
		return d, nil
	}

	ch := s.group.DoChan(loadKey, s.load)

	timer := time.NewTimer(s.opts.WaitTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.CustomerSet), nil
	case <-ctx.Done():
		return nil, &LoadError{
			Err:     fmt.Errorf("wait for load: %w", ctx.Err()),
			Timeout: errors.Is(ctx.Err(), context.DeadlineExceeded),
		}
	case <-timer.C:
		return nil, &LoadError{
			Err:     fmt.Errorf("wait for load: no result after %s", s.opts.WaitTimeout),
			Timeout: true,
		}
	}
}

// load runs inside the singleflight group, so at most one executes at a time.
// It is not tied to any caller's context: a caller giving up must not abort
// the load for everyone else.
func (s *DirectoryService) load() (any, error) {
	if d := s.dir.Load(); d != nil {
		return d, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.LoadTimeout)
	defer cancel()

	attempt := s.attempts.Add(1)
	start := time.Now()
	s.log.Info().Int64("attempt", attempt).Msg("loading customer directory")

	dir, err := s.source.LoadCustomers(ctx)
	if err == nil && dir == nil {
		err = errors.New("source returned no directory")
	}
	if err != nil {
		loadErr := &LoadError{
			Err:     fmt.Errorf("load customers: %w", err),
			Timeout: errors.Is(err, context.DeadlineExceeded),
		}
		s.log.Error().Err(err).Int64("attempt", attempt).Dur("dur", time.Since(start)).Msg("customer directory load failed")
		return nil, loadErr
	}

	s.dir.Store(dir)
	s.log.Info().
		Int("customers", dir.Len()).
		Int64("attempt", attempt).
		Dur("dur", time.Since(start)).
		Msg("customer directory loaded")

	return dir, nil
}
