package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/tree"
)

// ErrSuperseded is returned when a load finished after the user had already
// navigated to a different root family; its results are discarded so stale
// cross-family data never reaches the renderer.
var ErrSuperseded = errors.New("load superseded by a newer navigation")

// ErrNoSession is returned when an operation targets a family that is not
// the currently loaded one.
var ErrNoSession = errors.New("family is not loaded")

// Service orchestrates loading a family tree and holding its interactive
// state. It keeps a single current session (one tree is viewed at a time);
// re-navigating replaces it, and every load is guarded by a sequence
// counter so in-flight results from the previous family are ignored.
type Service struct {
	loader  *tree.Loader
	logger  *logrus.Logger
	metrics *Metrics
	settle  time.Duration

	loadSeq atomic.Int64

	mu      sync.RWMutex
	session *Session
}

// New creates the tree service.
func New(loader *tree.Loader, logger *logrus.Logger, metrics *Metrics, fitSettle time.Duration) *Service {
	return &Service{
		loader:  loader,
		logger:  logger,
		metrics: metrics,
		settle:  fitSettle,
	}
}

// Load fetches the family and its descendants, builds the generations and
// installs a fresh session. A retry after a failure is simply another Load
// call. When a newer Load starts before this one finishes, the late result
// is dropped and ErrSuperseded returned.
func (s *Service) Load(ctx context.Context, familyID string) (*Session, error) {
	seq := s.loadSeq.Inc()
	start := time.Now()

	snap, err := s.loader.Load(ctx, familyID)
	if err != nil {
		s.metrics.LoadsTotal.WithLabelValues(outcomeError).Inc()
		return nil, err
	}
	// Early bail before building anything for a family the user already
	// left. The authoritative check is in install.
	if s.loadSeq.Load() != seq {
		s.metrics.LoadsTotal.WithLabelValues(outcomeSuperseded).Inc()
		s.logger.WithField("family_id", familyID).Debug("discarding superseded load")
		return nil, ErrSuperseded
	}

	generations := tree.BuildGenerations(snap.Root, snap.Children)
	session := newSession(familyID, snap, generations, s.settle)

	if err := s.install(seq, session); err != nil {
		s.metrics.LoadsTotal.WithLabelValues(outcomeSuperseded).Inc()
		s.logger.WithField("family_id", familyID).Debug("discarding superseded load")
		return nil, err
	}

	s.metrics.LoadsTotal.WithLabelValues(outcomeOK).Inc()
	s.metrics.BuildDuration.Observe(time.Since(start).Seconds())
	s.metrics.Generations.Set(float64(len(generations)))

	s.logger.WithFields(logrus.Fields{
		"family_id":   familyID,
		"generations": len(generations),
		"descendants": len(snap.Children),
	}).Info("family tree loaded")

	return session, nil
}

// install makes session current unless a newer load has started since seq
// was taken. The sequence re-check and the assignment happen under one
// lock, so a load that passed an earlier check can still never overwrite a
// newer session.
func (s *Service) install(seq int64, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadSeq.Load() != seq {
		return ErrSuperseded
	}
	s.session = session
	return nil
}

// Session returns the session for familyID, or ErrNoSession when a
// different family (or nothing) is loaded.
func (s *Service) Session(familyID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil || s.session.FamilyID() != familyID {
		return nil, ErrNoSession
	}
	return s.session, nil
}

// Ensure returns the session for familyID, loading it first when it is not
// the current one.
func (s *Service) Ensure(ctx context.Context, familyID string) (*Session, error) {
	if session, err := s.Session(familyID); err == nil {
		return session, nil
	}
	return s.Load(ctx, familyID)
}
