package tree

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/models"
	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/provider"
)

// defaultFetchLimit bounds how many descendant families are fetched at once.
const defaultFetchLimit = 4

// Snapshot holds everything the generation builder needs: the root family
// detail plus the cross-family children map discovered by walking every
// descendant family link.
type Snapshot struct {
	Root     *models.FamilyDetail
	Children map[string][]models.Person
	// Errs aggregates descendant fetch failures. Those branches are simply
	// absent from Children; the load as a whole still succeeds.
	Errs error
}

// Loader fetches a root family and recursively discovers its descendant
// families. A processed set seeded with the root id deduplicates shared
// references and guarantees termination on cycles.
type Loader struct {
	provider provider.FamilyProvider
	logger   *logrus.Logger
	limit    int
}

// NewLoader creates a Loader over the given provider.
func NewLoader(p provider.FamilyProvider, logger *logrus.Logger) *Loader {
	return &Loader{provider: p, logger: logger, limit: defaultFetchLimit}
}

// Load fetches the root family and walks every child's own-family links,
// fetching each unvisited family and recording its children keyed by family
// id. Failure to load the root is fatal; failures on individual descendant
// branches are logged, aggregated into Snapshot.Errs and skipped.
func (l *Loader) Load(ctx context.Context, rootID string) (*Snapshot, error) {
	root, err := l.provider.GetFamilyDetail(ctx, rootID)
	if err != nil {
		return nil, err
	}

	w := &walker{
		provider:  l.provider,
		logger:    l.logger,
		processed: map[string]bool{rootID: true},
		children:  make(map[string][]models.Person),
	}
	w.group, _ = errgroup.WithContext(ctx)
	w.group.SetLimit(l.limit)

	for _, child := range root.ChildPersons() {
		w.walkPerson(ctx, child)
	}
	// Walker goroutines never return an error; failures are aggregated.
	_ = w.group.Wait()

	return &Snapshot{
		Root:     root,
		Children: w.children,
		Errs:     w.errs.ErrorOrNil(),
	}, nil
}

// walker performs the recursive descendant discovery. Sibling branches run
// concurrently; the processed set is checked-and-inserted under the mutex so
// a family shared between branches is fetched exactly once.
type walker struct {
	provider provider.FamilyProvider
	logger   *logrus.Logger
	group    *errgroup.Group

	mu        sync.Mutex
	processed map[string]bool
	children  map[string][]models.Person
	errs      *multierror.Error
}

func (w *walker) walkPerson(ctx context.Context, p models.Person) {
	if !p.HasOwnFamily {
		return
	}
	for _, ref := range p.OwnFamilies {
		id := ref.FamilyID
		w.mu.Lock()
		if w.processed[id] {
			w.mu.Unlock()
			continue
		}
		w.processed[id] = true
		w.mu.Unlock()

		run := func() error {
			w.fetchFamily(ctx, id)
			return nil
		}
		// TryGo avoids deadlocking when every slot is busy with a branch
		// that itself wants to spawn; the fetch then runs inline.
		if !w.group.TryGo(run) {
			_ = run()
		}
	}
}

func (w *walker) fetchFamily(ctx context.Context, id string) {
	detail, err := w.provider.GetFamilyDetail(ctx, id)
	if err != nil {
		w.logger.WithError(err).WithField("family_id", id).Warn("skipping descendant family")
		w.mu.Lock()
		w.errs = multierror.Append(w.errs, fmt.Errorf("descendant family %s: %w", id, err))
		w.mu.Unlock()
		return
	}

	kids := detail.ChildPersons()
	w.mu.Lock()
	w.children[id] = kids
	w.mu.Unlock()

	for _, kid := range kids {
		w.walkPerson(ctx, kid)
	}
}
