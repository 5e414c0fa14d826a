// Package resources fetches the per-workspace collections the console pages
// project from.
package resources

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/IamTheLime/airbyte/internal/models"
	"github.com/IamTheLime/airbyte/internal/projection"
)

// Collection names used in FetchError.
const (
	CollectionSources                = "sources"
	CollectionDestinations           = "destinations"
	CollectionConnections            = "connections"
	CollectionSourceDefinitions      = "source_definitions"
	CollectionDestinationDefinitions = "destination_definitions"
)

// Repository reads the collections of one workspace.
type Repository interface {
	ListSources(ctx context.Context, workspaceID string) ([]models.Source, error)
	ListDestinations(ctx context.Context, workspaceID string) ([]models.Destination, error)
	ListConnections(ctx context.Context, workspaceID string) ([]models.Connection, error)
	ListSourceDefinitions(ctx context.Context, workspaceID string) ([]models.SourceDefinition, error)
	ListDestinationDefinitions(ctx context.Context, workspaceID string) ([]models.DestinationDefinition, error)
}

// FetchError reports a collection that could not be retrieved.
type FetchError struct {
	Collection  string
	WorkspaceID string
	Err         error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s for workspace %s: %v", e.Collection, e.WorkspaceID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type generation struct {
	fingerprint string
	number      uint64
}

// Loader fetches all collections of a workspace concurrently and numbers the
// distinct snapshots it has seen per workspace.
type Loader struct {
	repo        Repository
	mu          sync.Mutex
	generations map[string]generation
}

// NewLoader creates a Loader backed by repo.
func NewLoader(repo Repository) *Loader {
	return &Loader{
		repo:        repo,
		generations: make(map[string]generation),
	}
}

// Start runs Load in the background.
func (l *Loader) Start(ctx context.Context, workspaceID string) *Task[*Snapshot] {
	return Go(ctx, func(ctx context.Context) (*Snapshot, error) {
		return l.Load(ctx, workspaceID)
	})
}

// Load fetches every collection. The first failure cancels the remaining
// fetches and is returned as a *FetchError; no partial snapshot is returned.
func (l *Loader) Load(ctx context.Context, workspaceID string) (*Snapshot, error) {
	snap := &Snapshot{WorkspaceID: workspaceID}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := l.repo.ListSources(gctx, workspaceID)
		snap.Sources = v
		return wrapFetch(CollectionSources, workspaceID, err)
	})
	g.Go(func() error {
		v, err := l.repo.ListDestinations(gctx, workspaceID)
		snap.Destinations = v
		return wrapFetch(CollectionDestinations, workspaceID, err)
	})
	g.Go(func() error {
		v, err := l.repo.ListConnections(gctx, workspaceID)
		snap.Connections = v
		return wrapFetch(CollectionConnections, workspaceID, err)
	})
	g.Go(func() error {
		v, err := l.repo.ListSourceDefinitions(gctx, workspaceID)
		snap.SourceDefinitions = v
		return wrapFetch(CollectionSourceDefinitions, workspaceID, err)
	})
	g.Go(func() error {
		v, err := l.repo.ListDestinationDefinitions(gctx, workspaceID)
		snap.DestinationDefinitions = v
		return wrapFetch(CollectionDestinationDefinitions, workspaceID, err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	warnDuplicateDefinitions(workspaceID, CollectionSourceDefinitions, snap.SourceDefinitionRefs())
	warnDuplicateDefinitions(workspaceID, CollectionDestinationDefinitions, snap.DestinationDefinitionRefs())

	fp, err := fingerprint(snap)
	if err != nil {
		return nil, err
	}
	snap.Generation, snap.Changed = l.advance(workspaceID, fp)
	return snap, nil
}

// advance records fp and returns the workspace generation, bumped when fp differs.
func (l *Loader) advance(workspaceID, fp string) (uint64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	gen, ok := l.generations[workspaceID]
	if ok && gen.fingerprint == fp {
		return gen.number, false
	}
	gen = generation{fingerprint: fp, number: gen.number + 1}
	l.generations[workspaceID] = gen
	return gen.number, true
}

func wrapFetch(collection, workspaceID string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{Collection: collection, WorkspaceID: workspaceID, Err: err}
}

func warnDuplicateDefinitions(workspaceID, collection string, defs []projection.Definition) {
	if err := projection.CheckUniqueDefinitions(defs); err != nil {
		logrus.WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"collection":   collection,
		}).WithError(err).Warn("definition ids are not unique, first match wins")
	}
}

func fingerprint(snap *Snapshot) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, part := range []interface{}{
		snap.Sources,
		snap.Destinations,
		snap.Connections,
		snap.SourceDefinitions,
		snap.DestinationDefinitions,
	} {
		if err := enc.Encode(part); err != nil {
			return "", fmt.Errorf("failed to fingerprint snapshot: %w", err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
