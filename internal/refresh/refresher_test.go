package refresh

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/IamTheLime/airbyte/internal/resources"
)

type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context, workspaceID string) (*resources.Snapshot, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resources.Snapshot), args.Error(1)
}

type MockPurger struct {
	mock.Mock
}

func (m *MockPurger) PurgeWorkspace(workspaceID string) int {
	return m.Called(workspaceID).Int(0)
}

func TestRefresher_Start(t *testing.T) {
	t.Run("Schedules one job", func(t *testing.T) {
		r := NewRefresher(new(MockLoader), new(MockPurger), "@every 5m", []string{"ws1", "ws2"})
		require.NoError(t, r.Start())
		assert.Len(t, r.cronRunner.Entries(), 1)
		<-r.Stop().Done()
	})

	t.Run("No workspaces", func(t *testing.T) {
		r := NewRefresher(new(MockLoader), new(MockPurger), "@every 5m", nil)
		require.NoError(t, r.Start())
		assert.Empty(t, r.cronRunner.Entries())
	})

	t.Run("Invalid schedule", func(t *testing.T) {
		r := NewRefresher(new(MockLoader), new(MockPurger), "whenever", []string{"ws1"})
		assert.Error(t, r.Start())
	})
}

func TestRefresher_RefreshAll(t *testing.T) {
	loader := new(MockLoader)
	purger := new(MockPurger)

	loader.On("Load", mock.Anything, "ws1").Return(&resources.Snapshot{WorkspaceID: "ws1", Generation: 2, Changed: true}, nil).Once()
	loader.On("Load", mock.Anything, "ws2").Return(&resources.Snapshot{WorkspaceID: "ws2", Generation: 1, Changed: false}, nil).Once()
	loader.On("Load", mock.Anything, "ws3").Return(nil, errors.New("database unavailable")).Once()
	purger.On("PurgeWorkspace", "ws1").Return(3).Once()

	r := NewRefresher(loader, purger, "@every 5m", []string{"ws1", "ws2", "ws3"})
	r.RefreshAll()

	loader.AssertExpectations(t)
	purger.AssertExpectations(t)
	purger.AssertNotCalled(t, "PurgeWorkspace", "ws2")
}

func TestRefresher_RefreshWorkspaceError(t *testing.T) {
	loader := new(MockLoader)
	fetchErr := &resources.FetchError{Collection: resources.CollectionSources, WorkspaceID: "ws1", Err: errors.New("timeout")}
	loader.On("Load", mock.Anything, "ws1").Return(nil, fetchErr)

	r := NewRefresher(loader, new(MockPurger), "@every 5m", []string{"ws1"})
	err := r.RefreshWorkspace(context.Background(), "ws1")

	var got *resources.FetchError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, resources.CollectionSources, got.Collection)
}
