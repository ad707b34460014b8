package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"yatube-backend/internal/domains/follow/model"
	usermodel "yatube-backend/internal/domains/user/model"
)

type edge struct {
	userID   uuid.UUID
	authorID uuid.UUID
}

type fakeFollowRepo struct {
	edges map[edge]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[edge]bool)}
}

func (r *fakeFollowRepo) Create(_ context.Context, userID, authorID uuid.UUID) (bool, error) {
	e := edge{userID, authorID}
	if r.edges[e] {
		return false, nil
	}
	r.edges[e] = true
	return true, nil
}

func (r *fakeFollowRepo) Delete(_ context.Context, userID, authorID uuid.UUID) (bool, error) {
	e := edge{userID, authorID}
	if !r.edges[e] {
		return false, nil
	}
	delete(r.edges, e)
	return true, nil
}

func (r *fakeFollowRepo) Exists(_ context.Context, userID, authorID uuid.UUID) (bool, error) {
	return r.edges[edge{userID, authorID}], nil
}

func (r *fakeFollowRepo) CountFollowers(_ context.Context, authorID uuid.UUID) (int, error) {
	n := 0
	for e := range r.edges {
		if e.authorID == authorID {
			n++
		}
	}
	return n, nil
}

func (r *fakeFollowRepo) CountFollowing(_ context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for e := range r.edges {
		if e.userID == userID {
			n++
		}
	}
	return n, nil
}

type fakeUserResolver struct {
	byName map[string]uuid.UUID
	err    error // returned from every lookup when set
}

func (r *fakeUserResolver) ResolveUsername(_ context.Context, username string) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	id, ok := r.byName[username]
	if !ok {
		return uuid.Nil, usermodel.ErrUserNotFound
	}
	return id, nil
}

// fakeCache is an in-memory stand-in that round-trips values through
// JSON the way the Redis implementation does.
type fakeCache struct {
	data    map[string][]byte
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
		c.deletes = append(c.deletes, k)
	}
	return nil
}

func (c *fakeCache) Ping(_ context.Context) error { return nil }

func newTestFollowService(t *testing.T) (ServiceInterface, *fakeFollowRepo, *fakeUserResolver, *fakeCache) {
	t.Helper()
	repo := newFakeFollowRepo()
	users := &fakeUserResolver{byName: make(map[string]uuid.UUID)}
	c := newFakeCache()
	return NewFollowService(repo, users, c), repo, users, c
}

func TestFollow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	subscriber := uuid.New()
	author := uuid.New()

	t.Run("creates the edge", func(t *testing.T) {
		t.Parallel()

		svc, repo, users, _ := newTestFollowService(t)
		users.byName["leo"] = author

		require.NoError(t, svc.Follow(ctx, subscriber, "leo"))

		following, err := repo.Exists(ctx, subscriber, author)
		require.NoError(t, err)
		require.True(t, following)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		svc, repo, users, _ := newTestFollowService(t)
		users.byName["leo"] = author

		require.NoError(t, svc.Follow(ctx, subscriber, "leo"))
		require.NoError(t, svc.Follow(ctx, subscriber, "leo"))

		followers, err := repo.CountFollowers(ctx, author)
		require.NoError(t, err)
		require.Equal(t, 1, followers)
	})

	t.Run("rejects following yourself", func(t *testing.T) {
		t.Parallel()

		svc, repo, users, _ := newTestFollowService(t)
		users.byName["me"] = subscriber

		err := svc.Follow(ctx, subscriber, "me")
		require.ErrorIs(t, err, model.ErrSelfFollow)
		require.Empty(t, repo.edges)
	})

	t.Run("unknown author", func(t *testing.T) {
		t.Parallel()

		svc, _, _, _ := newTestFollowService(t)

		err := svc.Follow(ctx, subscriber, "ghost")
		require.ErrorIs(t, err, model.ErrAuthorNotFound)
	})

	t.Run("resolver outage is not a missing author", func(t *testing.T) {
		t.Parallel()

		svc, _, users, _ := newTestFollowService(t)
		users.byName["leo"] = author
		users.err = errors.New("connection refused")

		err := svc.Follow(ctx, subscriber, "leo")
		require.Error(t, err)
		require.NotErrorIs(t, err, model.ErrAuthorNotFound)
		require.ErrorIs(t, err, users.err)
	})
}

func TestUnfollow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	subscriber := uuid.New()
	author := uuid.New()

	t.Run("removes the edge", func(t *testing.T) {
		t.Parallel()

		svc, repo, users, _ := newTestFollowService(t)
		users.byName["leo"] = author
		repo.edges[edge{subscriber, author}] = true

		require.NoError(t, svc.Unfollow(ctx, subscriber, "leo"))
		require.Empty(t, repo.edges)
	})

	t.Run("missing edge is a no-op", func(t *testing.T) {
		t.Parallel()

		svc, _, users, c := newTestFollowService(t)
		users.byName["leo"] = author

		require.NoError(t, svc.Unfollow(ctx, subscriber, "leo"))
		require.Empty(t, c.deletes, "nothing changed, nothing to invalidate")
	})
}

func TestCounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	author := uuid.New()

	t.Run("counts both directions", func(t *testing.T) {
		t.Parallel()

		svc, repo, _, _ := newTestFollowService(t)
		fanA, fanB := uuid.New(), uuid.New()
		repo.edges[edge{fanA, author}] = true
		repo.edges[edge{fanB, author}] = true
		repo.edges[edge{author, fanA}] = true

		followers, following, err := svc.Counts(ctx, author)
		require.NoError(t, err)
		require.Equal(t, 2, followers)
		require.Equal(t, 1, following)
	})

	t.Run("serves repeated lookups from cache", func(t *testing.T) {
		t.Parallel()

		svc, repo, _, _ := newTestFollowService(t)
		fan := uuid.New()
		repo.edges[edge{fan, author}] = true

		followers, _, err := svc.Counts(ctx, author)
		require.NoError(t, err)
		require.Equal(t, 1, followers)

		// Mutate the repo behind the cache's back; the cached value
		// must still be served
		repo.edges[edge{uuid.New(), author}] = true

		followers, _, err = svc.Counts(ctx, author)
		require.NoError(t, err)
		require.Equal(t, 1, followers)
	})

	t.Run("follow invalidates cached counts", func(t *testing.T) {
		t.Parallel()

		svc, _, users, _ := newTestFollowService(t)
		users.byName["leo"] = author
		fan := uuid.New()

		followers, _, err := svc.Counts(ctx, author)
		require.NoError(t, err)
		require.Equal(t, 0, followers)

		require.NoError(t, svc.Follow(ctx, fan, "leo"))

		followers, _, err = svc.Counts(ctx, author)
		require.NoError(t, err)
		require.Equal(t, 1, followers)
	})
}
