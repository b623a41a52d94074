package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSqlite(t *testing.T) Store {
	t.Helper()
	s, err := OpenSqlite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newRedis(t *testing.T) Store {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	s := NewRedisFromClient(backend.NewClient(&backend.Options{Addr: mr.Addr()}))
	require.NoError(t, s.Ping(context.Background()))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStores(t *testing.T) {
	for name, open := range map[string]func(*testing.T) Store{
		"sqlite": newSqlite,
		"redis":  newRedis,
	} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			_, err := s.Get(ctx, "visitor", Key)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set(ctx, "visitor", Key, "dark"))
			require.NoError(t, s.Set(ctx, "visitor", Key, "light"))
			require.NoError(t, s.Set(ctx, "other", Key, "dark"))

			v, err := s.Get(ctx, "visitor", Key)
			require.NoError(t, err)
			assert.Equal(t, "light", v)

			v, err = s.Get(ctx, "other", Key)
			require.NoError(t, err)
			assert.Equal(t, "dark", v)
		})
	}
}

func TestToggleDefaultsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := newSqlite(t)

	tg, err := Load(ctx, store, "me")
	require.NoError(t, err)
	assert.Equal(t, Light, tg.Current())

	var seen []Theme
	tg.onToggle = func(th Theme) { seen = append(seen, th) }
	assert.Equal(t, Dark, tg.Flip(ctx))
	assert.Equal(t, []Theme{Dark}, seen)

	again, err := Load(ctx, store, "me")
	require.NoError(t, err)
	assert.Equal(t, Dark, again.Current())

	assert.Equal(t, Light, again.Flip(ctx))
	again, err = Load(ctx, store, "me")
	require.NoError(t, err)
	assert.Equal(t, Light, again.Current())
}

func TestParseAndIcon(t *testing.T) {
	assert.Equal(t, Dark, Parse("dark"))
	assert.Equal(t, Light, Parse("light"))
	assert.Equal(t, Light, Parse("sepia"))
	assert.Equal(t, "fas fa-moon", Light.Icon())
	assert.Equal(t, "fas fa-sun", Dark.Icon())
}

type brokenStore struct{ err error }

func (b brokenStore) Get(context.Context, string, string) (string, error) { return "", b.err }
func (b brokenStore) Set(context.Context, string, string, string) error { return b.err }
func (b brokenStore) Close() error { return nil }

func TestToggleStoreFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")

	tg, err := Load(ctx, brokenStore{err: boom}, "me")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Light, tg.Current())

	// writes fail quietly; the flip still applies
	assert.Equal(t, Dark, tg.Flip(ctx))
	assert.Equal(t, Dark, tg.Current())
}
