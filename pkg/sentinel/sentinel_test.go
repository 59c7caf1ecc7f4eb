package sentinel

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestObtain_IdentityStability(t *testing.T) {
	r := NewRegistry()

	missing := r.Obtain("MISSING")
	again := r.Obtain("MISSING")
	other := r.Obtain("OTHER")

	assert.Same(t, missing, again)
	assert.NotSame(t, missing, other)
	assert.Equal(t, "MISSING", missing.Name())
	assert.Equal(t, "OTHER", other.Name())
}

func TestObtain_DistinctRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	// Same name, different registries: no shared identity.
	assert.NotSame(t, a.Obtain("X"), b.Obtain("X"))
}

func TestString_IncludesName(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, `Sentinel("MISSING")`, r.Obtain("MISSING").String())
}

func TestLenAndNames(t *testing.T) {
	r := NewRegistry()
	r.Obtain("A")
	r.Obtain("B")
	r.Obtain("A")

	assert.Equal(t, 2, r.Len())
	assert.ElementsMatch(t, []string{"A", "B"}, r.Names())
}

func TestObtain_RacingFirstAccess(t *testing.T) {
	const workers = 32

	r := NewRegistry()
	results := make([]*Sentinel, workers)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			results[i] = r.Obtain("contended")
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
	}
	assert.Equal(t, 1, r.Len())
}

func TestWithLogger_LogsFirstCreationOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := NewRegistry(WithLogger(logger))
	r.Obtain("ONCE")
	first := buf.Len()
	require.Contains(t, buf.String(), "interned sentinel")

	r.Obtain("ONCE")
	assert.Equal(t, first, buf.Len(), "repeat lookup must not log")
}

func TestWithObtainHook(t *testing.T) {
	var seen []string
	r := NewRegistry(WithObtainHook(func(name string) {
		seen = append(seen, name)
	}))

	r.Obtain("A")
	r.Obtain("A")
	r.Obtain("B")

	assert.Equal(t, []string{"A", "B"}, seen)
}

func TestDefault_SharedAcrossCallSites(t *testing.T) {
	// Two "call sites" against the package-level registry.
	assert.Same(t, Obtain("pkg-level"), Default().Obtain("pkg-level"))
}
