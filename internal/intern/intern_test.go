package intern

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type marker struct{ name string }

func TestLoadOrCreate_IdentityStable(t *testing.T) {
	s := NewStore[string, *marker]()

	first, created := s.LoadOrCreate("MISSING", func() *marker { return &marker{name: "MISSING"} })
	require.True(t, created)

	second, created := s.LoadOrCreate("MISSING", func() *marker { return &marker{name: "MISSING"} })
	assert.False(t, created)
	assert.Same(t, first, second)

	other, created := s.LoadOrCreate("OTHER", func() *marker { return &marker{name: "OTHER"} })
	assert.True(t, created)
	assert.NotSame(t, first, other)
}

func TestLoad(t *testing.T) {
	s := NewStore[string, *marker]()

	_, ok := s.Load("absent")
	assert.False(t, ok)

	want, _ := s.LoadOrCreate("present", func() *marker { return &marker{name: "present"} })
	got, ok := s.Load("present")
	require.True(t, ok)
	assert.Same(t, want, got)
}

func TestLenAndKeys(t *testing.T) {
	s := NewStore[string, int]()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Keys())

	s.LoadOrCreate("a", func() int { return 1 })
	s.LoadOrCreate("b", func() int { return 2 })
	s.LoadOrCreate("a", func() int { return 3 }) // no-op, already interned

	assert.Equal(t, 2, s.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, s.Keys())
}

// TestLoadOrCreate_RacingFirstAccess hammers a single key from many
// goroutines and verifies exactly one instance is ever created or observed.
func TestLoadOrCreate_RacingFirstAccess(t *testing.T) {
	const workers = 64

	s := NewStore[string, *marker]()
	var creations atomic.Int64

	results := make([]*marker, workers)
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			v, created := s.LoadOrCreate("contended", func() *marker {
				creations.Add(1)
				return &marker{name: "contended"}
			})
			if created {
				// Only the goroutine that actually published may see true.
				if n := creations.Load(); n != 1 {
					t.Errorf("created=true with %d creations", n)
				}
			}
			results[i] = v
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(1), creations.Load())
	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
	}
	assert.Equal(t, 1, s.Len())
}
