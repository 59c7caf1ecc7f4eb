/*
Package sigil provides identity-stable singleton values: named sentinel
markers and flavored boolean singletons.

Both constructs share one mechanism, an interning registry: the first
request for a name (or flavor) constructs the instance, and every later
request returns the exact same pointer for the life of the process. Call
sites therefore compare values with plain pointer equality instead of
value equality, which keeps a "missing" marker distinct from nil, zero
values, and every other marker.

# Sentinels

A sentinel is a named marker for a distinguished state:

	var missing = sigil.Obtain("MISSING")

	func lookup(key string) any {
		v, ok := cache[key]
		if !ok {
			return missing
		}
		return v
	}

	if lookup("k") == missing {
		// absent, even if the cache legitimately stores nil
	}

# Flavored booleans

Truth and Lie are boolean-like singletons interned per flavor tag. Every
Truth has integer value 1 and every Lie 0, while distinct flavors remain
distinguishable by identity:

	okA := sigil.Truth("subsystem-a")
	okB := sigil.Truth("subsystem-b")
	// okA != okB, but okA.Int() == okB.Int() == 1

Negation always returns the canonical default-flavor opposite; it does not
preserve flavor, so double negation converges to the defaults.

# Registries

The package-level functions use a process-wide registry. Hosts that prefer
explicit wiring construct their own with New and share it by reference:

	reg := sigil.New(sigil.WithLogger(logger))
	m := reg.Obtain("MISSING")

Registries are safe for concurrent use; racing first accesses for the same
name still observe a single instance. Entries are never evicted: names are
expected to be a small static set defined at code-authoring time, not user
input at scale.
*/
package sigil
