/*
Package sentinel provides named, identity-stable marker values.

A sentinel signals a distinguished state (e.g., "absent") without conflating
with nil, the zero value, or other null-like values the host code may already
use. Repeated Obtain calls with the same name return the exact same pointer,
so comparisons are plain pointer equality:

	var missing = sentinel.Obtain("MISSING")

	func lookup(key string) any {
		v, ok := cache[key]
		if !ok {
			return missing
		}
		return v
	}

	if lookup("k") == missing {
		// genuinely absent, even if the cache stores nil values
	}
*/
package sentinel
