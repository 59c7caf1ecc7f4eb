/*
Package sbool provides flavored boolean singletons.

A flavored boolean is a boolean-like value that carries a string flavor tag
and is interned per (variant, flavor) pair: Truth("feature-x") is the same
pointer everywhere in the process, and is never the same object as
Truth("feature-y") or Lie("feature-x"). Every Truth converts to integer 1,
every Lie to 0, so distinct "kinds" of true and false stay distinguishable
by identity while remaining interchangeable as booleans.

Negation is deliberately not flavor-preserving: Negate always returns the
canonical DefaultFlavor instance of the opposite variant, and double
negation converges to the defaults rather than round-tripping the input.
*/
package sbool
