/*
Package observability exposes registry internals to monitoring systems.

It provides a prometheus.Collector that reports live interned-entry counts
per registry family, read at scrape time. First-interning events themselves
are observed through the hook options on the registries (or sigil.Hooks at
the facade level), which hosts can wire to structured logging or counters.
*/
package observability
