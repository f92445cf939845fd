/*
Package session owns the lifecycle of the one live connection to the
external application.

A Session lazily attaches on first use, resolves opaque addresses to
capability-tagged components, and is discarded wholesale on reset; it is
never partially reconstructed. The Session is not internally synchronized:
the dispatch engine owns exactly one Session and serializes all access to it
behind its batch lock.
*/
package session
