/*
Package driver defines the boundary to the external automation surface.

The concrete surface (attaching to the running application, walking its live
object tree, performing actions on concrete objects) is out of scope for the
engine core and is supplied by the host. Objects returned by a driver
additionally implement the capability view interfaces (package capability)
for the kinds they report.
*/
package driver

import "context"

// Object is a live handle to one node in the remote application's object
// tree. The kind is fixed for the lifetime of the handle.
type Object interface {
	// Kind returns the raw kind name reported by the automation surface.
	Kind() string
	// ID returns the fully qualified address of this object.
	ID() (string, error)
	// Children enumerates the direct children of this object.
	Children() ([]Object, error)
	// Find resolves an opaque address to a descendant object.
	Find(address string) (Object, error)
}

// Root is the application root obtained from a successful attach.
type Root interface {
	// Children enumerates the top-level objects (connections).
	Children() ([]Object, error)
	// Close releases the attachment. Implementations may no-op.
	Close() error
}

// Driver attaches to the external application. Opening may create
// external-process-visible state (a live session reference).
type Driver interface {
	Open(ctx context.Context) (Root, error)
}
