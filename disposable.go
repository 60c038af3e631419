package vtsched

// Disposable cancels or releases a scheduled resource.
// Dispose must be safe to call more than once.
type Disposable interface {
	Dispose()
}

// Empty is the already-disposed placeholder handle.
// Disposing it does nothing.
var Empty Disposable = emptyDisposable{}

type emptyDisposable struct{}

func (emptyDisposable) Dispose() {}

// DisposeFunc adapts a function to the Disposable interface.
type DisposeFunc func()

// Dispose calls f.
func (f DisposeFunc) Dispose() { f() }
