package x11

// owned holds one native resource and the function that frees it. The zero
// value of T marks an empty slot: releasing or taking from an empty slot
// does nothing. Resources are released in the reverse order they were
// acquired by the caller.
type owned[T comparable] struct {
	v    T
	free func(T)
}

func own[T comparable](v T, free func(T)) owned[T] {
	return owned[T]{v: v, free: free}
}

// get returns the resource without giving up ownership.
func (o *owned[T]) get() T {
	return o.v
}

// valid reports whether the slot holds a resource.
func (o *owned[T]) valid() bool {
	var zero T
	return o.v != zero
}

// take transfers the resource to the caller and leaves the slot empty.
func (o *owned[T]) take() T {
	v := o.v
	var zero T
	o.v = zero
	return v
}

// release frees the resource, if any, and empties the slot.
func (o *owned[T]) release() {
	if !o.valid() {
		return
	}
	v := o.take()
	if o.free != nil {
		o.free(v)
	}
}

type releaser interface {
	release()
}

// teardown stops the event pump and then frees resources in the order
// given. The pump must be gone before the window it reads from, so when
// stopPump fails to join, the release is deferred until done is closed.
func teardown(stopPump func() error, done <-chan struct{}, resources ...releaser) {
	release := func() {
		for _, r := range resources {
			r.release()
		}
	}
	if stopPump != nil {
		if err := stopPump(); err != nil && done != nil {
			go func() {
				<-done
				release()
			}()
			return
		}
	}
	release()
}
