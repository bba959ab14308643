package cart

import "context"

type contextKey struct{}

// NewContext returns a context carrying the session's cart store.
func NewContext(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, store)
}

// FromContext returns the cart store provisioned by the session
// middleware. Consuming the store outside that scope is a programmer
// error, so a missing store panics rather than operating on undefined
// state.
func FromContext(ctx context.Context) *Store {
	store, ok := ctx.Value(contextKey{}).(*Store)
	if !ok {
		panic("cart: store not provisioned in context")
	}
	return store
}
