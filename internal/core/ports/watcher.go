package ports

// Subscription is a live watch on one path. It carries no payload beyond
// "changed"; consumers reread the path themselves.
type Subscription interface {
	// Events returns the change notification channel. The channel is
	// closed when the subscription is released.
	Events() <-chan struct{}
	// Release stops the watch and frees its resources. Safe to call more
	// than once.
	Release() error
}

// Watcher observes single paths for modification.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch arms a subscription for path. Each driver owns exactly one
	// subscription, on its own cache path, for its whole lifetime.
	Watch(path string) (Subscription, error)
}
