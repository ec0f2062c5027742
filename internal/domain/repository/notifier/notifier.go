package notifier

import "context"

// Publisher announces that the data behind a topic changed. Topics are plain
// strings like "images/<owner>" or "albums/<owner>".
type Publisher interface {
	Publish(ctx context.Context, topic string) error
}

// Subscriber delivers change signals for a topic. The channel closes when ctx
// is done; receivers re-query and build a fresh snapshot per signal.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan struct{}, error)
}
