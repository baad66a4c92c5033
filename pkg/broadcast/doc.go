// Package broadcast provides type-safe, non-blocking one-to-many message
// delivery for in-process subscribers.
//
// The package uses Go generics so messages are strongly typed end to end.
//
// Basic usage:
//
//	broadcaster := broadcast.NewMemoryBroadcaster[string](10)
//	defer broadcaster.Close()
//
//	ctx := context.Background()
//	subscriber := broadcaster.Subscribe(ctx)
//	defer subscriber.Close()
//
//	broadcaster.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//
//	for msg := range subscriber.Receive(ctx) {
//		fmt.Println(msg.Data)
//	}
//
// Broadcast never blocks the sender. A subscriber whose buffer is full misses
// the message but stays subscribed, which makes a small buffer a natural way
// to coalesce bursts of "something changed" notifications.
//
// Subscribers are removed when:
//   - their context is cancelled
//   - they are closed explicitly
//   - the broadcaster is closed
package broadcast
