// Package dashclient is the data access core shared by every dashboard
// screen: a request executor, a key-addressed query cache and a mutation
// runner tied together by an invalidation convention.
//
// Reads go through the cache. A screen subscribes to the resource keys it
// renders; the cache fetches each key at most once per staleness
// transition, deduplicates concurrent subscriptions and keeps serving the
// last known value while a background refetch is in flight, so a screen
// never flashes empty during a refresh.
//
// Writes go through a Mutation. The success callback of every mutation has
// exactly two conventional responsibilities: invalidate the cache keys of
// every collection the write could have changed, and reset local form
// state. Invalidation marks entries stale; entries with active subscribers
// refetch immediately, the rest on their next subscription.
//
// The cache is an injectable value, not a package global. Construct one per
// process (or per test) and pass it down.
package dashclient
