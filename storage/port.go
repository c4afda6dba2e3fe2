package storage

// Logical keys for the durable slots, one per collection or singleton.
// An absent key means the store should fall back to its seed data.
const (
	KeyUsers       = "users"
	KeyFabrics     = "fabrics"
	KeyDesigns     = "designs"
	KeyOrders      = "orders"
	KeyMessages    = "messages"
	KeyFeedback    = "feedback"
	KeyAppSettings = "app-settings"
	KeyTheme       = "theme"
)

// Port is the persistence boundary of the entity store: read-on-init,
// write-on-change, keyed slots holding JSON-serialized collections. The
// store's logic is independent of the actual durable medium behind it.
type Port interface {
	// Get returns the value stored under key. ok is false when the key
	// has never been written.
	Get(key string) (value []byte, ok bool, err error)

	// Set durably stores value under key, replacing any previous value.
	Set(key string, value []byte) error
}
