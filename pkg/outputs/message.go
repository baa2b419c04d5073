package outputs

// Message is the JSON document published for one numeric attribute reading.
// Struct order is wire order.
type Message struct {
	// Keyspace is the dotted metric key, sanitized so it carries no
	// parentheses.
	Keyspace string `json:"keyspace"`
	// Value is the attribute value rendered as a string.
	Value string `json:"value"`
	// Timestamp is the collection time in seconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`
	// Tags are the writer's static tags. Always an object, never null.
	Tags map[string]string `json:"tags"`
}
