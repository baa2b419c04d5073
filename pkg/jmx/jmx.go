// Package jmx holds the model entities a polling framework hands to an
// output writer: the server that was polled, the query that ran, and the
// results it produced.
package jmx

// Server identifies a polled JMX endpoint.
type Server struct {
	// Alias, when set, replaces the host/port pair as the server's
	// identity in metric keys.
	Alias string
	Host  string
	Port  string
}

// Query describes one MBean query executed against a server.
type Query struct {
	// Obj is the JMX ObjectName pattern the query targets.
	Obj string
	// Attr lists the attribute names the query requested.
	Attr []string
	// ResultAlias, when set, replaces the MBean class name as the
	// identity of this query's results in metric keys.
	ResultAlias string
}

// Result is one MBean read produced by a query.
type Result struct {
	// ClassName is the fully qualified class name of the MBean.
	ClassName string
	// TypeName is the ObjectName property list, e.g.
	// "type=MemoryPool,name=PS Eden Space".
	TypeName string
	// KeyAlias carries the query's ResultAlias onto the result.
	KeyAlias string
	// Epoch is the collection time in milliseconds since the Unix epoch.
	Epoch int64
	// Values maps attribute paths to the values read from the MBean.
	// Nested composite attributes appear as dotted paths, e.g.
	// "HeapMemoryUsage.used".
	Values map[string]any
}
