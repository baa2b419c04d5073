// Package outputs contains the writers that take polled JMX results out of
// the process. The package's Kafka writer turns each numeric attribute
// reading into a JSON message and fans it out to a configured set of topics.
package outputs

import (
	"context"

	"github.com/arrawatia/jmxtrans-kafka-output/pkg/jmx"
)

// OutputWriter is the capability a polling framework drives after each
// collection round.
type OutputWriter interface {
	// ValidateSetup checks the writer against a server and query pair
	// before the first write.
	ValidateSetup(server jmx.Server, query jmx.Query) error
	// Write hands over the results of one collection round for the given
	// server and query.
	Write(ctx context.Context, server jmx.Server, query jmx.Query, results []jmx.Result) error
}
