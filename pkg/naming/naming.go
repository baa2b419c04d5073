// Package naming builds the dotted keyspace strings that identify metric
// readings. A key is five segments joined with dots: the root prefix, the
// server identity, the MBean identifier, the typeName values and the
// attribute key. Segments without a value stay in place as empty strings so
// the key shape is stable for downstream parsers.
package naming

import (
	"regexp"
	"strings"

	"github.com/arrawatia/jmxtrans-kafka-output/pkg/jmx"
)

var (
	dotSlashPattern   = regexp.MustCompile(`[./]`)
	quoteSpacePattern = regexp.MustCompile(`[ "']+`)
)

// Clean rewrites a key segment so it cannot introduce extra dots or path
// separators: every '.' and '/' becomes '_', and runs of spaces and quote
// characters collapse to a single '_'.
func Clean(segment string) string {
	segment = dotSlashPattern.ReplaceAllString(segment, "_")
	return quoteSpacePattern.ReplaceAllString(segment, "_")
}

// BuildKeyString returns the keyspace for one attribute reading.
//
// The root prefix is used verbatim; every other segment is cleaned. The
// server identity is the server's alias, falling back to "host_port". The
// MBean identifier is the result's key alias, then the query's result alias,
// then the unqualified class name. The typeName values are extracted with
// TypeNameValues and joined with '_'.
func BuildKeyString(server jmx.Server, query jmx.Query, result jmx.Result, attrPath string, typeNames []string, rootPrefix string) string {
	segments := []string{
		rootPrefix,
		serverIdentity(server),
		mbeanIdentifier(query, result),
		Clean(strings.Join(TypeNameValues(typeNames, result.TypeName), "_")),
		Clean(attrPath),
	}
	return strings.Join(segments, ".")
}

func serverIdentity(server jmx.Server) string {
	if server.Alias != "" {
		return Clean(server.Alias)
	}
	if server.Host == "" && server.Port == "" {
		return ""
	}
	return Clean(server.Host + "_" + server.Port)
}

func mbeanIdentifier(query jmx.Query, result jmx.Result) string {
	if result.KeyAlias != "" {
		return Clean(result.KeyAlias)
	}
	if query.ResultAlias != "" {
		return Clean(query.ResultAlias)
	}
	if result.ClassName == "" {
		return ""
	}
	shortName := result.ClassName
	if i := strings.LastIndex(shortName, "."); i >= 0 {
		shortName = shortName[i+1:]
	}
	return Clean(shortName)
}

// TypeNameValues extracts the values of the requested typeNames keys from an
// ObjectName property list such as "type=MemoryPool,name=PS Eden Space".
// Values come back in request order; keys absent from the property list are
// skipped. Tokens without an '=' are ignored.
func TypeNameValues(typeNames []string, typeNameStr string) []string {
	if len(typeNames) == 0 || typeNameStr == "" {
		return nil
	}
	properties := parseTypeName(typeNameStr)
	values := make([]string, 0, len(typeNames))
	for _, name := range typeNames {
		if value, ok := properties[name]; ok {
			values = append(values, value)
		}
	}
	return values
}

func parseTypeName(typeNameStr string) map[string]string {
	properties := make(map[string]string, 4)
	for _, token := range strings.Split(typeNameStr, ",") {
		key, value, found := strings.Cut(token, "=")
		if !found {
			continue
		}
		properties[key] = value
	}
	return properties
}
