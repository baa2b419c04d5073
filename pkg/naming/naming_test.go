package naming_test

import (
	"testing"

	"github.com/arrawatia/jmxtrans-kafka-output/pkg/jmx"
	"github.com/arrawatia/jmxtrans-kafka-output/pkg/naming"
	"github.com/stretchr/testify/assert"
)

func TestBuildKeyString_AllSegments(t *testing.T) {
	// Arrange
	server := jmx.Server{Alias: "app1"}
	query := jmx.Query{Obj: "java.lang:type=MemoryPool,name=*"}
	result := jmx.Result{
		ClassName: "sun.management.MemoryPoolImpl",
		TypeName:  "type=MemoryPool,name=PS Eden Space",
		KeyAlias:  "memory",
	}

	// Act
	key := naming.BuildKeyString(server, query, result, "Usage.used", []string{"type", "name"}, "jmx")

	// Assert
	assert.Equal(t, "jmx.app1.memory.MemoryPool_PS_Eden_Space.Usage_used", key)
}

func TestBuildKeyString_EmptyIdentitiesKeepSegmentPositions(t *testing.T) {
	key := naming.BuildKeyString(jmx.Server{}, jmx.Query{}, jmx.Result{}, "HeapMemoryUsage.used", nil, "servers")

	assert.Equal(t, "servers....HeapMemoryUsage_used", key)
}

func TestBuildKeyString_ServerIdentity(t *testing.T) {
	testCases := []struct {
		name   string
		server jmx.Server
		want   string
	}{
		{"alias wins over host and port", jmx.Server{Alias: "app1", Host: "broker01", Port: "9999"}, "servers.app1...ThreadCount"},
		{"host and port fallback", jmx.Server{Host: "broker01.example.com", Port: "9999"}, "servers.broker01_example_com_9999...ThreadCount"},
		{"port only", jmx.Server{Port: "9999"}, "servers._9999...ThreadCount"},
		{"no identity", jmx.Server{}, "servers....ThreadCount"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key := naming.BuildKeyString(tc.server, jmx.Query{}, jmx.Result{}, "ThreadCount", nil, "servers")
			assert.Equal(t, tc.want, key)
		})
	}
}

func TestBuildKeyString_MBeanIdentifierPrecedence(t *testing.T) {
	testCases := []struct {
		name   string
		query  jmx.Query
		result jmx.Result
		want   string
	}{
		{
			"result key alias wins",
			jmx.Query{ResultAlias: "queryAlias"},
			jmx.Result{KeyAlias: "resultAlias", ClassName: "a.b.Impl"},
			"servers..resultAlias..Count",
		},
		{
			"query result alias next",
			jmx.Query{ResultAlias: "queryAlias"},
			jmx.Result{ClassName: "a.b.Impl"},
			"servers..queryAlias..Count",
		},
		{
			"unqualified class name last",
			jmx.Query{},
			jmx.Result{ClassName: "sun.management.MemoryImpl"},
			"servers..MemoryImpl..Count",
		},
		{
			"class name without package",
			jmx.Query{},
			jmx.Result{ClassName: "MemoryImpl"},
			"servers..MemoryImpl..Count",
		},
		{
			"no identity",
			jmx.Query{},
			jmx.Result{},
			"servers....Count",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key := naming.BuildKeyString(jmx.Server{}, tc.query, tc.result, "Count", nil, "servers")
			assert.Equal(t, tc.want, key)
		})
	}
}

func TestBuildKeyString_TypeNameValuesAreCleaned(t *testing.T) {
	result := jmx.Result{TypeName: "type=MemoryPool,name=PS Eden Space"}

	key := naming.BuildKeyString(jmx.Server{}, jmx.Query{}, result, "Usage.max", []string{"name"}, "servers")

	assert.Equal(t, "servers...PS_Eden_Space.Usage_max", key)
}

func TestClean(t *testing.T) {
	testCases := []struct {
		name    string
		segment string
		want    string
	}{
		{"dots and slashes", "a.b/c", "a_b_c"},
		{"space runs collapse", "PS  Eden Space", "PS_Eden_Space"},
		{"double quotes", `he said "hi"`, "he_said_hi_"},
		{"single quotes", "conn's", "conn_s"},
		{"mixed run collapses once", `a. "b`, "a__b"},
		{"parentheses untouched", "Usage(bytes)", "Usage(bytes)"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, naming.Clean(tc.segment))
		})
	}
}

func TestTypeNameValues(t *testing.T) {
	typeName := "type=MemoryPool,name=PS Eden Space"

	testCases := []struct {
		name      string
		typeNames []string
		typeName  string
		want      []string
	}{
		{"request order is preserved", []string{"name", "type"}, typeName, []string{"PS Eden Space", "MemoryPool"}},
		{"missing keys are skipped", []string{"type", "scope"}, typeName, []string{"MemoryPool"}},
		{"tokens without equals are ignored", []string{"type"}, "garbage,type=X", []string{"X"}},
		{"no requested keys", nil, typeName, nil},
		{"empty property list", []string{"type"}, "", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, naming.TypeNameValues(tc.typeNames, tc.typeName))
		})
	}
}
