package numbers_test

import (
	"testing"

	"github.com/arrawatia/jmxtrans-kafka-output/pkg/numbers"
	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	testCases := []struct {
		name  string
		value any
		want  bool
	}{
		{"int", 42, true},
		{"int8", int8(1), true},
		{"int16", int16(1), true},
		{"int32", int32(1), true},
		{"int64", int64(123456), true},
		{"uint", uint(7), true},
		{"uint8", uint8(7), true},
		{"uint16", uint16(7), true},
		{"uint32", uint32(7), true},
		{"uint64", uint64(7), true},
		{"float32", float32(2.5), true},
		{"float64", 2.5, true},
		{"numeric string", "123", false},
		{"string", "up", false},
		{"bool", true, false},
		{"nil", nil, false},
		{"map", map[string]any{"used": 1}, false},
		{"slice", []int{1, 2}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, numbers.IsNumeric(tc.value))
		})
	}
}

func TestFromBool(t *testing.T) {
	assert.Equal(t, int64(1), numbers.FromBool(true))
	assert.Equal(t, int64(0), numbers.FromBool(false))
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 123456, "123456"},
		{"int64", int64(-42), "-42"},
		{"uint64", uint64(18446744073709551615), "18446744073709551615"},
		{"float64 fraction", 2.5, "2.5"},
		{"float64 whole", float64(123456), "123456"},
		{"float64 large stays decimal", 1e7, "10000000"},
		{"float32", float32(0.25), "0.25"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, numbers.Format(tc.value))
		})
	}
}
