package value_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"dnf_rate/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		valid bool
	}{
		{name: "number", input: `50.5`, want: 50.5, valid: true},
		{name: "numeric string", input: `"  100 "`, want: 100, valid: true},
		{name: "empty string", input: `""`, want: 0, valid: true},
		{name: "null", input: `null`, want: 0, valid: true},
		{name: "true", input: `true`, want: 1, valid: true},
		{name: "garbage string", input: `"abc"`, valid: false},
		{name: "nan string", input: `"NaN"`, valid: false},
		{name: "object", input: `{"a":1}`, valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(*testing.T) {
			rq := require.New(t)

			var n value.Number
			rq.NoError(json.Unmarshal([]byte(tc.input), &n))

			got, ok := n.Float64()
			rq.Equal(tc.valid, ok)

			if tc.valid {
				rq.InDelta(tc.want, got, 1e-9)
			}
		})
	}
}

func TestNumberZeroValueInvalid(t *testing.T) {
	rq := require.New(t)

	var n value.Number
	_, ok := n.Float64()
	rq.False(ok)

	out, err := json.Marshal(n)
	rq.NoError(err)
	rq.JSONEq(`null`, string(out))
}

func TestOpaque(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		text   string
		truthy bool
	}{
		{name: "string", input: `"abc"`, text: "abc", truthy: true},
		{name: "empty string", input: `""`, text: "", truthy: false},
		{name: "integer", input: `17`, text: "17", truthy: true},
		{name: "float keeps js form", input: `17.0`, text: "17", truthy: true},
		{name: "zero", input: `0`, text: "0", truthy: false},
		{name: "null", input: `null`, text: "", truthy: false},
		{name: "false", input: `false`, text: "false", truthy: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(*testing.T) {
			rq := require.New(t)

			var o value.Opaque
			rq.NoError(json.Unmarshal([]byte(tc.input), &o))
			rq.Equal(tc.text, o.String())
			rq.Equal(tc.truthy, o.Truthy())
		})
	}
}

func TestOpaqueRoundTripKeepsRaw(t *testing.T) {
	rq := require.New(t)

	var payload struct {
		Time value.Opaque `json:"time"`
	}
	rq.NoError(json.Unmarshal([]byte(`{"time":1700000000}`), &payload))

	out, err := json.Marshal(payload)
	rq.NoError(err)
	rq.JSONEq(`{"time":1700000000}`, string(out))

	rq.Equal("42", value.OpaqueNumber(42).String())
	rq.Equal("x", value.OpaqueString("x").String())
}
