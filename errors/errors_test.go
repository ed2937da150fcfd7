package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestPresets(t *testing.T) {
	assert.Equal(t, codes.Unknown, Unknown().Code)
	assert.Equal(t, Reason("unknown"), Unknown().Reason)
	assert.Equal(t, codes.InvalidArgument, InvalidArgument().Code)
	assert.Equal(t, Reason("invalid_argument"), InvalidArgument().Reason)

	v := Violation("contact", "no_match", "not a phone, email or url")
	assert.Equal(t, codes.InvalidArgument, v.Code)
	assert.Equal(t, Reason("validation_failed"), v.Reason)
	require.Len(t, v.Violations, 1)
	assert.Equal(t, FieldViolation{Field: "contact", Reason: "no_match", Description: "not a phone, email or url"}, v.Violations[0])
}

func TestBuilderIsCopyOnWrite(t *testing.T) {
	base := InvalidArgument().WithDetail("a", "1")
	derived := base.WithDetail("b", "2").WithDetails(map[string]string{"c": "3"})

	assert.Equal(t, map[string]string{"a": "1"}, base.Details)
	assert.Equal(t, map[string]string{"a": "1", "b": "2", "c": "3"}, derived.Details)

	vs := []FieldViolation{{Field: "x", Reason: "y"}}
	withV := base.WithViolations(vs)
	vs[0].Field = "mutated"
	assert.Equal(t, "x", withV.Violations[0].Field)

	assert.Equal(t, base, base.WithDetails(nil))
	assert.Equal(t, base, base.WithViolations(nil))
}

func TestErrorIsJSON(t *testing.T) {
	e := Violation("contact", "invalid_email", "").WithDomain("contacturl")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(e.Error()), &decoded))
	assert.Equal(t, "InvalidArgument", decoded["code"])
	assert.Equal(t, "validation_failed", decoded["reason"])
	assert.Equal(t, "contacturl", decoded["domain"])
}

func TestGRPCRoundTrip(t *testing.T) {
	in := Violation("contact", "too_few_digits", "").
		WithDomain("contacturl").
		WithDetail("kind", "tel")

	err := in.ToGRPC()
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())

	out := FromGRPC(err)
	assert.Equal(t, in.Code, out.Code)
	assert.Equal(t, in.Reason, out.Reason)
	assert.Equal(t, in.Domain, out.Domain)
	assert.Equal(t, map[string]string{"kind": "tel"}, out.Details)
	require.Len(t, out.Violations, 1)
	assert.Equal(t, "contact", out.Violations[0].Field)
	assert.Equal(t, "too_few_digits", out.Violations[0].Reason)
	// description falls back to the reason on the wire
	assert.Equal(t, "too_few_digits", out.Violations[0].Description)
}

func TestFromGRPC_NonStatus(t *testing.T) {
	out := FromGRPC(stderrors.New("plain"))
	assert.Equal(t, codes.Unknown, out.Code)
}
