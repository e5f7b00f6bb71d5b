package remote

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrectMark_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string

		want      CorrectMark
		wantError bool
	}{
		{
			name:  "Boolean true",
			input: `true`,
			want:  CorrectMark{Value: true},
		},
		{
			name:  "Boolean false",
			input: `false`,
			want:  CorrectMark{Value: false},
		},
		{
			name:  "String true",
			input: `"true"`,
			want:  CorrectMark{Value: true, Raw: "true"},
		},
		{
			name:  "String true, uppercase",
			input: `"TRUE"`,
			want:  CorrectMark{Value: true, Raw: "TRUE"},
		},
		{
			name:  "String false",
			input: `"false"`,
			want:  CorrectMark{Value: false, Raw: "false"},
		},
		{
			name:  "Unrecognized string reads as false",
			input: `"maybe"`,
			want:  CorrectMark{Value: false, Raw: "maybe"},
		},
		{
			name:      "Number is rejected",
			input:     `1`,
			wantError: true,
		},
		{
			name:      "Object is rejected",
			input:     `{"value": true}`,
			wantError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got CorrectMark
			err := json.Unmarshal([]byte(tc.input), &got)
			if tc.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCorrectMark_MarshalJSON(t *testing.T) {
	// The string form is legacy input only; output is always a boolean.
	got, err := json.Marshal(CorrectMark{Value: true, Raw: "true"})
	require.NoError(t, err)
	assert.Equal(t, `true`, string(got))
}
