package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name           string
		reply          string
		expectedSafe   bool
		expectedReason string
	}{
		{
			name:           "Safe With Reason",
			reply:          "SAFE\nNo harmful content detected",
			expectedSafe:   true,
			expectedReason: "No harmful content detected",
		},
		{
			name:           "Unsafe With Reason",
			reply:          "UNSAFE\ndepicts harm",
			expectedSafe:   false,
			expectedReason: "depicts harm",
		},
		{
			name:           "Safe Without Line Break",
			reply:          "SAFE",
			expectedSafe:   true,
			expectedReason: "",
		},
		{
			name:           "Unsafe Without Line Break",
			reply:          "UNSAFE",
			expectedSafe:   false,
			expectedReason: "",
		},
		{
			name:           "Unsafe Single Line With Reason",
			reply:          "UNSAFE - graphic violence",
			expectedSafe:   false,
			expectedReason: "",
		},
		{
			name:           "Empty Reply",
			reply:          "",
			expectedSafe:   false,
			expectedReason: "",
		},
		{
			name:           "Lowercase Verdict",
			reply:          "safe\nlooks fine",
			expectedSafe:   false,
			expectedReason: "looks fine",
		},
		{
			name:           "Verdict Not At Start",
			reply:          "The prompt is SAFE\nok",
			expectedSafe:   false,
			expectedReason: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseVerdict(tt.reply)

			require.Equal(t, tt.expectedSafe, result.Safe)
			require.Equal(t, tt.expectedReason, result.Reason)
		})
	}
}
