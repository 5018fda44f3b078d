package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		topic    string
		platform string
		wantErr  error
	}{
		{"missing topic", "", "TikTok", ErrMissingField},
		{"missing platform", "morning routines", "", ErrMissingField},
		{"both missing", "", "", ErrMissingField},
		{"two chars", "ab", "TikTok", ErrTopicLength},
		{"three chars", "abc", "TikTok", nil},
		{"five hundred chars", strings.Repeat("a", 500), "TikTok", nil},
		{"five hundred one chars", strings.Repeat("a", 501), "TikTok", ErrTopicLength},
		{"multibyte counted as characters", strings.Repeat("é", 500), "TikTok", nil},
		{"whitespace topic is present", "   ", "TikTok", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{Topic: tt.topic, Platform: tt.platform}
			got, err := Validate(req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, req, got)
		})
	}
}

func TestValidateDoesNotTrim(t *testing.T) {
	req := Request{Topic: "  padded topic  ", Platform: " Instagram Reels "}
	got, err := Validate(req)
	require.NoError(t, err)
	assert.Equal(t, req, got)
}
