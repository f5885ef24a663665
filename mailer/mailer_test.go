// path: mailer/mailer_test.go
package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMTPSender_MissingCredentials(t *testing.T) {
	_, err := NewSMTPSender("smtp.resend.com", 587, "", "", "ops@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials not set")
}

func TestNewSMTPSender_BuildsValidURL(t *testing.T) {
	// Addresses contain '@' and the key can carry URL-significant bytes;
	// the assembled smtp:// URL must still parse.
	s, err := NewSMTPSender("smtp.resend.com", 587, "alerts@example.com", "re_secret/key+x", "ops@example.com")
	require.NoError(t, err)
	require.NotNil(t, s)
}
