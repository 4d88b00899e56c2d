package notify

import (
	"bytes"
	"context"
	"testing"

	"dicefit-api/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordResetMessage(t *testing.T) {
	msg, err := passwordResetMessage("no-reply@dicefit.app", "ana@example.com", "Ana", "48213")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	rendered := buf.String()
	assert.Contains(t, rendered, "ana@example.com")
	assert.Contains(t, rendered, "no-reply@dicefit.app")
	assert.Contains(t, passwordResetBody("Ana", "48213"), "Sua nova senha é: 48213")
}

func TestPasswordResetMessage_InvalidRecipient(t *testing.T) {
	_, err := passwordResetMessage("no-reply@dicefit.app", "not an address", "Ana", "48213")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	n, err := New(config.Config{}, zerolog.Nop())
	require.NoError(t, err)
	assert.ErrorIs(t, n.SendPasswordReset(context.Background(), "a@b.c", "A", "12345"), ErrNotConfigured)

	n, err = New(config.Config{SMTPHost: "localhost", SMTPPort: 2525, SMTPFrom: "no-reply@dicefit.app"}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &SMTPNotifier{}, n)
}

func TestSMTPNotifier_HonoursCancelledContext(t *testing.T) {
	n, err := NewSMTPNotifier(config.Config{SMTPHost: "localhost", SMTPPort: 2525, SMTPFrom: "no-reply@dicefit.app"}, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = n.SendPasswordReset(ctx, "ana@example.com", "Ana", "48213")
	assert.ErrorIs(t, err, context.Canceled)
}
