package pays

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPayment(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, err := NewPayment("ORDER-1")
		assert.NoError(t, err)
		assert.Equal(t, "ORDER-1", p.ClientPaymentID())

		_, ok := p.GatewayPaymentID()
		assert.False(t, ok)
		assert.False(t, p.IsSuccess())
	})

	t.Run("MaxLengthAccepted", func(t *testing.T) {
		p, err := NewPayment(strings.Repeat("a", 100))
		assert.NoError(t, err)
		assert.Len(t, p.ClientPaymentID(), 100)
	})

	t.Run("TooLongRejected", func(t *testing.T) {
		_, err := NewPayment(strings.Repeat("a", 101))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("EmptyRejected", func(t *testing.T) {
		_, err := NewPayment("")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
