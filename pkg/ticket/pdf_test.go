package ticket

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	at := time.Date(2026, 12, 1, 19, 30, 0, 0, time.UTC)
	out, err := Render(Data{
		Reference:   "BKG-20261201-AB12",
		HolderName:  "Jane Doe",
		Celebrity:   "Famous Person",
		Title:       "Meet & Greet",
		ScheduledAt: &at,
		Quantity:    2,
		Amount:      "150.00",
		Currency:    "USD",
		IssuedAt:    time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
