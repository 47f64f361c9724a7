package realtime_test

import (
	"strings"
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBoard(t *testing.T) {
	received := snapshot(order.Received)
	preparing := snapshot(order.Preparing)
	preparing.Number = "ORD-20260314-DEF456"
	stats := order.NewStats(map[order.Status]int{order.Received: 1, order.Preparing: 1})

	var out strings.Builder
	err := realtime.RenderBoard(&out, []order.Snapshot{received, preparing}, stats, func(id kernel.UUID) bool {
		return id.IsEqual(preparing.ID)
	})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "received 1  preparing 1  ready 0  active 2", lines[0])
	assert.Contains(t, lines[2], "Order Received")
	assert.Contains(t, lines[2], "Start Preparing, Cancel")
	assert.Contains(t, lines[3], "Preparing (saving)")
	assert.NotContains(t, lines[3], "Mark Ready")
}

func TestFingerprint_ChangesWithStatus(t *testing.T) {
	o := snapshot(order.Received)
	before := realtime.Fingerprint([]order.Snapshot{o})

	assert.Equal(t, before, realtime.Fingerprint([]order.Snapshot{o.Clone()}))
	assert.NotEqual(t, before, realtime.Fingerprint([]order.Snapshot{withStatus(o, order.Preparing)}))
	assert.NotEqual(t, before, realtime.Fingerprint(nil))
}
