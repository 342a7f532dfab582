package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songzhibin97/cosmoboard/internal/models"
)

func liveSnapshot() models.MetricsSnapshot {
	return models.MetricsSnapshot{
		Protocol: models.ProtocolStats{
			TVL:          models.Known(12_000_000),
			Volume24h:    models.Known(850_000),
			Volume7d:     models.Known(4_200_000),
			VolumeChange: models.Known(0),
		},
		Chain: models.ChainStats{TVL: models.Known(12_000_000), Protocols: 12},
		Token: models.TokenStats{
			Price:       models.Known(0.0234),
			PriceChange: models.Known(5.2),
			MarketCap:   models.Known(2_340_000),
			Volume24h:   models.Known(125_000),
		},
		Source: models.SourceLive,
	}
}

func TestSlots(t *testing.T) {
	slots := Slots(liveSnapshot())

	want := map[string]string{
		SlotAtmosTVL:          "$12.00M",
		SlotAtmosVolume24h:    "$850.00K",
		SlotAtmosVolume7d:     "$4.20M",
		SlotAtmosVolumeChange: `<span class="positive">+0.00%</span>`,
		SlotSupraTVL:          "$12.00M",
		SlotSupraProtocols:    "12",
		SlotCosmoPrice:        "$0.0234",
		SlotCosmoPriceChange:  `<span class="positive">+5.20%</span>`,
		SlotCosmoMarketCap:    "$2.34M",
		SlotCosmoVolume:       "$125.00K",
	}
	assert.Equal(t, want, slots)
	assert.Len(t, slots, len(MetricSlots))
}

func TestSlots_UnknownUsesPlaceholder(t *testing.T) {
	snap := liveSnapshot()
	snap.Protocol.Volume24h = models.Unknown()
	snap.Token.PriceChange = models.Unknown()

	slots := Slots(snap)
	assert.Equal(t, "-", slots[SlotAtmosVolume24h])
	assert.Equal(t, "-", slots[SlotCosmoPriceChange])
}

func TestIsHTML(t *testing.T) {
	assert.True(t, IsHTML(SlotAtmosVolumeChange))
	assert.True(t, IsHTML(SlotCosmoPriceChange))
	assert.True(t, IsHTML(SlotError))
	assert.False(t, IsHTML(SlotAtmosTVL))
}

func TestBoard_Lifecycle(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, StateLoading, b.State())
	assert.Empty(t, b.Slot(SlotLastUpdate))

	now := time.Date(2026, 10, 19, 14, 5, 9, 0, time.UTC)
	b.Apply(Slots(liveSnapshot()), now)

	assert.Equal(t, StateReady, b.State())
	assert.Equal(t, "2:05:09 PM", b.Slot(SlotLastUpdate))
	assert.Equal(t, "$12.00M", b.Slot(SlotAtmosTVL))

	// stays ready
	b.Apply(Slots(liveSnapshot()), now.Add(time.Minute))
	assert.Equal(t, StateReady, b.State())
	assert.Equal(t, "2:06:09 PM", b.Slot(SlotLastUpdate))
}

func TestBoard_ApplyIsIdempotent(t *testing.T) {
	b := NewBoard()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	slots := Slots(liveSnapshot())

	b.Apply(slots, now)
	first := b.View()
	b.Apply(slots, now)
	second := b.View()

	assert.Equal(t, first, second)
	assert.Len(t, second.Slots, len(MetricSlots))
}

func TestBoard_WarnReplacesAndPersists(t *testing.T) {
	b := NewBoard()

	b.Warn("first failure")
	b.Warn("second <failure>")

	banner := b.Slot(SlotError)
	assert.Contains(t, banner, "second &lt;failure&gt;")
	assert.NotContains(t, banner, "first failure")
	assert.Contains(t, banner, `class="error"`)

	// a later successful pass does not clear it
	b.Apply(Slots(liveSnapshot()), time.Now())
	assert.Equal(t, banner, b.Slot(SlotError))
}

func TestBoard_ViewIsACopy(t *testing.T) {
	b := NewBoard()
	b.Apply(Slots(liveSnapshot()), time.Now())

	view := b.View()
	view.Slots[SlotAtmosTVL] = "tampered"

	require.Equal(t, "$12.00M", b.Slot(SlotAtmosTVL))
}
