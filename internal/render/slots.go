package render

import (
	"github.com/songzhibin97/cosmoboard/internal/models"
	"github.com/songzhibin97/cosmoboard/internal/utils/format"
)

// Slot ids, matching the element ids of the dashboard page.
const (
	SlotAtmosTVL          = "atmos-tvl"
	SlotAtmosVolume24h    = "atmos-volume-24h"
	SlotAtmosVolume7d     = "atmos-volume-7d"
	SlotAtmosVolumeChange = "atmos-volume-change"
	SlotSupraTVL          = "supra-tvl"
	SlotSupraProtocols    = "supra-protocols"
	SlotCosmoPrice        = "cosmo-price"
	SlotCosmoPriceChange  = "cosmo-price-change"
	SlotCosmoMarketCap    = "cosmo-mcap"
	SlotCosmoVolume       = "cosmo-volume"

	SlotLastUpdate = "last-update"
	SlotError      = "error-container"
)

// MetricSlots lists the slots filled from a snapshot, in page order.
var MetricSlots = []string{
	SlotAtmosTVL,
	SlotAtmosVolume24h,
	SlotAtmosVolume7d,
	SlotAtmosVolumeChange,
	SlotSupraTVL,
	SlotSupraProtocols,
	SlotCosmoPrice,
	SlotCosmoPriceChange,
	SlotCosmoMarketCap,
	SlotCosmoVolume,
}

// htmlSlots hold markup rather than plain text.
var htmlSlots = map[string]bool{
	SlotAtmosVolumeChange: true,
	SlotCosmoPriceChange:  true,
	SlotError:             true,
}

// IsHTML reports whether a slot's content is an HTML fragment.
func IsHTML(slot string) bool {
	return htmlSlots[slot]
}

// Slots maps a snapshot to formatted slot contents. It has no side effects.
func Slots(snap models.MetricsSnapshot) map[string]string {
	return map[string]string{
		SlotAtmosTVL:          format.FormatCurrency(snap.Protocol.TVL),
		SlotAtmosVolume24h:    format.FormatCurrency(snap.Protocol.Volume24h),
		SlotAtmosVolume7d:     format.FormatCurrency(snap.Protocol.Volume7d),
		SlotAtmosVolumeChange: format.FormatPercent(snap.Protocol.VolumeChange),
		SlotSupraTVL:          format.FormatCurrency(snap.Chain.TVL),
		SlotSupraProtocols:    format.FormatCount(snap.Chain.Protocols),
		SlotCosmoPrice:        format.FormatPrice(snap.Token.Price),
		SlotCosmoPriceChange:  format.FormatPercent(snap.Token.PriceChange),
		SlotCosmoMarketCap:    format.FormatCurrency(snap.Token.MarketCap),
		SlotCosmoVolume:       format.FormatCurrency(snap.Token.Volume24h),
	}
}
