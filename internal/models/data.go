package models

import (
	"encoding/json"
	"math"
)

// Value 数值指标，可能为未知
type Value struct {
	v     float64
	known bool
}

// Known wraps a finite number. NaN and ±Inf become Unknown.
func Known(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}
	return Value{v: v, known: true}
}

// Unknown returns the explicit unknown marker.
func Unknown() Value {
	return Value{}
}

// Float returns the number and whether it is known.
func (v Value) Float() (float64, bool) {
	return v.v, v.known
}

func (v Value) IsKnown() bool {
	return v.known
}

// MarshalJSON encodes unknown as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.known {
		return []byte("null"), nil
	}
	return json.Marshal(v.v)
}

// Source 快照来源
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// ProtocolStats Atmos 协议指标
type ProtocolStats struct {
	TVL          Value `json:"tvl"`
	Volume24h    Value `json:"volume_24h"`
	Volume7d     Value `json:"volume_7d"`
	VolumeChange Value `json:"volume_change"`
}

// ChainStats Supra 链指标
type ChainStats struct {
	TVL       Value `json:"chain_tvl"`
	Protocols int   `json:"protocols"`
}

// TokenStats $COSMO 代币指标
type TokenStats struct {
	Price       Value `json:"price"`
	PriceChange Value `json:"price_change"`
	MarketCap   Value `json:"market_cap"`
	Volume24h   Value `json:"volume_24h"`
}

// MetricsSnapshot is the result of one poll cycle. It is built once and only read afterwards.
type MetricsSnapshot struct {
	Protocol ProtocolStats `json:"atmos"`
	Chain    ChainStats    `json:"supra"`
	Token    TokenStats    `json:"cosmo"`
	Source   Source        `json:"source"`
}

// OverallStats Atmos overall-stats 接口的 data 字段
type OverallStats struct {
	TotalPoolTvlUsd *float64   `json:"totalPoolTvlUsd"`
	TotalVolume     *float64   `json:"totalVolume"`
	Breakdown       *Breakdown `json:"breakdown"`
}

// Breakdown 成交量拆分
type Breakdown struct {
	DexVolume      *float64 `json:"dexVolume"`
	SwapStepVolume *float64 `json:"swapStepVolume"`
}
