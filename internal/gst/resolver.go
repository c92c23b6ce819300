// Package gst determines the GST treatment of a transaction and computes
// the tax split for line items and documents. All money values are
// decimals; per-line amounts are kept at full precision and only
// document-level totals are rounded to two places.
package gst

import "taxtally/internal/domain"

// ResolveType classifies a transaction as intra-state or inter-state from
// the seller's and buyer's state names. Matching is case-insensitive and
// exact. An unrecognized buyer state resolves to inter-state: cross-border
// treatment is the conservative choice when the counterparty's state is
// unknown. Called once at document finalization; the result is frozen onto
// the document and never recomputed from later profile state.
func ResolveType(sellerState, buyerState string) domain.GstType {
	buyer := normalizeState(buyerState)
	if _, ok := indianStates[buyer]; !ok {
		return domain.GstTypeInterState
	}
	if normalizeState(sellerState) == buyer {
		return domain.GstTypeIntraState
	}
	return domain.GstTypeInterState
}
