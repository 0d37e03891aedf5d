package service

// Lookup results recorded for nearby seller searches.
const (
	NearbyResultMatched         = "matched"
	NearbyResultNoPolygon       = "no_polygon"
	NearbyResultNoSeller        = "no_seller"
	NearbyResultMissingLocation = "missing_location"
)

// Payment notification results.
const (
	PaymentResultCompleted        = "completed"
	PaymentResultIgnored          = "ignored"
	PaymentResultInvalidSignature = "invalid_signature"
	PaymentResultUnknownOrder     = "unknown_order"
)

// MetricsRecorder records business counters.
type MetricsRecorder interface {
	OrderCreated()
	OrderTransition(axis, to string)
	PaymentNotification(result string)
	NearbyLookup(result string)
}
