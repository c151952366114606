package models

// QoS is the delivery guarantee requested from the broker for a publish
// or subscription.
type QoS byte

const (
	AtMostOnce  QoS = 0
	AtLeastOnce QoS = 1
	ExactlyOnce QoS = 2
	// Reserved is never sent on the wire.
	Reserved QoS = 3
)

// Valid reports whether q can be used for publishing or subscribing.
func (q QoS) Valid() bool {
	return q <= ExactlyOnce
}

// AtLeast returns q raised to min when it is weaker.
func (q QoS) AtLeast(min QoS) QoS {
	if q < min || !q.Valid() {
		return min
	}
	return q
}
