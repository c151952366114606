// Package codec maps the three message families (session control, entity
// state, application) to and from broker topics and payloads.
//
// Topics follow the scheme
//
//	[{prefix}/]{sessionID}/control
//	[{prefix}/]{sessionID}/entity/{entityID}
//	[{prefix}/]{sessionID}/app/{applicationTopic}
//
// Payloads are a versioned envelope {v, kind, sender, ...} encoded as JSON
// or as core-deterministic CBOR. Decoding detects the format from the
// first byte, so peers configured with different wire formats interoperate.
package codec
