package models

// SynchronizerInfo describes one synchronizer for control-API listings.
type SynchronizerInfo struct {
	Address   string            `json:"address"`
	Host      string            `json:"host"`
	Port      int               `json:"port"`
	UseTLS    bool              `json:"use_tls"`
	Transport TransportKind     `json:"transport"`
	State     SynchronizerState `json:"state"`
	Session   *Session          `json:"session,omitempty"`
	Entities  int               `json:"entities"`
}

// JoinResponse returns the client id assigned by a successful join.
type JoinResponse struct {
	ClientID string `json:"client_id"`
}

// EntityResponse returns the id of an entity added through the API.
type EntityResponse struct {
	EntityID string `json:"entity_id"`
}

// EntitiesResponse lists the entity registry of a synchronizer.
type EntitiesResponse struct {
	Entities []SynchronizedEntity `json:"entities"`
	// Length is len(Entities), provided for convenience.
	Length int `json:"length"`
}

// UserTagResponse returns the last-known tag of a participant.
type UserTagResponse struct {
	ClientID string `json:"client_id"`
	UserTag  string `json:"user_tag"`
}

// JournalResponse lists journal records.
type JournalResponse struct {
	Records []JournalRecord `json:"records"`
	Length  int             `json:"length"`
}
