package codec

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/worldsync/models"
)

const (
	controlLevel = "control"
	entityLevel  = "entity"
	appLevel     = "app"
)

// Route is a parsed session topic.
type Route struct {
	Family    models.MessageFamily
	SessionID string
	// Name is the entity id for entity topics and the application topic
	// for application topics.
	Name string
}

func (c *Codec) scoped(levels ...string) string {
	t := strings.Join(levels, "/")
	if c.prefix == "" {
		return t
	}
	return c.prefix + "/" + t
}

// ControlTopic returns the control topic of a session.
func (c *Codec) ControlTopic(sessionID string) string {
	return c.scoped(sessionID, controlLevel)
}

// EntityTopic returns the state topic of one entity.
func (c *Codec) EntityTopic(sessionID, entityID string) string {
	return c.scoped(sessionID, entityLevel, entityID)
}

// AppTopic returns the topic of an application message.
func (c *Codec) AppTopic(sessionID, topic string) string {
	return c.scoped(sessionID, appLevel, topic)
}

// SessionFilters returns the subscription filters that cover every topic
// of a session: control, all entities and all application topics.
func (c *Codec) SessionFilters(sessionID string) []string {
	return []string{
		c.ControlTopic(sessionID),
		c.scoped(sessionID, entityLevel, "+"),
		c.scoped(sessionID, appLevel, "#"),
	}
}

// ParseTopic splits a delivered topic into its family, session and name.
func (c *Codec) ParseTopic(topic string) (Route, error) {
	rest := topic
	if c.prefix != "" {
		var ok bool
		rest, ok = strings.CutPrefix(topic, c.prefix+"/")
		if !ok {
			return Route{}, fmt.Errorf("%w: %q outside prefix %q", ErrUnknownTopic, topic, c.prefix)
		}
	}

	levels := strings.SplitN(rest, "/", 3)
	if len(levels) < 2 || levels[0] == "" {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}

	r := Route{SessionID: levels[0]}
	switch {
	case levels[1] == controlLevel && len(levels) == 2:
		r.Family = models.FamilyControl
	case levels[1] == entityLevel && len(levels) == 3 && levels[2] != "" && !strings.Contains(levels[2], "/"):
		r.Family = models.FamilyEntity
		r.Name = levels[2]
	case levels[1] == appLevel && len(levels) == 3 && levels[2] != "":
		r.Family = models.FamilyApplication
		r.Name = levels[2]
	default:
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}
	return r, nil
}
