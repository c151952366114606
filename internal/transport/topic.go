package transport

import "strings"

// ValidTopic reports whether name can be published to: non-empty and free
// of wildcard characters.
func ValidTopic(name string) bool {
	return name != "" && !strings.ContainsAny(name, "+#\x00")
}

// ValidFilter reports whether filter is a well-formed subscription filter.
// "+" must occupy a whole level and "#" must be the whole last level.
func ValidFilter(filter string) bool {
	if filter == "" || strings.ContainsRune(filter, '\x00') {
		return false
	}

	levels := strings.Split(filter, "/")
	for i, level := range levels {
		switch {
		case level == "#":
			if i != len(levels)-1 {
				return false
			}
		case level == "+":
		case strings.ContainsAny(level, "+#"):
			return false
		}
	}
	return true
}

// MatchTopic reports whether topic matches the subscription filter using
// MQTT wildcard rules. "#" also matches the parent level, so "a/#"
// matches "a".
func MatchTopic(filter, topic string) bool {
	f := strings.Split(filter, "/")
	t := strings.Split(topic, "/")

	for i, level := range f {
		if level == "#" {
			return true
		}
		if i >= len(t) {
			return false
		}
		if level != "+" && level != t[i] {
			return false
		}
	}
	return len(f) == len(t)
}
