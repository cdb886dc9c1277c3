package deck

import (
	"slices"
	"strings"
)

// TopicPath is the ordered list of deck names from the root to a deck.
// The empty path addresses the root.
type TopicPath []string

// ParseTopicPath splits "a/b/c" into a TopicPath. Blank segments and a
// leading '#' (tag form) are dropped.
func ParseTopicPath(s string) TopicPath {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var p TopicPath
	for seg := range strings.SplitSeq(s, "/") {
		if seg = strings.TrimSpace(seg); seg != "" {
			p = append(p, seg)
		}
	}
	return p
}

// IsEmpty reports whether p addresses the root.
func (p TopicPath) IsEmpty() bool {
	return len(p) == 0
}

// Equal reports whether p and o name the same deck.
func (p TopicPath) Equal(o TopicPath) bool {
	return slices.Equal(p, o)
}

// HasPrefix reports whether p is o or a descendant of o.
func (p TopicPath) HasPrefix(o TopicPath) bool {
	return len(p) >= len(o) && slices.Equal(p[:len(o)], o)
}

// Child returns a new path with name appended.
func (p TopicPath) Child(name string) TopicPath {
	return append(slices.Clip(p), name)
}

func (p TopicPath) String() string {
	return strings.Join(p, "/")
}
