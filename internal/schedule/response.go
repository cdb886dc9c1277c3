package schedule

import (
	"fmt"
	"strings"
)

// Response is the user's self-assessed recall of a card.
type Response int

const (
	Easy Response = iota
	Good
	Hard
	Reset
)

var responseNames = [...]string{"easy", "good", "hard", "reset"}

// Responses lists every valid response in display order.
var Responses = []Response{Easy, Good, Hard, Reset}

func (r Response) String() string {
	if !r.IsValid() {
		return fmt.Sprintf("response(%d)", int(r))
	}
	return responseNames[r]
}

// IsValid reports whether r is one of the four known responses.
func (r Response) IsValid() bool {
	return r >= Easy && r <= Reset
}

// MarshalText implements encoding.TextMarshaler.
func (r Response) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResponse, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Response) UnmarshalText(text []byte) error {
	parsed, err := ParseResponse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseResponse converts a case-insensitive response name.
func ParseResponse(s string) (Response, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range responseNames {
		if n == name {
			return Response(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidResponse, s)
}
