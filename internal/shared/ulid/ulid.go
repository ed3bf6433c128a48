package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a ULID string. Event and request IDs use it so that
// identifiers sort by creation time.
var NewULID = func() string {
	return ulid.Make().String()
}
