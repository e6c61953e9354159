package session

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const profileIDPrefix = "user_"

// NewProfileID returns a new, time-sortable profile id.
func NewProfileID() string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader)
	return profileIDPrefix + strings.ToLower(id.String())
}
