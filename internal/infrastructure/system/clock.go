package system

import (
	"time"

	"github.com/minseop-dev/userboard/internal/domain/port"
)

// Clock reads the platform wall clock in UTC.
type Clock struct{}

func (Clock) NowMillis() int64 {
	return time.Now().UTC().UnixMilli()
}

var _ port.Clock = Clock{}
