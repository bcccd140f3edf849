package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record id prefixes, one per store. Timesheet ids carry no prefix.
const (
	ExpenseIDPrefix = "exp-"
	GpsIDPrefix     = "gpx-"
)

// NewRecordID builds a collision-resistant record id: millisecond timestamp
// plus a random 8-char suffix. Uniqueness is best effort, the primary key
// constraint is the backstop.
func NewRecordID(prefix string) string {
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("%s%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
