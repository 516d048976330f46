// File: utils/constants.go
package utils

import "github.com/google/uuid"

// Identifier prefixes for generated entity ids.
const (
	BookingPrefix      = "b"
	MessagePrefix      = "m"
	TransactionPrefix  = "t"
	NotificationPrefix = "n"
	ReviewPrefix       = "r"
)

// NewID returns prefix_<uuid>. Accounts use their role as the prefix.
func NewID(prefix string) string {
	return prefix + "_" + uuid.New().String()
}
