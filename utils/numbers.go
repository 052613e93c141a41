package utils

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Ticket and request numbers follow PREFIX + date + 4-digit random suffix,
// e.g. TK202601154821. Collisions within a day are possible and handled by
// the caller retrying on a duplicate-key insert.

func GenerateTicketNumber(now time.Time) string {
	return generateNumber("TK", now)
}

func GenerateRequestNumber(now time.Time) string {
	return generateNumber("BR", now)
}

func generateNumber(prefix string, now time.Time) string {
	suffix := rand.IntN(9999) + 1
	return fmt.Sprintf("%s%s%04d", prefix, now.Format("20060102"), suffix)
}
