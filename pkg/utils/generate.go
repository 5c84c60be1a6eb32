package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== OTP ====================

// GenerateOTP returns a numeric code of the given length from crypto/rand.
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(fmt.Sprintf("generate otp: %v", err))
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}

	return sb.String()
}

// ==================== REFERENCES ====================

const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateReference builds codes like BKG-20250101-7KQ2.
func GenerateReference(prefix string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102"), randomCode(4))
}

func randomCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(referenceAlphabet)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(fmt.Sprintf("generate reference: %v", err))
		}
		b[i] = referenceAlphabet[idx.Int64()]
	}
	return string(b)
}

// ==================== SLUGS ====================

func Slugify(s string) string {
	return slug.Make(s)
}

// SlugWithSuffix appends a short random suffix, used when a slug is taken.
func SlugWithSuffix(s string) string {
	return fmt.Sprintf("%s-%s", slug.Make(s), strings.ToLower(randomCode(5)))
}
