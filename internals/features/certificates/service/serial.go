package service

import (
	"crypto/rand"
	"fmt"
)

const serialAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const serialLength = 9

// GenerateSerial membuat nomor sertifikat "CERT-" + 9 karakter
// alfanumerik uppercase acak (crypto/rand).
func GenerateSerial() (string, error) {
	buf := make([]byte, serialLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("serial entropy: %w", err)
	}
	for i, b := range buf {
		buf[i] = serialAlphabet[int(b)%len(serialAlphabet)]
	}
	return "CERT-" + string(buf), nil
}
