package token

import "fmt"

// ChecksumWidth is the number of hex digits every segment reserves for the key checksum.
const ChecksumWidth = 4

// Checksum sums the byte values of key and renders the sum as lowercase hex,
// zero-padded to ChecksumWidth digits. Sums above 0xffff render wider and can
// never match a segment's checksum field.
func Checksum(key string) string {
	sum := 0
	for i := 0; i < len(key); i++ {
		sum += int(key[i])
	}
	return fmt.Sprintf("%0*x", ChecksumWidth, sum)
}
