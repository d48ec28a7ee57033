// Package extradata builds and parses the extraData field of a proof-of-authority
// genesis block: 32 bytes of vanity, the concatenated signer addresses, and a 65 byte
// seal region, all hex encoded behind a "0x" prefix.
package extradata

import (
	"strings"

	"github.com/samber/lo"
)

const (
	// VanityLength is the number of zero bytes placed before the signers.
	VanityLength = 32
	// SealLength is the number of zero bytes placed after the signers.
	SealLength = 65

	hexPrefix = "0x"
	// one byte is encoded using two hex characters
	nibblesPerByte = 2
)

var (
	vanity = strings.Repeat("0", VanityLength*nibblesPerByte)
	seal   = strings.Repeat("0", SealLength*nibblesPerByte)
)

// Encode returns the extraData string for a single signer address.
// The address may be prefixed with "0x"; it is otherwise used as given.
func Encode(signerAddress string) string {
	return EncodeSigners([]string{signerAddress})
}

// EncodeSigners concatenates the given signer addresses, in order, between the
// vanity and seal padding. Addresses are not validated.
func EncodeSigners(signerAddresses []string) string {
	normalized := lo.Map(signerAddresses, func(addr string, _ int) string {
		return Normalize(addr)
	})

	var sb strings.Builder
	sb.Grow(len(hexPrefix) + len(vanity) + len(seal) + lo.SumBy(normalized, func(s string) int { return len(s) }))
	sb.WriteString(hexPrefix)
	sb.WriteString(vanity)
	for _, s := range normalized {
		sb.WriteString(s)
	}
	sb.WriteString(seal)
	return sb.String()
}

// Normalize removes exactly one leading "0x" from addr, if present.
func Normalize(addr string) string {
	return strings.TrimPrefix(addr, hexPrefix)
}
