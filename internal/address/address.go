// Package address derives lisk32 addresses from public keys.
package address

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// Prefix starts every lisk32 address.
	Prefix = "lsk"
	// Length is the length of a lisk32 address including the prefix.
	Length = 41

	charset        = "zxvcpmbn3465o978uyrtkqew2adsjhfg"
	addressBytes   = 20
	checksumLength = 6
	publicKeyBytes = 32
)

var (
	ErrInvalidPublicKey = errors.New("invalid public key")
	ErrInvalidAddress   = errors.New("invalid lisk32 address")
)

var generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// FromPublicKey returns the lisk32 address of a hex encoded ed25519 public key.
func FromPublicKey(publicKey string) (string, error) {
	key, err := hex.DecodeString(publicKey)
	if err != nil || len(key) != publicKeyBytes {
		return "", fmt.Errorf("%w: %q", ErrInvalidPublicKey, publicKey)
	}
	sum := sha256.Sum256(key)
	return encode(sum[:addressBytes]), nil
}

// Validate checks the prefix, alphabet and checksum of a lisk32 address.
func Validate(address string) error {
	if len(address) != Length || !strings.HasPrefix(address, Prefix) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	data := make([]byte, 0, Length-len(Prefix))
	for _, c := range address[len(Prefix):] {
		i := strings.IndexRune(charset, c)
		if i < 0 {
			return fmt.Errorf("%w: %q", ErrInvalidAddress, address)
		}
		data = append(data, byte(i))
	}
	if polymod(data) != 1 {
		return fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}
	return nil
}

func encode(hash []byte) string {
	data := convertBits(hash, 8, 5)
	checksum := createChecksum(data)

	var b strings.Builder
	b.Grow(Length)
	b.WriteString(Prefix)
	for _, v := range data {
		b.WriteByte(charset[v])
	}
	for _, v := range checksum {
		b.WriteByte(charset[v])
	}
	return b.String()
}

func createChecksum(data []byte) []byte {
	values := make([]byte, len(data)+checksumLength)
	copy(values, data)
	mod := polymod(values) ^ 1

	checksum := make([]byte, checksumLength)
	for i := range checksum {
		checksum[i] = byte((mod >> (5 * (checksumLength - 1 - i))) & 31)
	}
	return checksum
}

func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i, g := range generator {
			if (top>>i)&1 == 1 {
				chk ^= g
			}
		}
	}
	return chk
}

// convertBits regroups data from fromBits wide to toBits wide groups, padding the tail.
func convertBits(data []byte, fromBits, toBits uint) []byte {
	var (
		acc  uint32
		bits uint
		out  = make([]byte, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))
		mask = uint32(1)<<toBits - 1
	)
	for _, v := range data {
		acc = acc<<fromBits | uint32(v)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte((acc>>bits)&mask))
		}
	}
	if bits > 0 {
		out = append(out, byte((acc<<(toBits-bits))&mask))
	}
	return out
}

// Cache memoizes public key to address derivation.
type Cache struct {
	entries *lru.Cache[string, string]
}

// NewCache creates a cache holding up to size derivations.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create address cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// FromPublicKey returns the cached address of publicKey, deriving it on a miss.
func (c *Cache) FromPublicKey(publicKey string) (string, error) {
	if addr, ok := c.entries.Get(publicKey); ok {
		return addr, nil
	}
	addr, err := FromPublicKey(publicKey)
	if err != nil {
		return "", err
	}
	c.entries.Add(publicKey, addr)
	return addr, nil
}
