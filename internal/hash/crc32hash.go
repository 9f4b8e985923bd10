package hash

import (
	"hash/crc32"
)

// CRC32HashAlgorithm - Hash algorithm implemented using crc32.ChecksumIEEE over the key bytes
type CRC32HashAlgorithm struct{}

// NewCRC32HashAlgorithm - Returns a pointer to a new CRC32HashAlgorithm instance
func NewCRC32HashAlgorithm() *CRC32HashAlgorithm {
	return &CRC32HashAlgorithm{}
}

// HashFunc - Given key it returns its IEEE crc32 checksum
func (C *CRC32HashAlgorithm) HashFunc(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}
