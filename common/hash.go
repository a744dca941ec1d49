package common

import (
	"golang.org/x/crypto/blake2b"
)

func Blake2b224(data []byte) []byte {
	h, _ := blake2b.New(28, nil) // only fails for invalid sizes or keys
	h.Write(data)
	return h.Sum(nil)
}

func Blake2b256(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}
