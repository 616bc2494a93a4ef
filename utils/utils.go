package utils

import (
	"encoding/hex"

	"github.com/wealdtech/go-merkletree/keccak256"
)

func Keccak256(data string) string {
	hash := keccak256.New().Hash([]byte(data))
	return "0x" + hex.EncodeToString(hash)
}
