package xhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/omeyang/genkit/pkg/util/xpromise"
)

// SHA256Hex 返回 s 的 SHA-256 摘要，64 位小写十六进制。
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA256HexBytes 返回 b 的 SHA-256 摘要，64 位小写十六进制。
func SHA256HexBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// SHA256Async 在后台计算 s 的 SHA-256 摘要。
// 返回的 Promise 经 Wait 取回结果；计算不会失败，错误恒为 nil。
func SHA256Async(s string) *xpromise.Promise[string] {
	return xpromise.New(func() (string, error) {
		return SHA256Hex(s), nil
	})
}

// Sum64 返回 s 的 XXH64 哈希值。
func Sum64(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Sum64Hex 返回 s 的 XXH64 哈希值，16 位零填充小写十六进制。
func Sum64Hex(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
