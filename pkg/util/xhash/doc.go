// Package xhash 提供哈希摘要封装。
//
// # 功能概览
//
//   - [SHA256Hex] / [SHA256HexBytes]: SHA-256 小写十六进制摘要
//   - [SHA256Async]: 后台计算摘要，经 [xpromise.Promise] 等待结果
//   - [Sum64] / [Sum64Hex]: XXH64 快速非加密哈希，用于分片、采样等键控场景
//
// XXH64 不可用于安全敏感场景；需要抗碰撞保证时使用 SHA-256。
package xhash
