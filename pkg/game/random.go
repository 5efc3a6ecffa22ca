package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"log"
	"math/rand/v2"
)

// Rand 是状态机使用的随机源
// *rand.Rand（math/rand/v2）满足此接口；测试中可以替换为确定性的实现
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand 创建本次运行使用的随机源
//
// seed 为 nil 时从操作系统安全随机源取种子（每次运行表现不同）；
// 指定 seed 时行为可复现，方便调试。
func NewRand(seed *uint64) *rand.Rand {
	return rand.New(rand.NewChaCha8(seedBytes(seed)))
}

// seedBytes 生成 ChaCha8 的 32 字节种子
// 固定 seed 写入前 8 字节；否则 32 字节全部来自 crypto/rand
func seedBytes(seed *uint64) [32]byte {
	var buf [32]byte
	if seed != nil {
		log.Printf("[Rand] Using fixed seed %d", *seed)
		binary.LittleEndian.PutUint64(buf[:8], *seed)
		return buf
	}

	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand 读取失败时退回到全局随机源
		log.Printf("[Rand] Warning: crypto/rand unavailable (%v), falling back", err)
		for i := 0; i < len(buf); i += 8 {
			binary.LittleEndian.PutUint64(buf[i:i+8], rand.Uint64())
		}
	}
	return buf
}

// RandomRange 返回 [min, max) 内的均匀随机浮点数
func RandomRange(rng Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// ChooseString 从列表中均匀随机选择一项，列表为空时返回 false
func ChooseString(rng Rand, items []string) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	return items[rng.IntN(len(items))], true
}
