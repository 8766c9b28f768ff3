package vectorstore

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"

	"resume-match-go/internal/types"
)

var (
	// ErrEncoderMismatch 记录或查询向量来自不同的编码器配置。
	// 这是致命配置错误：算出的相似度没有意义，必须在计算前拦截。
	ErrEncoderMismatch = errors.New("编码器指纹不一致")

	// ErrDimensionMismatch 向量维度与索引不一致
	ErrDimensionMismatch = errors.New("向量维度不一致")
)

// QueryResult 一次近邻查询的单条结果
type QueryResult struct {
	Record     types.EmbeddingRecord
	Similarity float64 // 余弦相似度，[-1, 1]
}

// MemoryIndex 内存向量索引。生命周期为一次匹配会话：
// 构建、查询、丢弃，绝不跨无关的（简历, JD）对共享。
// 向量在入库时做L2归一化，余弦相似度退化为点积。
type MemoryIndex struct {
	mu          sync.RWMutex
	fingerprint string
	dimensions  int
	records     []types.EmbeddingRecord
	normalized  [][]float64
}

// NewMemoryIndex 创建绑定单一编码器的空索引
func NewMemoryIndex(fingerprint string, dimensions int) *MemoryIndex {
	return &MemoryIndex{
		fingerprint: fingerprint,
		dimensions:  dimensions,
	}
}

// Fingerprint 返回索引绑定的编码器指纹
func (idx *MemoryIndex) Fingerprint() string {
	return idx.fingerprint
}

// Len 返回记录数
func (idx *MemoryIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.records)
}

// Add 写入一条记录。指纹或维度不符的记录被拒收。
// ID为空时自动生成。
func (idx *MemoryIndex) Add(record types.EmbeddingRecord, fingerprint string) error {
	if fingerprint != idx.fingerprint {
		return fmt.Errorf("%w: 索引=%s, 记录=%s", ErrEncoderMismatch, idx.fingerprint, fingerprint)
	}
	if len(record.Vector) != idx.dimensions {
		return fmt.Errorf("%w: 索引=%d, 记录=%d", ErrDimensionMismatch, idx.dimensions, len(record.Vector))
	}

	normalized, err := normalize(record.Vector)
	if err != nil {
		return err
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.records = append(idx.records, record)
	idx.normalized = append(idx.normalized, normalized)
	return nil
}

// Query 返回与查询向量余弦相似度最高的topK条记录，降序排列
func (idx *MemoryIndex) Query(vector []float64, topK int) ([]QueryResult, error) {
	if len(vector) != idx.dimensions {
		return nil, fmt.Errorf("%w: 索引=%d, 查询=%d", ErrDimensionMismatch, idx.dimensions, len(vector))
	}
	if topK < 1 {
		return nil, fmt.Errorf("topK必须至少为1: %d", topK)
	}

	queryNorm, err := normalize(vector)
	if err != nil {
		return nil, err
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	results := make([]QueryResult, 0, len(idx.records))
	for i, stored := range idx.normalized {
		results = append(results, QueryResult{
			Record:     idx.records[i],
			Similarity: dot(queryNorm, stored),
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Similarity > results[b].Similarity
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// normalize L2归一化。零向量不可归一化。
func normalize(vector []float64) ([]float64, error) {
	var sum float64
	for _, v := range vector {
		sum += v * v
	}
	if sum == 0 {
		return nil, errors.New("零向量不可归一化")
	}
	norm := math.Sqrt(sum)
	out := make([]float64, len(vector))
	for i, v := range vector {
		out[i] = v / norm
	}
	return out, nil
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
