package embedding

import (
	"fmt"

	"github.com/cloudwego/eino/components/embedding"
)

// TextEmbedder 在 eino 的 embedding.Embedder 之上附加编码器身份。
// 一次比较会话中简历侧与JD侧必须使用同一编码器；
// 调用方在计算相似度前通过指纹检测混用。
type TextEmbedder interface {
	embedding.Embedder

	// Fingerprint 编码器指纹：模型名与维度的组合。
	// 指纹不同的向量不可比较。
	Fingerprint() string

	// Dimensions 输出向量的维度
	Dimensions() int
}

// Fingerprint 构造编码器指纹的规范形式
func Fingerprint(model string, dimensions int) string {
	return fmt.Sprintf("%s/%d", model, dimensions)
}
