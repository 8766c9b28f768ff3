package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cloudwego/eino/components/embedding"

	"resume-match-go/internal/config"
	"resume-match-go/internal/logger"
)

// OpenAIEmbedder 通过OpenAI兼容端点获取文本向量，
// 实现 cloudwego/eino 的 embedding.Embedder 接口。
type OpenAIEmbedder struct {
	apiKey     string
	model      string
	dimensions int
	httpClient *http.Client
	baseURL    string
}

// NewOpenAIEmbedder 创建远程Embedder
func NewOpenAIEmbedder(embeddingCfg config.EmbeddingConfig) (*OpenAIEmbedder, error) {
	if embeddingCfg.APIKey == "" {
		return nil, fmt.Errorf("API密钥不能为空")
	}

	model := embeddingCfg.Model
	if model == "" {
		model = "text-embedding-v3"
	}
	baseURL := embeddingCfg.BaseURL
	if baseURL == "" {
		return nil, fmt.Errorf("embedding端点不能为空")
	}

	return &OpenAIEmbedder{
		apiKey:     embeddingCfg.APIKey,
		model:      model,
		dimensions: embeddingCfg.Dimensions,
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}, nil
}

// Fingerprint 返回编码器指纹
func (e *OpenAIEmbedder) Fingerprint() string {
	return Fingerprint(e.model, e.dimensions)
}

// Dimensions 返回配置的向量维度
func (e *OpenAIEmbedder) Dimensions() int {
	return e.dimensions
}

// openAIEmbeddingRequest OpenAI兼容的Embedding请求结构
type openAIEmbeddingRequest struct {
	Input          interface{} `json:"input"` // string 或 []string
	Model          string      `json:"model"`
	Dimensions     int         `json:"dimensions,omitempty"`
	EncodingFormat string      `json:"encoding_format,omitempty"`
}

// openAIEmbeddingResponse OpenAI兼容的Embedding响应结构
type openAIEmbeddingResponse struct {
	Object string            `json:"object"`
	Data   []openAIDataEntry `json:"data"`
	Model  string            `json:"model"`
	Usage  openAIUsage       `json:"usage"`
	ID     string            `json:"id,omitempty"`
	Error  *openAIError      `json:"error,omitempty"`
}

type openAIDataEntry struct {
	Object    string    `json:"object"`
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
}

type openAIUsage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// openAIError API在200响应体内携带的错误
type openAIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param"`
	Code    string `json:"code"`
}

// EmbedStrings 将一批文本转换为向量，实现 embedding.Embedder 接口。
// 输入与输出保持一一对应，批量只是摊薄延迟的手段。
func (e *OpenAIEmbedder) EmbedStrings(ctx context.Context, texts []string, opts ...embedding.Option) ([][]float64, error) {
	options := &embedding.Options{}
	embedding.GetCommonOptions(options, opts...)

	effectiveModel := e.model
	if options.Model != nil && *options.Model != "" {
		effectiveModel = *options.Model
	}

	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	var inputBody interface{}
	if len(texts) == 1 {
		inputBody = texts[0]
	} else {
		inputBody = texts
	}

	reqBody := openAIEmbeddingRequest{
		Input: inputBody,
		Model: effectiveModel,
	}
	if e.dimensions > 0 {
		reqBody.Dimensions = e.dimensions
	}

	logger.Debug().
		Str("model", effectiveModel).
		Int("texts", len(texts)).
		Msg("发起embedding请求")

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("序列化请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("创建HTTP请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("发送HTTP请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应体失败: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiError openAIError
		if json.Unmarshal(body, &apiError) == nil && apiError.Message != "" {
			return nil, fmt.Errorf("API调用失败, 状态码: %d, 类型: %s, 错误: %s, Code: %s",
				resp.StatusCode, apiError.Type, apiError.Message, apiError.Code)
		}
		return nil, fmt.Errorf("API调用失败, 状态码: %d, 响应: %s", resp.StatusCode, string(body))
	}

	var parsedResp openAIEmbeddingResponse
	if err := json.Unmarshal(body, &parsedResp); err != nil {
		return nil, fmt.Errorf("解析响应JSON失败: %w", err)
	}

	// 部分兼容端点用200携带API级错误（如输入条数超限）
	if parsedResp.Error != nil && parsedResp.Error.Message != "" {
		return nil, fmt.Errorf("API返回错误: 类型=%s, 消息='%s', Code=%s",
			parsedResp.Error.Type, parsedResp.Error.Message, parsedResp.Error.Code)
	}

	if len(parsedResp.Data) != len(texts) {
		return nil, fmt.Errorf("向量数量与输入不一致: 输入%d条, 返回%d条", len(texts), len(parsedResp.Data))
	}

	// 响应顺序按Index归位，保证与输入一一对应
	outputEmbeddings := make([][]float64, len(parsedResp.Data))
	for i, entry := range parsedResp.Data {
		idx := entry.Index
		if idx < 0 || idx >= len(outputEmbeddings) {
			idx = i
		}
		outputEmbeddings[idx] = entry.Embedding
	}

	logger.Debug().
		Int("texts", len(texts)).
		Int("dim", firstEmbeddingDim(outputEmbeddings)).
		Int("prompt_tokens", parsedResp.Usage.PromptTokens).
		Msg("embedding请求完成")

	return outputEmbeddings, nil
}

func firstEmbeddingDim(embeddings [][]float64) int {
	if len(embeddings) > 0 {
		return len(embeddings[0])
	}
	return 0
}
