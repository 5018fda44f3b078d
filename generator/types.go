package generator

// Request 是一次生成请求的输入，handler 结束后即丢弃。
type Request struct {
	Topic    string `json:"topic"`
	Platform string `json:"platform"`
}

// Result is what a successful generation returns to the caller.
type Result struct {
	Hooks    []string `json:"hooks"`
	Platform string   `json:"platform"`
	Topic    string   `json:"topic"`
}
