package jsonutil

import "strings"

// 中文说明：
// 从 LLM 回复里提取 JSON 负载。模型经常把 JSON 包在 ``` 围栏里，
// 或者在前后附加解释文字，这里只做子串扫描，不做解码。

const codeFence = "```"

// ExtractObject 提取首个完整的 JSON 对象。
func ExtractObject(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if block, ok := extractFromFence(raw); ok {
		if obj, ok := scanBalanced(block, '{', '}'); ok {
			return obj, true
		}
		return block, true
	}
	return scanBalanced(raw, '{', '}')
}

// ExtractArray 提取首个完整的 JSON 数组。
func ExtractArray(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if block, ok := extractFromFence(raw); ok {
		if arr, ok := scanBalanced(block, '[', ']'); ok {
			return arr, true
		}
	}
	return scanBalanced(raw, '[', ']')
}

func extractFromFence(raw string) (string, bool) {
	start := strings.Index(raw, codeFence)
	if start == -1 {
		return "", false
	}
	rest := raw[start+len(codeFence):]
	end := strings.Index(rest, codeFence)
	if end == -1 {
		return "", false
	}
	block := strings.TrimLeft(rest[:end], "\r\n")
	// 跳过 ```json 这类语言标签行
	if idx := strings.Index(block, "\n"); idx != -1 {
		first := strings.TrimSpace(block[:idx])
		if first != "" && !strings.ContainsAny(first, "[{") {
			block = block[idx+1:]
		}
	}
	block = strings.TrimSpace(block)
	if block == "" {
		return "", false
	}
	return block, true
}

// scanBalanced 找到首个以 open 开始、括号配平的片段，字符串字面量内的括号不计数。
func scanBalanced(raw string, open, close byte) (string, bool) {
	start := strings.IndexByte(raw, open)
	if start == -1 {
		return "", false
	}
	depth := 0
	inString := false
	escape := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return strings.TrimSpace(raw[start : i+1]), true
			}
		}
	}
	return "", false
}
