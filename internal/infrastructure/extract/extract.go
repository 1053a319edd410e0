// Package extract rút plain text từ uploaded attachments để đưa vào
// assistant context. Best-effort: file không extract được thì trả lỗi,
// attachment vẫn dùng được như object thuần.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Text dispatch theo extension. Kết quả bị truncate tại maxChars
// (rune-safe). Image formats không có text -> chuỗi rỗng, không lỗi.
func Text(filename string, data []byte, maxChars int) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".md":
		return truncate(plainText(data), maxChars), nil
	case ".pdf":
		text, err := pdfText(data)
		if err != nil {
			return "", err
		}
		return truncate(text, maxChars), nil
	case ".png", ".jpg", ".jpeg", ".webp":
		return "", nil
	}
	return "", fmt.Errorf("no extractor for %s", ext)
}

// Preview cắt đoạn đầu của extracted text cho file listing.
func Preview(text string, maxChars int) string {
	return truncate(strings.TrimSpace(text), maxChars)
}

func plainText(data []byte) string {
	if !utf8.Valid(data) {
		// Strip invalid sequences thay vì reject cả file.
		return strings.ToValidUTF8(string(data), "")
	}
	return string(data)
}

func truncate(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
