package authority

import "strings"

// Checker trả lời một câu hỏi duy nhất: identity này có phải sovereign không.
// Sovereign là identity duy nhất có quyền override canonical records.
//
// Resolved từ configuration chứ không hardcode - rule swappable và
// testable mà không đổi code.
type Checker interface {
	IsSovereign(email string) bool
}

type checker struct {
	sovereignEmail string
}

func NewChecker(sovereignEmail string) Checker {
	return &checker{sovereignEmail: strings.ToLower(strings.TrimSpace(sovereignEmail))}
}

func (c *checker) IsSovereign(email string) bool {
	if c.sovereignEmail == "" {
		// Không cấu hình sovereign -> không ai là sovereign.
		// Canonical records trở thành bất biến hoàn toàn.
		return false
	}
	return strings.EqualFold(strings.TrimSpace(email), c.sovereignEmail)
}
