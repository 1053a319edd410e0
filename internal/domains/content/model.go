package content

import "time"

// ========================================
// Content kinds - tagged union
// ========================================

// Kind phân biệt các loại nội dung do cùng một orchestrator quản lý.
// Mọi kind dùng chung một bảng content_items, một version ledger và
// một audit stream; khác nhau ở field names và ordering rules.
type Kind string

const (
	KindDocument  Kind = "document"
	KindGlossary  Kind = "glossary"
	KindComponent Kind = "component"
	KindOperator  Kind = "operator"
	KindBrand     Kind = "brand"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindDocument, KindGlossary, KindComponent, KindOperator, KindBrand:
		return true
	}
	return false
}

// IDField là tên field định danh trong payload (doc_id, term_id, ...).
// Giữ nguyên để API response tương thích với client hiện có.
func (k Kind) IDField() string {
	switch k {
	case KindDocument:
		return "doc_id"
	case KindGlossary:
		return "term_id"
	case KindComponent:
		return "component_id"
	case KindOperator:
		return "operator_id"
	case KindBrand:
		return "brand_id"
	}
	return ""
}

// TitleField là field dùng làm human-readable label trong audit và version log.
func (k Kind) TitleField() string {
	switch k {
	case KindDocument:
		return "title"
	case KindGlossary:
		return "term"
	default:
		return "name"
	}
}

// SearchFields liệt kê các field được quét khi client gửi ?search=.
func (k Kind) SearchFields() []string {
	switch k {
	case KindDocument:
		return []string{"title", "description", "content"}
	case KindGlossary:
		return []string{"term", "definition"}
	case KindComponent:
		return []string{"name", "description"}
	case KindOperator:
		return []string{"name", "tai_d", "description"}
	case KindBrand:
		return []string{"name"}
	}
	return nil
}

// ParseKind map path segment -> Kind. Chấp nhận cả số nhiều vì các route
// cũ dùng /documents, /brands.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "document", "documents":
		return KindDocument, true
	case "glossary":
		return KindGlossary, true
	case "component", "components":
		return KindComponent, true
	case "operator", "operators", "pigpen":
		return KindOperator, true
	case "brand", "brands":
		return KindBrand, true
	}
	return "", false
}

// ========================================
// Item
// ========================================

// Item là một content record. Data giữ toàn bộ state dưới dạng JSONB
// document - snapshot trong version ledger copy nguyên Data, vì vậy
// mọi field mà client thấy phải nằm trong đó.
type Item struct {
	Type      Kind                   `json:"content_type"`
	ID        string                 `json:"content_id"`
	Data      map[string]interface{} `json:"data"`
	IsActive  bool                   `json:"is_active"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func (i *Item) Title() string {
	if v, ok := i.Data[i.Type.TitleField()].(string); ok {
		return v
	}
	return i.ID
}

// IsCanonical báo record có nằm dưới canonical protection không.
// Chỉ có nghĩa với operators; kinds khác luôn false.
func (i *Item) IsCanonical() bool {
	if i.Type != KindOperator {
		return false
	}
	v, ok := i.Data["is_canonical"].(bool)
	return ok && v
}

// TAID trả về mã định danh tai_d của operator (rỗng nếu không phải operator).
func (i *Item) TAID() string {
	if i.Type != KindOperator {
		return ""
	}
	v, _ := i.Data["tai_d"].(string)
	return v
}

// ========================================
// Query filters & stats
// ========================================

// ListFilter áp cho List. Ordering là per-kind và do repository quyết:
// components theo layer, operators theo decision_weight desc rồi tai_d asc,
// còn lại theo created_at desc.
type ListFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// OperatorStats đi kèm danh sách operators.
type OperatorStats struct {
	CanonicalCount int `json:"canonical_count"`
	UserCount      int `json:"user_count"`
}

// DashboardStats tổng hợp số lượng active items cho trang tổng quan.
type DashboardStats struct {
	Documents  int `json:"documents"`
	Glossary   int `json:"glossary"`
	Components int `json:"components"`
	Operators  int `json:"operators"`
	Brands     int `json:"brands"`
	Users      int `json:"users"`
}
