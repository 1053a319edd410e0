package content

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Payload là input đã validate cho create/update. Fields() trả về map
// sẽ được merge vào Data; update DTO chỉ trả các field thực sự được gửi.
type Payload interface {
	Validate() error
	Fields() map[string]interface{}
}

// ========================================
// Documents
// ========================================

type CreateDocumentRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
}

func (r CreateDocumentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.Category, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
	)
}

func (r CreateDocumentRequest) Fields() map[string]interface{} {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]interface{}{
		"title":       r.Title,
		"category":    r.Category,
		"description": r.Description,
		"content":     r.Content,
		"tags":        tags,
	}
}

type UpdateDocumentRequest struct {
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Tags        *[]string `json:"tags"`
}

func (r UpdateDocumentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 500)),
		validation.Field(&r.Category, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

func (r UpdateDocumentRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	putString(f, "title", r.Title)
	putString(f, "category", r.Category)
	putString(f, "description", r.Description)
	putString(f, "content", r.Content)
	putStrings(f, "tags", r.Tags)
	return f
}

// ========================================
// Glossary
// ========================================

type CreateGlossaryRequest struct {
	Term         string   `json:"term"`
	Definition   string   `json:"definition"`
	Category     string   `json:"category"`
	RelatedTerms []string `json:"related_terms"`
}

func (r CreateGlossaryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Term, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Definition, validation.Required),
		validation.Field(&r.Category, validation.Required, validation.Length(1, 100)),
	)
}

func (r CreateGlossaryRequest) Fields() map[string]interface{} {
	related := r.RelatedTerms
	if related == nil {
		related = []string{}
	}
	return map[string]interface{}{
		"term":          r.Term,
		"definition":    r.Definition,
		"category":      r.Category,
		"related_terms": related,
	}
}

type UpdateGlossaryRequest struct {
	Term         *string   `json:"term"`
	Definition   *string   `json:"definition"`
	Category     *string   `json:"category"`
	RelatedTerms *[]string `json:"related_terms"`
}

func (r UpdateGlossaryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Term, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Definition, validation.NilOrNotEmpty),
		validation.Field(&r.Category, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

func (r UpdateGlossaryRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	putString(f, "term", r.Term)
	putString(f, "definition", r.Definition)
	putString(f, "category", r.Category)
	putStrings(f, "related_terms", r.RelatedTerms)
	return f
}

// ========================================
// Architecture components
// ========================================

type CreateComponentRequest struct {
	Name         string   `json:"name"`
	Layer        int      `json:"layer"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Status       string   `json:"status"`
}

func (r CreateComponentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Layer, validation.Min(0), validation.Max(99)),
		validation.Field(&r.Status, validation.In("planned", "in_progress", "active", "deprecated")),
	)
}

func (r CreateComponentRequest) Fields() map[string]interface{} {
	techs := r.Technologies
	if techs == nil {
		techs = []string{}
	}
	status := r.Status
	if status == "" {
		status = "planned"
	}
	return map[string]interface{}{
		"name":         r.Name,
		"layer":        r.Layer,
		"description":  r.Description,
		"technologies": techs,
		"status":       status,
	}
}

type UpdateComponentRequest struct {
	Name         *string   `json:"name"`
	Layer        *int      `json:"layer"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	Status       *string   `json:"status"`
}

func (r UpdateComponentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Status, validation.In("planned", "in_progress", "active", "deprecated")),
	)
}

func (r UpdateComponentRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	putString(f, "name", r.Name)
	if r.Layer != nil {
		f["layer"] = *r.Layer
	}
	putString(f, "description", r.Description)
	putStrings(f, "technologies", r.Technologies)
	putString(f, "status", r.Status)
	return f
}

// ========================================
// Operators
// ========================================

// CreateOperatorRequest cố ý KHÔNG có field is_canonical: record do user
// tạo không bao giờ canonical, bất kể client gửi gì.
type CreateOperatorRequest struct {
	Name           string `json:"name"`
	TAID           string `json:"tai_d"`
	Capabilities   string `json:"capabilities"`
	Role           string `json:"role"`
	Authority      string `json:"authority"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	DecisionWeight int    `json:"decision_weight"`
	Status         string `json:"status"`
}

func (r CreateOperatorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.TAID, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.DecisionWeight, validation.Min(0)),
		validation.Field(&r.Status, validation.In("LOCKED", "ACTIVE", "DRAFT")),
	)
}

func (r CreateOperatorRequest) Fields() map[string]interface{} {
	weight := r.DecisionWeight
	if weight == 0 {
		weight = 1
	}
	status := r.Status
	if status == "" {
		status = "DRAFT"
	}
	return map[string]interface{}{
		"name":            r.Name,
		"tai_d":           r.TAID,
		"capabilities":    r.Capabilities,
		"role":            r.Role,
		"authority":       r.Authority,
		"description":     r.Description,
		"category":        r.Category,
		"decision_weight": weight,
		"status":          status,
	}
}

// UpdateOperatorRequest cũng không nhận is_canonical lẫn tai_d -
// danh tính của operator là bất biến sau khi tạo.
type UpdateOperatorRequest struct {
	Name           *string `json:"name"`
	Capabilities   *string `json:"capabilities"`
	Role           *string `json:"role"`
	Authority      *string `json:"authority"`
	Description    *string `json:"description"`
	Category       *string `json:"category"`
	DecisionWeight *int    `json:"decision_weight"`
	Status         *string `json:"status"`
}

func (r UpdateOperatorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Status, validation.In("LOCKED", "ACTIVE", "DRAFT")),
	)
}

func (r UpdateOperatorRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	putString(f, "name", r.Name)
	putString(f, "capabilities", r.Capabilities)
	putString(f, "role", r.Role)
	putString(f, "authority", r.Authority)
	putString(f, "description", r.Description)
	putString(f, "category", r.Category)
	if r.DecisionWeight != nil {
		f["decision_weight"] = *r.DecisionWeight
	}
	putString(f, "status", r.Status)
	return f
}

// ========================================
// Brands
// ========================================

type CreateBrandRequest struct {
	Name       string                 `json:"name"`
	Colors     map[string]interface{} `json:"colors"`
	Fonts      map[string]interface{} `json:"fonts"`
	LogoURL    string                 `json:"logo_url"`
	Guidelines string                 `json:"guidelines"`
}

func (r CreateBrandRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
	)
}

func (r CreateBrandRequest) Fields() map[string]interface{} {
	colors := r.Colors
	if colors == nil {
		colors = map[string]interface{}{}
	}
	fonts := r.Fonts
	if fonts == nil {
		fonts = map[string]interface{}{}
	}
	return map[string]interface{}{
		"name":       r.Name,
		"colors":     colors,
		"fonts":      fonts,
		"logo_url":   r.LogoURL,
		"guidelines": r.Guidelines,
	}
}

type UpdateBrandRequest struct {
	Name       *string                 `json:"name"`
	Colors     *map[string]interface{} `json:"colors"`
	Fonts      *map[string]interface{} `json:"fonts"`
	LogoURL    *string                 `json:"logo_url"`
	Guidelines *string                 `json:"guidelines"`
}

func (r UpdateBrandRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
	)
}

func (r UpdateBrandRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	putString(f, "name", r.Name)
	if r.Colors != nil {
		f["colors"] = *r.Colors
	}
	if r.Fonts != nil {
		f["fonts"] = *r.Fonts
	}
	putString(f, "logo_url", r.LogoURL)
	putString(f, "guidelines", r.Guidelines)
	return f
}

// ========================================
// helpers
// ========================================

func putString(f map[string]interface{}, key string, v *string) {
	if v != nil {
		f[key] = *v
	}
}

func putStrings(f map[string]interface{}, key string, v *[]string) {
	if v != nil {
		f[key] = *v
	}
}
