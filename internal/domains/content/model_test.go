package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"document":  KindDocument,
		"documents": KindDocument,
		"glossary":  KindGlossary,
		"component": KindComponent,
		"pigpen":    KindOperator,
		"operator":  KindOperator,
		"brands":    KindBrand,
	}
	for input, want := range cases {
		got, ok := ParseKind(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got)
	}

	_, ok := ParseKind("unknown")
	assert.False(t, ok)
}

func TestKind_IDField(t *testing.T) {
	assert.Equal(t, "doc_id", KindDocument.IDField())
	assert.Equal(t, "term_id", KindGlossary.IDField())
	assert.Equal(t, "component_id", KindComponent.IDField())
	assert.Equal(t, "operator_id", KindOperator.IDField())
	assert.Equal(t, "brand_id", KindBrand.IDField())
}

func TestItem_Title(t *testing.T) {
	doc := &Item{Type: KindDocument, ID: "d1", Data: map[string]interface{}{"title": "Runbook"}}
	assert.Equal(t, "Runbook", doc.Title())

	term := &Item{Type: KindGlossary, ID: "t1", Data: map[string]interface{}{"term": "GARVIS"}}
	assert.Equal(t, "GARVIS", term.Title())

	// Thiếu title field -> fallback về ID.
	bare := &Item{Type: KindDocument, ID: "d2", Data: map[string]interface{}{}}
	assert.Equal(t, "d2", bare.Title())
}

func TestItem_IsCanonical(t *testing.T) {
	op := &Item{Type: KindOperator, Data: map[string]interface{}{"is_canonical": true}}
	assert.True(t, op.IsCanonical())

	userOp := &Item{Type: KindOperator, Data: map[string]interface{}{"is_canonical": false}}
	assert.False(t, userOp.IsCanonical())

	// is_canonical chỉ có nghĩa với operators.
	doc := &Item{Type: KindDocument, Data: map[string]interface{}{"is_canonical": true}}
	assert.False(t, doc.IsCanonical())

	missing := &Item{Type: KindOperator, Data: map[string]interface{}{}}
	assert.False(t, missing.IsCanonical())
}

func TestCreateOperatorRequest_Defaults(t *testing.T) {
	req := CreateOperatorRequest{Name: "Custom Op", TAID: "PP-900"}
	assert.NoError(t, req.Validate())

	fields := req.Fields()
	assert.Equal(t, 1, fields["decision_weight"])
	assert.Equal(t, "DRAFT", fields["status"])
	// DTO không có đường nào set is_canonical.
	_, has := fields["is_canonical"]
	assert.False(t, has)
}

func TestCreateOperatorRequest_CarriesAuthorityFields(t *testing.T) {
	req := CreateOperatorRequest{
		Name:         "Will Stats",
		TAID:         "PP-016",
		Capabilities: "MODEL, VERIFY, MARGIN",
		Role:         "P&L Architect",
		Authority:    "Decision Weight: 4",
	}
	fields := req.Fields()
	assert.Equal(t, "MODEL, VERIFY, MARGIN", fields["capabilities"])
	assert.Equal(t, "P&L Architect", fields["role"])
	assert.Equal(t, "Decision Weight: 4", fields["authority"])
}

func TestUpdateOperatorRequest_AuthorityFieldsEditable(t *testing.T) {
	caps := "FILTER, VET"
	role := "Gatekeeper"
	auth := "Decision Weight: 5"
	req := UpdateOperatorRequest{Capabilities: &caps, Role: &role, Authority: &auth}

	fields := req.Fields()
	assert.Equal(t, map[string]interface{}{
		"capabilities": "FILTER, VET",
		"role":         "Gatekeeper",
		"authority":    "Decision Weight: 5",
	}, fields)
}

func TestUpdateDocumentRequest_PartialFields(t *testing.T) {
	title := "New Title"
	req := UpdateDocumentRequest{Title: &title}
	assert.NoError(t, req.Validate())

	fields := req.Fields()
	assert.Equal(t, map[string]interface{}{"title": "New Title"}, fields)
}

func TestUpdateOperatorRequest_NoIdentityFields(t *testing.T) {
	name := "Renamed"
	req := UpdateOperatorRequest{Name: &name}
	fields := req.Fields()

	// tai_d và is_canonical bất biến qua update path.
	_, hasTAID := fields["tai_d"]
	_, hasCanonical := fields["is_canonical"]
	assert.False(t, hasTAID)
	assert.False(t, hasCanonical)
	assert.Equal(t, "Renamed", fields["name"])
}

func TestCreateComponentRequest_Validation(t *testing.T) {
	valid := CreateComponentRequest{Name: "GARVIS", Layer: 2, Status: "active"}
	assert.NoError(t, valid.Validate())

	badStatus := CreateComponentRequest{Name: "GARVIS", Status: "bogus"}
	assert.Error(t, badStatus.Validate())

	missingName := CreateComponentRequest{Layer: 1}
	assert.Error(t, missingName.Validate())
}
