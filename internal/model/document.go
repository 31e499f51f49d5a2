package model

import "time"

// DocumentType identifies the kind of source document uploaded to the platform.
type DocumentType string

const (
	DocTypeSalesRegister    DocumentType = "sales_register"
	DocTypePurchaseRegister DocumentType = "purchase_register"
	DocTypeBankStatement    DocumentType = "bank_statement"
	DocTypeTrialBalance     DocumentType = "trial_balance"
	DocTypeOther            DocumentType = "other"
)

// Valid reports whether t is a document type the platform accepts.
func (t DocumentType) Valid() bool {
	switch t {
	case DocTypeSalesRegister, DocTypePurchaseRegister, DocTypeBankStatement, DocTypeTrialBalance, DocTypeOther:
		return true
	}
	return false
}

// Document is a source document record as the platform reports it. The
// platform owns these; this tool only reads them and, via repair, patches
// the type or name.
type Document struct {
	ID           string       `json:"id"`
	OriginalName string       `json:"originalName"`
	DocumentType DocumentType `json:"documentType"`
	TenantID     string       `json:"tenantId"`
	UploadedAt   time.Time    `json:"uploadedAt"`
}
