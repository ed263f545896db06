package enums

import "fmt"

// DocumentType classifies files attached to a load.
type DocumentType string

const (
	DocumentTypeRateConfirmation DocumentType = "rate_confirmation"
	DocumentTypeBillOfLading     DocumentType = "bill_of_lading"
	DocumentTypeProofOfDelivery  DocumentType = "proof_of_delivery"
	DocumentTypeLumperReceipt    DocumentType = "lumper_receipt"
	DocumentTypeOther            DocumentType = "other"
)

var validDocumentTypes = []DocumentType{
	DocumentTypeRateConfirmation,
	DocumentTypeBillOfLading,
	DocumentTypeProofOfDelivery,
	DocumentTypeLumperReceipt,
	DocumentTypeOther,
}

func (d DocumentType) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DocumentType.
func (d DocumentType) IsValid() bool {
	for _, candidate := range validDocumentTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDocumentType converts raw input into a DocumentType.
func ParseDocumentType(value string) (DocumentType, error) {
	for _, candidate := range validDocumentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid document type %q", value)
}
