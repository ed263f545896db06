package documents

import (
	"fmt"
	"mime"
	"sort"
	"strings"

	"github.com/freightdesk/backoffice/pkg/enums"
)

type mimeGroup string

const (
	mimeGroupImages mimeGroup = "images"
	mimeGroupPDFs   mimeGroup = "pdfs"
)

var mimeGroupNames = map[mimeGroup]string{
	mimeGroupImages: "images",
	mimeGroupPDFs:   "PDFs",
}

var mimeGroupTypes = map[mimeGroup][]string{
	mimeGroupImages: {"image/png", "image/jpeg", "image/heic", "image/tiff"},
	mimeGroupPDFs:   {"application/pdf"},
}

// Rate confirmations are PDF only.
var allowedMimeGroupsByType = map[enums.DocumentType][]mimeGroup{
	enums.DocumentTypeRateConfirmation: {mimeGroupPDFs},
	enums.DocumentTypeBillOfLading:     {mimeGroupPDFs, mimeGroupImages},
	enums.DocumentTypeProofOfDelivery:  {mimeGroupPDFs, mimeGroupImages},
	enums.DocumentTypeLumperReceipt:    {mimeGroupPDFs, mimeGroupImages},
	enums.DocumentTypeOther:            {mimeGroupPDFs, mimeGroupImages},
}

var (
	mimeTypesByDocumentType = buildMimeTypes()
	mimeDescriptionsByType  = buildMimeDescriptions()
)

func buildMimeTypes() map[enums.DocumentType]map[string]struct{} {
	result := make(map[enums.DocumentType]map[string]struct{}, len(allowedMimeGroupsByType))
	for docType, groups := range allowedMimeGroupsByType {
		set := make(map[string]struct{})
		for _, group := range groups {
			for _, value := range mimeGroupTypes[group] {
				set[value] = struct{}{}
			}
		}
		result[docType] = set
	}
	return result
}

func buildMimeDescriptions() map[enums.DocumentType]string {
	result := make(map[enums.DocumentType]string, len(allowedMimeGroupsByType))
	for docType, groups := range allowedMimeGroupsByType {
		var descriptions []string
		for _, group := range groups {
			if name, ok := mimeGroupNames[group]; ok {
				descriptions = append(descriptions, name)
			}
		}
		sort.Strings(descriptions)
		result[docType] = humanReadableList(descriptions)
	}
	return result
}

func humanReadableList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return fmt.Sprintf("%s or %s", items[0], items[1])
	default:
		return fmt.Sprintf("%s, or %s", strings.Join(items[:len(items)-1], ", "), items[len(items)-1])
	}
}

// normalizeContentType strips parameters and lower-cases the media type.
func normalizeContentType(value string) (string, error) {
	clean := strings.TrimSpace(value)
	if clean == "" {
		return "", fmt.Errorf("content type required")
	}
	mediaType, _, err := mime.ParseMediaType(clean)
	if err != nil {
		return "", fmt.Errorf("content type invalid: %w", err)
	}
	return strings.ToLower(mediaType), nil
}

func contentTypeAllowed(docType enums.DocumentType, contentType string) bool {
	_, ok := mimeTypesByDocumentType[docType][contentType]
	return ok
}

func allowedMimeDescription(docType enums.DocumentType) string {
	if msg, ok := mimeDescriptionsByType[docType]; ok && msg != "" {
		return msg
	}
	return "the approved file types"
}
