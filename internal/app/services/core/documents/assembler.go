package documents

import (
	"strings"

	"github.com/goccy/go-json"

	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/fhir_dto"
	"arogya-service/internal/pkg/utils"
)

// assembleBundle seals the built records into a document bundle. Entry order
// is the caller's: the document root must already be first. The bundle's own
// id and its business identifier are generated independently of every
// entry-level id.
func assembleBundle(builtAt string, entries []fhir_dto.BundleEntry) fhir_dto.Bundle {
	return fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		ID:           utils.NewResourceID(),
		Identifier: &fhir_dto.Identifier{
			System: constvars.SystemBundleIdentifier,
			Value:  utils.NewResourceID(),
		},
		Type:      constvars.BundleTypeDocument,
		Timestamp: builtAt,
		Entry:     entries,
	}
}

// verifyBundle re-checks the sealed bundle from its serialized form: every
// bundle-local reference must resolve to an entry fullUrl, fullUrls must be
// unique, and the first entry must be the document root. Verification works
// on the marshaled bytes so it sees exactly what a receiver would see.
func verifyBundle(bundle fhir_dto.Bundle) error {
	if len(bundle.Entry) == 0 || resourceTypeOf(bundle.Entry[0].Resource) != constvars.ResourceComposition {
		return exceptions.ErrRootNotFirst()
	}

	fullURLs := make(map[string]struct{}, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		if _, dup := fullURLs[entry.FullURL]; dup {
			return exceptions.ErrDuplicateEntryID(entry.FullURL)
		}
		fullURLs[entry.FullURL] = struct{}{}
	}

	raw, err := json.Marshal(bundle)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	for _, ref := range collectLocalReferences(decoded) {
		if _, ok := fullURLs[ref]; !ok {
			return exceptions.ErrDanglingReference(ref)
		}
	}
	return nil
}

// collectLocalReferences walks the decoded document collecting every
// "reference" value plus every bundle-local attachment "url".
func collectLocalReferences(node interface{}) []string {
	var refs []string
	switch v := node.(type) {
	case map[string]interface{}:
		for key, child := range v {
			if s, ok := child.(string); ok {
				switch {
				case key == "reference":
					refs = append(refs, s)
				case key == "url" && strings.HasPrefix(s, constvars.LocalReferencePrefix):
					refs = append(refs, s)
				}
				continue
			}
			refs = append(refs, collectLocalReferences(child)...)
		}
	case []interface{}:
		for _, child := range v {
			refs = append(refs, collectLocalReferences(child)...)
		}
	}
	return refs
}

func resourceTypeOf(resource interface{}) string {
	switch r := resource.(type) {
	case fhir_dto.Composition:
		return r.ResourceType
	case *fhir_dto.Composition:
		return r.ResourceType
	default:
		raw, err := json.Marshal(resource)
		if err != nil {
			return ""
		}
		var envelope struct {
			ResourceType string `json:"resourceType"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return ""
		}
		return envelope.ResourceType
	}
}
