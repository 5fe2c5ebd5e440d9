package utils

import (
	"fmt"
	"strings"

	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/fhir_dto"
)

// BuildNarrative wraps a title and inner markup into the generated,
// language-qualified summary block attached to each record.
func BuildNarrative(title, inner string) *fhir_dto.Narrative {
	var b strings.Builder
	fmt.Fprintf(&b, `<div xmlns="http://www.w3.org/1999/xhtml" xml:lang="%s" lang="%s">`,
		constvars.NarrativeLanguage, constvars.NarrativeLanguage)
	if title != "" {
		fmt.Fprintf(&b, "<p><b>%s</b></p>", EscapeNarrativeText(title))
	}
	b.WriteString(inner)
	b.WriteString("</div>")

	return &fhir_dto.Narrative{
		Status: constvars.NarrativeStatusGenerated,
		Div:    b.String(),
	}
}

func EscapeNarrativeText(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return replacer.Replace(s)
}

func SnomedConcept(code, display string) *fhir_dto.CodeableConcept {
	return &fhir_dto.CodeableConcept{
		Coding: []fhir_dto.Coding{{
			System:  constvars.SystemSnomedCT,
			Code:    code,
			Display: display,
		}},
		Text: display,
	}
}

func IdentifierTypeConcept(code string) *fhir_dto.CodeableConcept {
	return &fhir_dto.CodeableConcept{
		Coding: []fhir_dto.Coding{{
			System: constvars.SystemIdentifierType,
			Code:   code,
		}},
	}
}
