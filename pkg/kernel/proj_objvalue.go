package kernel

import "strings"

type JobTitle string

type CompanyName string

type Email string

type Phone string

type FirstName string

type LastName string

// LanguageLevel is a self-reported proficiency, e.g. for Korean
type LanguageLevel string

const (
	LanguageLevelBeginner     LanguageLevel = "beginner"
	LanguageLevelElementary   LanguageLevel = "elementary"
	LanguageLevelIntermediate LanguageLevel = "intermediate"
	LanguageLevelAdvanced     LanguageLevel = "advanced"
	LanguageLevelNative       LanguageLevel = "native"
)

// FullName joins first and last name, skipping empty parts
func FullName(first FirstName, last LastName) string {
	return strings.TrimSpace(strings.Join([]string{string(first), string(last)}, " "))
}
