package migrate

import (
	"fmt"
	"strings"
)

// IssueType classifies a repair performed by the migration engine
type IssueType string

const (
	IssueInvalidID       IssueType = "invalid_id"
	IssueInvalidCategory IssueType = "invalid_category"
	IssueMissingField    IssueType = "missing_field"
	IssueExtraField      IssueType = "extra_field"
	IssueInvalidValue    IssueType = "invalid_value"
)

// Issue records one repaired problem. The engine accumulates issues instead
// of failing; every malformed input degrades to a defaulted valid record plus
// one or more issues.
type Issue struct {
	Type          IssueType   `json:"type"`
	ProductName   string      `json:"productName,omitempty"`
	OriginalID    string      `json:"originalId,omitempty"`
	NewID         string      `json:"newId,omitempty"`
	Field         string      `json:"field,omitempty"`
	OriginalValue interface{} `json:"originalValue,omitempty"`
	NewValue      interface{} `json:"newValue,omitempty"`
	Message       string      `json:"message"`
}

var issueTypeNames = map[IssueType]string{
	IssueInvalidID:       "Некорректные ID",
	IssueInvalidCategory: "Неверные категории",
	IssueMissingField:    "Отсутствующие поля",
	IssueExtraField:      "Лишние поля",
	IssueInvalidValue:    "Некорректные значения",
}

// issueTypeOrder fixes the report section order
var issueTypeOrder = []IssueType{
	IssueInvalidID,
	IssueInvalidCategory,
	IssueMissingField,
	IssueExtraField,
	IssueInvalidValue,
}

// FormatReport renders the human-readable migration report shown to the user
// after a load that repaired data
func FormatReport(issues []Issue) string {
	if len(issues) == 0 {
		return "Данные корректны, изменений не требуется."
	}

	var report strings.Builder
	fmt.Fprintf(&report, "Обнаружено и исправлено проблем: %d", len(issues))

	grouped := make(map[IssueType][]Issue)
	for _, issue := range issues {
		grouped[issue.Type] = append(grouped[issue.Type], issue)
	}

	for _, issueType := range issueTypeOrder {
		typeIssues := grouped[issueType]
		if len(typeIssues) == 0 {
			continue
		}
		fmt.Fprintf(&report, "\n\n%s:", issueTypeNames[issueType])
		for i, issue := range typeIssues {
			fmt.Fprintf(&report, "\n  %d. %s", i+1, issue.Message)
		}
	}

	return report.String()
}
