package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ColumnLabel: "agent_first_name" -> "Agent First Name".
func ColumnLabel(column string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(column, "_", " "))
}
