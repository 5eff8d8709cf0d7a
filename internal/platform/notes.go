package platform

import (
	"fmt"
	"strings"
)

// Change note types, following the Conventional Commits vocabulary.
const (
	ChangeTypeFeat     = "feat"
	ChangeTypeFix      = "fix"
	ChangeTypeDocs     = "docs"
	ChangeTypeStyle    = "style"
	ChangeTypeRefactor = "refactor"
	ChangeTypePerf     = "perf"
	ChangeTypeTest     = "test"
	ChangeTypeChore    = "chore"
)

const noteFooter = "Powered-by: Stratum"

// FormatChangeNote renders "<type>(<scope>): <subject>", an optional body
// paragraph, and the Stratum footer. An empty type falls back to chore.
func FormatChangeNote(ctype, scope, subject, body string) string {
	if ctype == "" {
		ctype = ChangeTypeChore
	}

	header := ctype
	if scope != "" {
		header = fmt.Sprintf("%s(%s)", ctype, scope)
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString(": ")
	sb.WriteString(subject)

	if body != "" {
		sb.WriteString("\n\n")
		sb.WriteString(strings.TrimSpace(body))
	}

	sb.WriteString("\n\n")
	sb.WriteString(noteFooter)
	return sb.String()
}

// AppendFooter adds the Stratum footer to a free-form note, separated from
// the last line by a blank line. Notes that already carry the footer pass
// through unchanged.
func AppendFooter(msg string) string {
	if strings.Contains(msg, noteFooter) {
		return msg
	}

	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	if !strings.HasSuffix(msg, "\n\n") {
		msg += "\n"
	}

	return msg + noteFooter
}
