package faqdoc

import "strings"

// FormatExtraction renders a stored extraction as a markdown FAQ digest.
// Questions become level-2 headings. Answers captured with markup are run
// through the converter; plain-text answers (and conversion failures) fall
// back to the cleaned answer text.
func FormatExtraction(e *Extraction, conv Converter) string {
	if e == nil || len(e.Items) == 0 {
		return ""
	}

	var sb strings.Builder
	title := e.Title
	if title == "" {
		title = e.SourceURL
	}
	sb.WriteString("# " + title + "\n")

	for _, item := range e.Items {
		sb.WriteString("\n## " + item.Question + "\n\n")

		body := item.Answer
		if item.AnswerHTML != "" && conv != nil {
			if md, err := conv.Convert(item.AnswerHTML); err == nil && strings.TrimSpace(md) != "" {
				body = strings.TrimSpace(md)
			}
		}
		sb.WriteString(body + "\n")
	}

	return sb.String()
}
