package ofx

import "strings"

// ExtractTag returns the value of the first <TAG> in content. The value runs
// until the next '<' (or end of input) and is trimmed. SGML statements leave
// element tags unclosed, XML statements close them, both read the same.
func ExtractTag(content, tag string) (string, bool) {
	open := "<" + tag + ">"

	idx := strings.Index(content, open)
	if idx < 0 {
		return "", false
	}

	value := content[idx+len(open):]
	if end := strings.IndexByte(value, '<'); end >= 0 {
		value = value[:end]
	}

	return strings.TrimSpace(value), true
}

// tagValue is ExtractTag for callers that treat an empty value as absent.
func tagValue(content, tag string) string {
	v, _ := ExtractTag(content, tag)
	return v
}
