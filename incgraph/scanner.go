package incgraph

import (
	"strings"
)

const includeToken = "#include"

// Directive is one include statement extracted from a file body.
type Directive struct {
	// Line is the 1-indexed line the directive appeared on.
	Line int
	// Spec is the include text with its delimiters stripped.
	Spec string
	// System is true unless the token was quote-delimited on both ends.
	System bool
}

// ScanIncludes extracts include directives from a file body, line by line.
// No preprocessing happens here: any line whose first whitespace-delimited
// token is the literal directive counts, and the second token is taken as the
// include spec. Lines carrying the directive but no spec are reported in
// malformed (by line number) and skipped.
func ScanIncludes(content []byte) (directives []Directive, malformed []int) {
	for i, line := range strings.Split(string(content), "\n") {
		lineNo := i + 1

		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != includeToken {
			continue
		}
		if len(fields) < 2 {
			malformed = append(malformed, lineNo)
			continue
		}

		token := fields[1]
		directives = append(directives, Directive{
			Line:   lineNo,
			Spec:   strings.Trim(token, `"<>`),
			System: !isQuoted(token),
		})
	}

	return directives, malformed
}

// isQuoted reports whether both ends of the token are the quote character.
func isQuoted(token string) bool {
	if len(token) < 2 {
		return false
	}
	return token[0] == '"' && token[len(token)-1] == '"'
}
