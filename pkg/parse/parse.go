// Package parse turns the console output of nmcli, iwconfig,
// networksetup and airport into structured values. Nothing in
// here returns an error: unexpected text yields empty results.
package parse

import (
	"strings"
)

// Lines splits a response into lines without trailing "\r".
// An empty response has no lines.
func Lines(response string) []string {
	if response == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(response, "\r\n", "\n"), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FirstLine returns the first line of response, or "".
func FirstLine(response string) string {
	lines := Lines(response)
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

// FirstField returns the first whitespace separated token of line.
func FirstField(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

// HasLinePrefix reports whether any line of response begins with prefix.
func HasLinePrefix(response string, prefix string) bool {
	for _, line := range Lines(response) {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// FirstFieldsContaining collects the first field of every line
// that contains word, keeping the order of the response.
func FirstFieldsContaining(response string, word string) []string {
	out := []string{}
	for _, line := range Lines(response) {
		if !strings.Contains(line, word) {
			continue
		}
		if f, ok := FirstField(line); ok {
			out = append(out, f)
		}
	}
	return out
}

// QuotedAfter extracts the double quoted value directly following
// token, ie. QuotedAfter(`ESSID:"home"`, "ESSID:") is "home".
func QuotedAfter(line string, token string) (string, bool) {
	start := strings.Index(line, token+`"`)
	if start < 0 {
		return "", false
	}
	rest := line[start+len(token)+1:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// ValueAfter returns what follows label on the first line holding
// it, trimmed of whitespace and surrounding quotes.
func ValueAfter(response string, label string) (string, bool) {
	for _, line := range Lines(response) {
		idx := strings.Index(line, label)
		if idx < 0 {
			continue
		}
		v := strings.TrimSpace(line[idx+len(label):])
		v = strings.Trim(v, `"'`)
		return v, true
	}
	return "", false
}
