package engine

import (
	"strconv"
	"strings"
)

// atoiPrefix parses the leading decimal digits of s, with an optional sign,
// ignoring whatever follows. Returns 0 when there are none.
func atoiPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return n
}

// ResolveLink parses an internal link URI of the form
// #<page>[,<x>,<y>[,<zoom>]] and returns the 0-based page number, -1 when
// uri is empty or does not start with '#'. The page number in the literal
// is 1-based. x, y and zoom are written through the pointers only when the
// corresponding component is present and numeric.
func ResolveLink(uri string, x, y, zoom *float64) int {
	if uri == "" || uri[0] != '#' {
		return -1
	}
	rest := uri[1:]
	pageNo := atoiPrefix(rest) - 1

	parts := strings.Split(rest, ",")
	if len(parts) >= 3 {
		if v, err := strconv.ParseFloat(parts[1], 64); err == nil && x != nil {
			*x = v
		}
		if v, err := strconv.ParseFloat(parts[2], 64); err == nil && y != nil {
			*y = v
		}
	}
	if len(parts) >= 4 {
		if v, err := strconv.ParseFloat(parts[3], 64); err == nil && zoom != nil {
			*zoom = v
		}
	}
	return pageNo
}

// CleanupFileURL turns a file:// URL into a plain path: the scheme prefix
// goes, as does the extra slash in front of a Windows drive letter, and the
// fragment suffix is cut off.
func CleanupFileURL(url string) string {
	if strings.HasPrefix(url, "file://") {
		url = url[len("file://"):]
		if len(url) >= 3 && url[0] == '/' && url[2] == ':' {
			url = url[1:]
		}
	}
	if i := strings.IndexByte(url, '#'); i >= 0 {
		url = url[:i]
	}
	return url
}
