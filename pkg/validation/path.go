package validation

import (
	"strconv"
	"strings"
)

type pathKind uint8

const (
	pathLocal pathKind = iota
	pathChild
	pathElement
)

// messagePath is a parsed Message path.
//
//	@<i>.<rest>       field rest of single child connection i
//	#<i>[<j>].<rest>  field rest of element j of collection connection i
//
// Anything else names a local field.
type messagePath struct {
	kind  pathKind
	conn  int
	elem  int
	field string
}

func parsePath(path string) messagePath {
	local := messagePath{kind: pathLocal, field: path}

	switch {
	case strings.HasPrefix(path, "@"):
		idx, rest, ok := strings.Cut(path[1:], ".")
		i, valid := parseIndex(idx)
		if !ok || !valid {
			return local
		}
		return messagePath{kind: pathChild, conn: i, field: rest}

	case strings.HasPrefix(path, "#"):
		head, rest, ok := strings.Cut(path[1:], ".")
		if !ok {
			return local
		}
		idx, tail, ok := strings.Cut(head, "[")
		if !ok || !strings.HasSuffix(tail, "]") {
			return local
		}
		i, validI := parseIndex(idx)
		j, validJ := parseIndex(strings.TrimSuffix(tail, "]"))
		if !validI || !validJ {
			return local
		}
		return messagePath{kind: pathElement, conn: i, elem: j, field: rest}
	}

	return local
}

// parseIndex accepts unsigned decimal digits only.
func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func childPrefix(i int) string {
	return "@" + strconv.Itoa(i) + "."
}

func elementPrefix(i, j int) string {
	return "#" + strconv.Itoa(i) + "[" + strconv.Itoa(j) + "]."
}
