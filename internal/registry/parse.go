// Package registry parses textual indicator specifications such as
// "RSI(14)" or "MACD(12,26,9)" and dispatches them to the indicator
// library, built at startup from a static kind table — no reflection,
// no plugin loading.
package registry

import (
	"strconv"
	"strings"

	"stoxcore/internal/coreerrors"
	"stoxcore/internal/model"
)

// ParseSpec parses a textual indicator name of the form "Kind" or
// "Kind(arg1, arg2, ...)" into a kind plus positional arguments.
// Arguments are comma-separated decimals or bracketed integer lists.
func ParseSpec(text string) (model.IndicatorKind, []model.ParamValue, error) {
	text = strings.TrimSpace(text)
	open := strings.IndexByte(text, '(')
	if open == -1 {
		kind := model.IndicatorKind(text)
		if text == "" {
			return "", nil, coreerrors.NewIndicatorParseError("empty indicator name")
		}
		return kind, nil, nil
	}
	if !strings.HasSuffix(text, ")") {
		return "", nil, coreerrors.NewIndicatorParseError("unbalanced parentheses in " + text)
	}
	kind := model.IndicatorKind(strings.TrimSpace(text[:open]))
	if kind == "" {
		return "", nil, coreerrors.NewIndicatorParseError("missing indicator kind before '(' in " + text)
	}
	argsText := text[open+1 : len(text)-1]
	args, err := splitArgs(argsText)
	if err != nil {
		return "", nil, err
	}
	values := make([]model.ParamValue, 0, len(args))
	for _, a := range args {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if strings.HasPrefix(a, "[") {
			if !strings.HasSuffix(a, "]") {
				return "", nil, coreerrors.NewIndicatorParseError("unbalanced brackets in " + a)
			}
			list, err := parseIntList(a[1 : len(a)-1])
			if err != nil {
				return "", nil, err
			}
			values = append(values, model.ParamValue{IsList: true, List: list})
			continue
		}
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return "", nil, coreerrors.NewIndicatorParseError("non-numeric argument: " + a)
		}
		values = append(values, model.ParamValue{Scalar: f})
	}
	return kind, values, nil
}

// splitArgs splits a comma-separated argument list at top-level commas,
// treating bracketed sub-lists (GMMA's period bundles) as atomic.
func splitArgs(s string) ([]string, error) {
	var out []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, coreerrors.NewIndicatorParseError("unbalanced brackets in " + s)
			}
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, coreerrors.NewIndicatorParseError("unbalanced brackets in " + s)
	}
	if start <= len(s) {
		rest := s[start:]
		if strings.TrimSpace(rest) != "" || len(out) > 0 {
			out = append(out, rest)
		}
	}
	return out, nil
}

func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, coreerrors.NewIndicatorParseError("non-integer list element: " + p)
		}
		out = append(out, n)
	}
	return out, nil
}

// CanonicalName reproduces the exact string that would re-parse to this
// spec. Every argument is written out, defaults included, so "RSI" binds
// to "RSI(14)". Kinds/args must already be fully bound (see Bind).
func CanonicalName(kind model.IndicatorKind, args []model.ParamValue) string {
	if len(args) == 0 {
		return string(kind)
	}
	parts := make([]string, len(args))
	for i, a := range args {
		if a.IsList {
			nums := make([]string, len(a.List))
			for j, n := range a.List {
				nums[j] = strconv.Itoa(n)
			}
			parts[i] = "[" + strings.Join(nums, ",") + "]"
		} else {
			parts[i] = strconv.FormatFloat(a.Scalar, 'g', -1, 64)
		}
	}
	return string(kind) + "(" + strings.Join(parts, ",") + ")"
}
