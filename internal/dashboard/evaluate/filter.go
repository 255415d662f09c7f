package evaluate

import "strings"

// Filter is a search term split into groups of tokens. A text matches when it contains every
// token of at least one group. The empty filter matches everything.
type Filter [][]string

// ParseFilter splits text into groups on ',' or '+' and each group into lowercase tokens on whitespace.
func ParseFilter(text string) Filter {
	var f Filter
	groups := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r == ',' || r == '+'
	})
	for _, group := range groups {
		if tokens := strings.Fields(group); len(tokens) > 0 {
			f = append(f, tokens)
		}
	}
	return f
}

func (f Filter) IsEmpty() bool {
	return len(f) == 0
}

func (f Filter) String() string {
	groups := make([]string, len(f))
	for i, tokens := range f {
		groups[i] = strings.Join(tokens, " ")
	}
	return strings.Join(groups, ",")
}

func (f Filter) Matches(text string) bool {
	if f.IsEmpty() {
		return true
	}
	text = strings.ToLower(text)
	for _, tokens := range f {
		if containsAll(text, tokens) {
			return true
		}
	}
	return false
}

func containsAll(text string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(text, token) {
			return false
		}
	}
	return true
}
