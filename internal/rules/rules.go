// Package rules implements the regex rename rule engine: an ordered list
// of (pattern, replacement) pairs applied to dataset names. Rules are
// evaluated in list order; the first rule whose pattern matches wins and
// later rules are not consulted. A name no rule matches is returned
// unchanged.
package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is a single substitution rule as it appears in the configuration
// file. Replacement templates use \1-style back-references to capture
// groups of the pattern.
type Rule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// compiledRule pairs a compiled pattern with its translated replacement.
type compiledRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Set is an ordered, compiled rule list. Apply is pure and never fails;
// all pattern errors are surfaced by [Compile].
type Set struct {
	rules []compiledRule
}

// Compile validates and compiles an ordered rule list. An invalid pattern
// fails immediately with an error naming the offending rule, so malformed
// configuration is rejected before any dataset is touched.
func Compile(list []Rule) (*Set, error) {
	s := &Set{rules: make([]compiledRule, 0, len(list))}
	for i, r := range list {
		if r.From == "" {
			return nil, fmt.Errorf("rules_regexp[%d]: 'from' pattern must not be empty", i)
		}
		re, err := regexp.Compile(r.From)
		if err != nil {
			return nil, fmt.Errorf("rules_regexp[%d]: invalid pattern %q: %w", i, r.From, err)
		}
		s.rules = append(s.rules, compiledRule{
			pattern:     re,
			replacement: translateReplacement(r.To),
		})
	}
	return s, nil
}

// Len returns the number of compiled rules.
func (s *Set) Len() int { return len(s.rules) }

// Apply transforms name using the first matching rule and reports whether
// any rule matched. Within the matched rule every occurrence of the
// pattern is substituted; patterns anchor themselves via their own ^/$.
func (s *Set) Apply(name string) (string, bool) {
	for _, r := range s.rules {
		if !r.pattern.MatchString(name) {
			continue
		}
		return r.pattern.ReplaceAllString(name, r.replacement), true
	}
	return name, false
}

// translateReplacement converts a \1-style replacement template into the
// ${1} syntax regexp.ReplaceAllString expects. Literal $ is escaped so it
// cannot be misread as a group reference, \\ collapses to a literal
// backslash, and any other escape is kept as-is.
func translateReplacement(to string) string {
	var b strings.Builder
	for i := 0; i < len(to); i++ {
		c := to[i]
		switch {
		case c == '$':
			b.WriteString("$$")
		case c == '\\' && i+1 < len(to) && to[i+1] == '\\':
			b.WriteByte('\\')
			i++
		case c == '\\' && i+1 < len(to) && isDigit(to[i+1]):
			j := i + 1
			for j < len(to) && isDigit(to[j]) {
				j++
			}
			b.WriteString("${")
			b.WriteString(to[i+1 : j])
			b.WriteString("}")
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
