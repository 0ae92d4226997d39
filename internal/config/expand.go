package config

import (
	"os"
	"strings"
)

// EnvPrefix marks the environment variables a config may reference.
const EnvPrefix = "OOPS_"

// ExpandVars substitutes $VAR and ${VAR} in s from vars. OOPS_ variables
// fall back to the environment. Any other reference, a lone "$" and an
// unterminated "${" are kept exactly as written, so a literal "$" in a
// URL survives.
func ExpandVars(s string, vars map[string]string) string {
	if !strings.Contains(s, "$") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '$' {
			b.WriteByte(s[i])
			i++
			continue
		}
		name, n := varRef(s[i+1:])
		if n == 0 {
			b.WriteByte('$')
			i++
			continue
		}
		if v, ok := lookupVar(name, vars); ok {
			b.WriteString(v)
		} else {
			b.WriteString(s[i : i+1+n])
		}
		i += 1 + n
	}
	return b.String()
}

// varRef reads the reference following a "$". It returns the variable
// name and the number of bytes the reference spans, or 0 when s does
// not start with a valid reference.
func varRef(s string) (string, int) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 0 || nameLen(s[1:end]) != end-1 || end == 1 {
			return "", 0
		}
		return s[1:end], end + 1
	}
	n := nameLen(s)
	return s[:n], n
}

// nameLen returns the length of the variable name at the start of s.
func nameLen(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || i > 0 && c >= '0' && c <= '9' {
			continue
		}
		return i
	}
	return len(s)
}

func lookupVar(name string, vars map[string]string) (string, bool) {
	if v, ok := vars[name]; ok {
		return v, true
	}
	if strings.HasPrefix(name, EnvPrefix) {
		return os.Getenv(name), true
	}
	return "", false
}

// ExpandConfigVars resolves vars in declaration order on top of the
// built-ins. A var sees the built-ins and every var declared before it.
func ExpandConfigVars(vars OrderedVars, builtins map[string]string) map[string]string {
	scope := make(map[string]string, len(builtins)+len(vars))
	for k, v := range builtins {
		scope[k] = v
	}
	out := make(map[string]string, len(vars))
	for _, v := range vars {
		val := ExpandVars(v.Value, scope)
		scope[v.Key] = val
		out[v.Key] = val
	}
	return out
}
