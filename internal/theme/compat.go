package theme

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
	"golang.org/x/net/html"

	"github.com/jorge-barreto/oops/internal/i18n"
)

// MinHostVersion is the oldest host version the theme runs on.
const MinHostVersion = "4.7"

const compatMessage = "Twenty Seventeen Oops! requires at least WordPress version 4.7. You are running version %s. Please upgrade and try again."

// ErrHostTooOld is wrapped by the error CheckCompat returns for an
// unsupported host version.
var ErrHostTooOld = errors.New("host version too old")

// CompatError reports an unsupported host version.
type CompatError struct {
	Version string
	Message string
}

func (e *CompatError) Error() string { return e.Message }

func (e *CompatError) Unwrap() error { return ErrHostTooOld }

// Notice returns the admin notice markup for the error.
func (e *CompatError) Notice() string {
	return fmt.Sprintf(`<div class="error"><p>%s</p></div>`, html.EscapeString(e.Message))
}

// CheckCompat reports whether hostVersion can run the theme. It returns a
// *CompatError for versions older than MinHostVersion and a plain error
// for versions that cannot be parsed.
func CheckCompat(hostVersion string, tr *i18n.Translator) error {
	v, ok := canonicalVersion(hostVersion)
	if !ok {
		return fmt.Errorf("invalid host version %q", hostVersion)
	}
	floor, _ := canonicalVersion(MinHostVersion)
	if semver.Compare(v, floor) >= 0 {
		return nil
	}
	return &CompatError{
		Version: hostVersion,
		Message: tr.T(compatMessage, hostVersion),
	}
}

// canonicalVersion turns a host version such as "4.6.1" or "4.7-RC1"
// into a semantic version.
func canonicalVersion(s string) (string, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return "", false
	}
	core, pre, _ := strings.Cut(s, "-")
	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		return "", false
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	v := "v" + strings.Join(parts, ".")
	if pre != "" {
		v += "-" + pre
	}
	if !semver.IsValid(v) {
		return "", false
	}
	return v, true
}
