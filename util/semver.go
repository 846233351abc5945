package util

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Canonical returns v in the "vMAJOR.MINOR.PATCH" form, accepting versions
// written with or without the leading "v".
func Canonical(v string) (string, error) {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid version: %s", strings.TrimPrefix(v, "v"))
	}
	return semver.Canonical(v), nil
}

// Satisfies reports whether version matches cmp. cmp is a version optionally
// prefixed by one of ^ ~ >= <= > < =. A caret keeps the major version fixed
// (the minor version too while major is 0) and a tilde keeps major.minor
// fixed. A bare version must match exactly.
func Satisfies(version, cmp string) (bool, error) {
	v, err := Canonical(version)
	if err != nil {
		return false, err
	}

	cmp = strings.TrimSpace(cmp)
	op := ""
	for _, prefix := range []string{">=", "<=", "^", "~", ">", "<", "="} {
		if strings.HasPrefix(cmp, prefix) {
			op = prefix
			cmp = strings.TrimSpace(cmp[len(prefix):])
			break
		}
	}

	c, err := Canonical(cmp)
	if err != nil {
		return false, err
	}

	order := semver.Compare(v, c)
	switch op {
	case "^":
		if semver.Major(c) == "v0" {
			return order >= 0 && semver.MajorMinor(v) == semver.MajorMinor(c), nil
		}
		return order >= 0 && semver.Major(v) == semver.Major(c), nil
	case "~":
		return order >= 0 && semver.MajorMinor(v) == semver.MajorMinor(c), nil
	case ">=":
		return order >= 0, nil
	case "<=":
		return order <= 0, nil
	case ">":
		return order > 0, nil
	case "<":
		return order < 0, nil
	}
	return order == 0, nil
}
