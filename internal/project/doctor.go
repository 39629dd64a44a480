package project

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
)

// Status is the outcome of one check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusMiss Status = "MISS"
	StatusWarn Status = "WARN"
)

// Check is one line of the doctor report.
type Check struct {
	Name   string
	Status Status
	Detail string
}

// Requirement is a package the generated code depends on.
type Requirement struct {
	Package    string
	Constraint string // semver constraint on the lowest version the range allows
	Required   bool   // missing and required → MISS, missing and optional → WARN
	Reason     string
}

// Requirements lists the packages the templates import.
var Requirements = []Requirement{
	{Package: "react-native", Constraint: ">=0.60.0", Required: true, Reason: "target framework"},
	{Package: "react", Constraint: ">=16.8.0", Required: true, Reason: "hooks"},
	{Package: "@react-navigation/native-stack", Constraint: ">=6.0.0", Required: true, Reason: "screen and navigation templates"},
	{Package: "@testing-library/react-native", Constraint: "*", Required: false, Reason: "component and screen tests"},
	{Package: "@testing-library/react-hooks", Constraint: "*", Required: false, Reason: "hook tests"},
}

// Diagnose checks dir/package.json against Requirements. A missing
// package.json is reported as a single MISS check rather than an error.
func Diagnose(fsys afero.Fs, dir string) ([]Check, error) {
	pkg, err := ReadPackageJSON(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Check{{
				Name:   PackageFileName,
				Status: StatusMiss,
				Detail: "not found; run the CLI from the app root",
			}}, nil
		}
		return nil, err
	}

	checks := []Check{{Name: PackageFileName, Status: StatusOK, Detail: pkg.Name}}
	for _, req := range Requirements {
		checks = append(checks, checkRequirement(pkg, req))
	}
	return checks, nil
}

func checkRequirement(pkg *PackageJSON, req Requirement) Check {
	c := Check{Name: req.Package}

	declared, ok := pkg.Dependency(req.Package)
	if !ok {
		c.Status = StatusWarn
		if req.Required {
			c.Status = StatusMiss
		}
		c.Detail = "not installed (needed for " + req.Reason + ")"
		return c
	}

	constraint, err := semver.NewConstraint(req.Constraint)
	if err != nil {
		c.Status = StatusWarn
		c.Detail = fmt.Sprintf("bad constraint %q: %v", req.Constraint, err)
		return c
	}

	v, err := MinVersion(declared)
	if err != nil {
		c.Status = StatusWarn
		c.Detail = fmt.Sprintf("%s: cannot determine version", declared)
		return c
	}
	if !constraint.Check(v) {
		c.Status = StatusWarn
		c.Detail = fmt.Sprintf("%s does not satisfy %s (needed for %s)", declared, req.Constraint, req.Reason)
		return c
	}

	c.Status = StatusOK
	c.Detail = declared
	return c
}

// MinVersion returns the lowest version an npm range such as "^0.72.4",
// "~18.2.0" or ">=6 <7" allows. Tags like "latest" and protocol ranges
// like "workspace:*" are not versions and return an error.
func MinVersion(npmRange string) (*semver.Version, error) {
	r := strings.TrimSpace(npmRange)
	if i := strings.IndexAny(r, " |"); i >= 0 {
		r = r[:i]
	}
	r = strings.TrimLeft(r, "^~>=v")
	return semver.NewVersion(r)
}

// Print writes checks in the "[ OK ] name: detail" format.
func Print(w io.Writer, checks []Check) {
	for _, c := range checks {
		label := fmt.Sprintf("%-4s", string(c.Status))
		if c.Status == StatusOK {
			label = " OK "
		}
		if c.Detail == "" {
			fmt.Fprintf(w, "  [%s] %s\n", label, c.Name)
			continue
		}
		fmt.Fprintf(w, "  [%s] %s: %s\n", label, c.Name, c.Detail)
	}
}

// Healthy reports whether no check is MISS.
func Healthy(checks []Check) bool {
	for _, c := range checks {
		if c.Status == StatusMiss {
			return false
		}
	}
	return true
}
