package main

import (
	"fmt"
	"runtime/debug"
)

type versionCmd struct{ r *root }

// buildVersion prefers the linker-set version and falls back to the module
// version recorded by go install.
func buildVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

func (v *versionCmd) Run() error {
	name := "paintbucket"
	if v.r != nil && v.r.program != "" {
		name = v.r.program
	}
	fmt.Fprintf(stdout, "%s version %s\n", name, buildVersion())
	if commit != "" {
		fmt.Fprintf(stdout, "commit %s\n", commit)
	}
	if date != "" {
		fmt.Fprintf(stdout, "built %s\n", date)
	}
	return nil
}
