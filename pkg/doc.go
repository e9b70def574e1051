// Package pkg holds the public libraries of mvncoord.
//
// # Overview
//
//  1. [maven] - The Coordinates value type: parsing, derived file names and
//     paths, formatting and URL resolution
//  2. [config] - TOML configuration of named repositories and pinned artifacts
//  3. [errors] - Structured error codes shared by all packages
//  4. [buildinfo] - Version information injected at build time
//
// # Quick Start
//
//	import "github.com/matzehuels/mvncoord/pkg/maven"
//
//	c, err := maven.Parse("org.apache.commons:commons-lang3:3.14.0:jar:sources")
//	if err != nil {
//	    return err
//	}
//	url := c.Resolve("https://repo1.maven.org/maven2")
//
// Only [config] touches the file system; [maven] is pure string manipulation.
//
// [maven]: github.com/matzehuels/mvncoord/pkg/maven
// [config]: github.com/matzehuels/mvncoord/pkg/config
// [errors]: github.com/matzehuels/mvncoord/pkg/errors
// [buildinfo]: github.com/matzehuels/mvncoord/pkg/buildinfo
package pkg
