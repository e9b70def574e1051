// Package maven models Maven artifact coordinates.
//
// # Overview
//
// A coordinate string has the form
//
//	groupId:artifactId:version[:packaging[:classifier]]
//
// [Parse] splits it into a [Coordinates] value, from which file names,
// repository-relative paths and repository URLs are derived on demand:
//
//	c, err := maven.Parse("io.github.brawaru:artifact:1.0.0-SNAPSHOT:jar:sources")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c.FileName()                            // artifact-1.0.0-SNAPSHOT-sources.jar
//	c.Path()                                // io/github/brawaru/artifact/1.0.0-SNAPSHOT/artifact-1.0.0-SNAPSHOT-sources.jar
//	c.Resolve("https://repo1.maven.org/maven2")
//
// # Version Labels
//
// The version token is split at its last hyphen. "1.0.0-SNAPSHOT" becomes
// version "1.0.0" with label "SNAPSHOT"; [Coordinates.FullVersion] joins them
// back together. A version without a hyphen has no label.
//
// # Absent vs Empty
//
// Label and classifier distinguish "absent" from "present but empty". Their
// accessors return a second boolean reporting presence, so "1.0-" yields
// label "" (present) while "1.0" yields no label at all. Packaging defaults to
// "jar" only when its token is missing; an empty packaging token stays empty.
//
// # Formatting
//
// [Coordinates.String] emits packaging only when it differs from "jar" or a
// classifier follows it. An explicit ":jar" without classifier is therefore
// dropped when re-serialized; parsing the result yields the same coordinates.
//
// # Mutation
//
// Setters replace fields in place without validation. Derived strings are
// computed from the current fields on every call, so changes are visible
// immediately.
//
// Nothing in this package performs I/O. A [Coordinates] value is not safe for
// concurrent mutation.
package maven
