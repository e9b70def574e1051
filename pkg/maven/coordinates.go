package maven

import (
	stderrors "errors"
	"strings"

	"github.com/matzehuels/mvncoord/pkg/errors"
)

const (
	// DefaultPackaging is assumed when the coordinates carry no packaging token.
	DefaultPackaging = "jar"

	// DefaultSeparator is used by [Coordinates.Path] and [Coordinates.Resolve].
	DefaultSeparator = '/'

	fieldSeparator     = ":"
	filenameSeparator  = "-"
	extensionSeparator = "."
	groupSeparator     = "."
)

// ErrInvalidCoordinates is wrapped by every error returned from [Parse].
var ErrInvalidCoordinates = stderrors.New("invalid maven coordinates")

// Coordinates identifies a single artifact file in a Maven repository.
//
// The zero value has empty group, artifact and version and an empty packaging;
// use [Parse] or [New] to get the "jar" default. Assigning a Coordinates
// produces an independent copy.
type Coordinates struct {
	group        string
	artifact     string
	version      string
	versionLabel *string
	packaging    string
	classifier   *string
}

// Parse reads coordinates in the form
// groupId:artifactId:version[:packaging[:classifier]].
//
// Tokens past the classifier are ignored. Fewer than three tokens is an
// [errors.ErrCodeInvalidInput] error that also matches [ErrInvalidCoordinates].
func Parse(raw string) (Coordinates, error) {
	parts := strings.Split(raw, fieldSeparator)
	if len(parts) < 3 {
		return Coordinates{}, errors.Wrap(errors.ErrCodeInvalidInput, ErrInvalidCoordinates,
			"%q: expected groupId:artifactId:version[:packaging[:classifier]]", raw)
	}

	c := New(parts[0], parts[1], parts[2])
	if len(parts) > 3 {
		c.packaging = parts[3]
	}
	if len(parts) > 4 {
		c.SetClassifier(parts[4])
	}
	return c, nil
}

// MustParse is like [Parse] but panics if raw is invalid.
func MustParse(raw string) Coordinates {
	c, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds coordinates field by field. The version is split into version
// and label the same way [Parse] splits the version token. Packaging is
// [DefaultPackaging] and there is no classifier.
func New(group, artifact, version string) Coordinates {
	v, label, ok := splitVersion(version)
	c := Coordinates{
		group:     group,
		artifact:  artifact,
		version:   v,
		packaging: DefaultPackaging,
	}
	if ok {
		c.SetVersionLabel(label)
	}
	return c
}

// splitVersion cuts version at its last hyphen.
func splitVersion(version string) (v, label string, ok bool) {
	i := strings.LastIndex(version, filenameSeparator)
	if i < 0 {
		return version, "", false
	}
	return version[:i], version[i+1:], true
}

// Group returns the group ID, e.g. "org.apache.commons".
func (c Coordinates) Group() string { return c.group }

// Artifact returns the artifact ID, e.g. "commons-lang3".
func (c Coordinates) Artifact() string { return c.artifact }

// Version returns the version without its label.
func (c Coordinates) Version() string { return c.version }

// VersionLabel returns the version label and whether one is present.
// A present label may be empty.
func (c Coordinates) VersionLabel() (string, bool) { return deref(c.versionLabel) }

// Packaging returns the file extension of the artifact.
func (c Coordinates) Packaging() string { return c.packaging }

// Classifier returns the classifier and whether one is present.
// A present classifier may be empty.
func (c Coordinates) Classifier() (string, bool) { return deref(c.classifier) }

func (c *Coordinates) SetGroup(group string)       { c.group = group }
func (c *Coordinates) SetArtifact(artifact string) { c.artifact = artifact }

// SetVersion replaces the version and leaves the label untouched.
func (c *Coordinates) SetVersion(version string) { c.version = version }

// SetVersionLabel marks a label as present, even when label is empty.
func (c *Coordinates) SetVersionLabel(label string) { c.versionLabel = &label }

// ClearVersionLabel removes the label.
func (c *Coordinates) ClearVersionLabel() { c.versionLabel = nil }

// SetPackaging replaces the packaging. An empty string is kept as is.
func (c *Coordinates) SetPackaging(packaging string) { c.packaging = packaging }

// SetClassifier marks a classifier as present, even when classifier is empty.
func (c *Coordinates) SetClassifier(classifier string) { c.classifier = &classifier }

// ClearClassifier removes the classifier.
func (c *Coordinates) ClearClassifier() { c.classifier = nil }

// FullVersion returns the version joined to its label by a hyphen, if a label
// is present.
func (c Coordinates) FullVersion() string {
	if label, ok := c.VersionLabel(); ok {
		return c.version + filenameSeparator + label
	}
	return c.version
}

// FileBasename returns the artifact file name without extension, e.g.
// "artifact-1.0.0-SNAPSHOT-sources".
func (c Coordinates) FileBasename() string {
	name := c.artifact + filenameSeparator + c.FullVersion()
	if classifier, ok := c.Classifier(); ok {
		name += filenameSeparator + classifier
	}
	return name
}

// FileName returns the artifact file name, e.g. "artifact-1.0.0-SNAPSHOT.jar".
func (c Coordinates) FileName() string {
	return c.FileBasename() + extensionSeparator + c.packaging
}

// Path returns the repository-relative path of the artifact using '/'.
func (c Coordinates) Path() string {
	return c.PathWithSeparator(DefaultSeparator)
}

// PathWithSeparator returns the repository-relative path of the artifact:
// one directory per group segment, then the artifact and full version
// directories, then the file name.
func (c Coordinates) PathWithSeparator(sep rune) string {
	var b strings.Builder
	for _, dir := range strings.Split(c.group, groupSeparator) {
		b.WriteString(dir)
		b.WriteRune(sep)
	}
	b.WriteString(c.artifact)
	b.WriteRune(sep)
	b.WriteString(c.FullVersion())
	b.WriteRune(sep)
	b.WriteString(c.FileName())
	return b.String()
}

// Resolve returns the URL of the artifact under the repository at baseURL.
// baseURL is not validated; a trailing slash is added when missing.
func (c Coordinates) Resolve(baseURL string) string {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + c.Path()
}

// String formats the coordinates as groupId:artifactId:version, followed by
// the packaging when it is not "jar" or a classifier is present, followed by
// the classifier when present.
func (c Coordinates) String() string {
	var b strings.Builder
	b.WriteString(c.group)
	b.WriteString(fieldSeparator)
	b.WriteString(c.artifact)
	b.WriteString(fieldSeparator)
	b.WriteString(c.FullVersion())

	classifier, hasClassifier := c.Classifier()
	if c.packaging != DefaultPackaging || hasClassifier {
		b.WriteString(fieldSeparator)
		b.WriteString(c.packaging)
		if hasClassifier {
			b.WriteString(fieldSeparator)
			b.WriteString(classifier)
		}
	}
	return b.String()
}

// Equal reports whether c and other have identical fields. An absent label
// or classifier is not equal to an empty one.
func (c Coordinates) Equal(other Coordinates) bool {
	return c.group == other.group &&
		c.artifact == other.artifact &&
		c.version == other.version &&
		c.packaging == other.packaging &&
		optionalEqual(c.versionLabel, other.versionLabel) &&
		optionalEqual(c.classifier, other.classifier)
}

// MarshalText implements [encoding.TextMarshaler].
func (c Coordinates) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [Parse].
func (c *Coordinates) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func optionalEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
