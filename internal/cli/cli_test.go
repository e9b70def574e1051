package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mvncoord/pkg/errors"
)

const testConfig = `
default = "internal"

[repositories]
central = "https://repo1.maven.org/maven2"
internal = "https://maven.example.com/releases"

[[pinned]]
coordinates = "io.github.brawaru:artifact:1.0.0-SNAPSHOT"

[[pinned]]
coordinates = "org.apache.commons:commons-lang3:3.14.0:jar:sources"
repository = "central"
`

// execute runs the root command with args and returns stdout and logs.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, logs bytes.Buffer
	c := New(&logs, LogDebug)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), logs.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(testConfig), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPathCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "default separator",
			args: []string{"path", "io.github.brawaru:artifact:1.0.0-SNAPSHOT"},
			want: "io/github/brawaru/artifact/1.0.0-SNAPSHOT/artifact-1.0.0-SNAPSHOT.jar\n",
		},
		{
			name: "backslash",
			args: []string{"path", "io.github.brawaru:artifact:1.0.0-SNAPSHOT", "--separator", `\`},
			want: `io\github\brawaru\artifact\1.0.0-SNAPSHOT\artifact-1.0.0-SNAPSHOT.jar` + "\n",
		},
		{
			name: "classifier",
			args: []string{"path", "io.github.brawaru:artifact:1.0.0-SNAPSHOT:jar:sources"},
			want: "io/github/brawaru/artifact/1.0.0-SNAPSHOT/artifact-1.0.0-SNAPSHOT-sources.jar\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestPathCommandInvalidSeparator(t *testing.T) {
	for _, sep := range []string{"", "//"} {
		_, _, err := execute(t, "path", "g:a:1", "--separator", sep)
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("separator %q: error = %v, want INVALID_INPUT", sep, err)
		}
	}
}

func TestInvalidCoordinates(t *testing.T) {
	for _, cmd := range []string{"path", "resolve", "format", "inspect"} {
		t.Run(cmd, func(t *testing.T) {
			_, _, err := execute(t, cmd, "group:artifact")
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestResolveCommand(t *testing.T) {
	const coords = "io.github.brawaru:artifact:1.0.0-SNAPSHOT"
	const path = "io/github/brawaru/artifact/1.0.0-SNAPSHOT/artifact-1.0.0-SNAPSHOT.jar"
	cfg := writeConfig(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "maven central without config",
			args: []string{"resolve", coords},
			want: "https://repo1.maven.org/maven2/" + path + "\n",
		},
		{
			name: "explicit url",
			args: []string{"resolve", coords, "--url", "https://brawaru.github.io/maven/"},
			want: "https://brawaru.github.io/maven/" + path + "\n",
		},
		{
			name: "config default",
			args: []string{"--config", cfg, "resolve", coords},
			want: "https://maven.example.com/releases/" + path + "\n",
		},
		{
			name: "config repo",
			args: []string{"--config", cfg, "resolve", coords, "--repo", "central"},
			want: "https://repo1.maven.org/maven2/" + path + "\n",
		},
		{
			name: "several",
			args: []string{"resolve", "--url", "https://h/m", "g:a:1", "g:a:1:pom"},
			want: "https://h/m/g/a/1/a-1.jar\nhttps://h/m/g/a/1/a-1.pom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestResolveCommandErrors(t *testing.T) {
	cfg := writeConfig(t)

	_, _, err := execute(t, "--config", cfg, "resolve", "g:a:1", "--repo", "nope")
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("unknown repo error = %v, want NOT_FOUND", err)
	}

	_, _, err = execute(t, "resolve", "g:a:1", "--repo", "central", "--url", "https://h")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("conflicting flags error = %v, want INVALID_INPUT", err)
	}
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"drops default packaging", []string{"com.google.guava:guava:32.1.3-jre:jar"}, "com.google.guava:guava:32.1.3-jre"},
		{"keeps packaging with classifier", []string{"g:a:1:jar:sources"}, "g:a:1:jar:sources"},
		{"set version keeps label", []string{"g:a:1.0-SNAPSHOT", "--version", "1.1"}, "g:a:1.1-SNAPSHOT"},
		{"clear label", []string{"g:a:1.0-SNAPSHOT", "--no-label"}, "g:a:1.0"},
		{"empty label", []string{"g:a:1.0", "--label", ""}, "g:a:1.0-"},
		{"packaging", []string{"g:a:1.0", "--packaging", "pom"}, "g:a:1.0:pom"},
		{"classifier", []string{"g:a:1.0", "--classifier", "javadoc"}, "g:a:1.0:jar:javadoc"},
		{"clear classifier", []string{"g:a:1.0:jar:sources", "--no-classifier"}, "g:a:1.0"},
		{"group and artifact", []string{"g:a:1", "--group", "org.example", "--artifact", "lib"}, "org.example:lib:1"},
		{"file name", []string{"g:a:1.0", "--classifier", "sources", "--file"}, "a-1.0-sources.jar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"format"}, tt.args...)...)
			if err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			if out != tt.want+"\n" {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestFormatCommandConflicts(t *testing.T) {
	for _, args := range [][]string{
		{"format", "g:a:1", "--label", "x", "--no-label"},
		{"format", "g:a:1", "--classifier", "x", "--no-classifier"},
	} {
		_, _, err := execute(t, args...)
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("%v: error = %v, want INVALID_INPUT", args, err)
		}
	}
}

func TestInspectCommand(t *testing.T) {
	out, logs, err := execute(t, "inspect", "io.github.brawaru:artifact:1.0.0-SNAPSHOT:jar:sources")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	for _, want := range []string{
		"io.github.brawaru:artifact:1.0.0-SNAPSHOT:jar:sources",
		"io.github.brawaru",
		`"SNAPSHOT"`,
		`"sources"`,
		"artifact-1.0.0-SNAPSHOT-sources.jar",
		"https://repo1.maven.org/maven2/io/github/brawaru/artifact/1.0.0-SNAPSHOT/artifact-1.0.0-SNAPSHOT-sources.jar",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if !strings.Contains(logs, "parsed coordinates") {
		t.Errorf("debug log missing parse entry:\n%s", logs)
	}
}

func TestInspectCommandAbsentFields(t *testing.T) {
	out, _, err := execute(t, "inspect", "g:a:1")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if strings.Count(out, absent) != 2 {
		t.Errorf("expected label and classifier to be shown as %s:\n%s", absent, out)
	}
}

func TestReposCommand(t *testing.T) {
	out, _, err := execute(t, "--config", writeConfig(t), "repos")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	central := strings.Index(out, "central")
	internal := strings.Index(out, "internal *")
	if central < 0 || internal < 0 || central > internal {
		t.Errorf("unexpected repos output:\n%s", out)
	}
	if !strings.Contains(out, "https://maven.example.com/releases") {
		t.Errorf("repos output missing URL:\n%s", out)
	}
}

func TestPinnedCommand(t *testing.T) {
	cfg := writeConfig(t)

	out, _, err := execute(t, "--config", cfg, "pinned")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	for _, want := range []string{
		"https://maven.example.com/releases/io/github/brawaru/artifact/1.0.0-SNAPSHOT/artifact-1.0.0-SNAPSHOT.jar",
		"https://repo1.maven.org/maven2/org/apache/commons/commons-lang3/3.14.0/commons-lang3-3.14.0-sources.jar",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, _, err = execute(t, "pinned")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "no pinned artifacts") {
		t.Errorf("expected warning without config:\n%s", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`default = "missing"`), 0644); err != nil {
		t.Fatal(err)
	}
	_, _, err := execute(t, "--config", path, "repos")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "mvncoord") {
		t.Error("bash completion should mention mvncoord")
	}
}
