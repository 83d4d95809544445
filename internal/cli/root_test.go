package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"runtime"
	"testing"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"serve", "add", "list", "remove", "movie", "config", "version"} {
		if !bytes.Contains([]byte(out), []byte(name)) {
			t.Errorf("expected %q in help output", name)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("expected --format flag to exist")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("expected --format default 'text', got %q", formatFlag.DefValue)
	}
}

func TestServeFlags(t *testing.T) {
	root := NewRootCmd()
	serve, _, err := root.Find([]string{"serve"})
	if err != nil {
		t.Fatalf("find serve: %v", err)
	}

	port := serve.Flags().Lookup("port")
	if port == nil || port.DefValue != "8080" {
		t.Errorf("expected --port default 8080, got %v", port)
	}
	for _, name := range []string{"movie-url", "dev"} {
		if serve.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag", name)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := executeCommand("version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	want := fmt.Sprintf("mn %s (%s)\n", buildVersion(), runtime.Version())
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestVersionJSON(t *testing.T) {
	out, err := executeCommand("--format", "json", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var v versionInfo
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if v.Version != buildVersion() || v.Go != runtime.Version() {
		t.Errorf("version = %+v", v)
	}
}

func TestBuildVersionPrefersLdflags(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.2.3"
	if got := buildVersion(); got != "v1.2.3" {
		t.Errorf("buildVersion() = %q, want v1.2.3", got)
	}
}
