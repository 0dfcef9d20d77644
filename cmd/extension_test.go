package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunExtension(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	// The extension records its first argument and the endpoint variable,
	// then exits non-zero so the code propagation is observable.
	script := "#!/bin/sh\nprintf '%s %s' \"$NBU_EXCHANGE_URL\" \"$1\" > " + out + "\nexit 7\n"
	if err := os.WriteFile(filepath.Join(dir, "nbu-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	ran, code := RunExtension("hello", []string{"world"})
	if !ran {
		t.Fatal("extension on PATH was not found")
	}
	if code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if want := *exchangeURL + " world"; string(got) != want {
		t.Errorf("extension saw %q, want %q", got, want)
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	ran, code := RunExtension("no-such-extension", nil)
	if ran || code != 0 {
		t.Errorf("RunExtension = (%v, %d), want (false, 0)", ran, code)
	}
}
