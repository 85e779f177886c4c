package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/sim/internal/config"
)

// TestFunctional runs every testdata program that has a .want file and
// compares stdout followed by stderr with it.
func TestFunctional(t *testing.T) {
	var testFiles []string
	err := filepath.Walk("testdata", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		for _, ext := range config.SourceFileExtensions {
			if strings.HasSuffix(path, ext) {
				wantFile := strings.TrimSuffix(path, ext) + ".want"
				if _, err := os.Stat(wantFile); err == nil {
					testFiles = append(testFiles, path)
				}
				break
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk directory: %v", err)
	}
	if len(testFiles) == 0 {
		t.Skip("No test files with .want found")
	}

	for _, testFile := range testFiles {
		testName := strings.TrimSuffix(filepath.Base(testFile), filepath.Ext(testFile))

		t.Run(testName, func(t *testing.T) {
			absPath, err := filepath.Abs(testFile)
			if err != nil {
				t.Fatalf("Failed to get absolute path: %v", err)
			}
			wantBytes, err := os.ReadFile(strings.TrimSuffix(testFile, filepath.Ext(testFile)) + ".want")
			if err != nil {
				t.Fatalf("Failed to read .want file: %v", err)
			}

			var stdout, stderr bytes.Buffer
			code := run([]string{"sim", absPath}, strings.NewReader(""), &stdout, &stderr)

			stderrStr := strings.ReplaceAll(stderr.String(), filepath.Dir(absPath)+string(filepath.Separator), "")
			got := strings.TrimSpace(stdout.String() + stderrStr)
			want := strings.TrimSpace(strings.ReplaceAll(string(wantBytes), "\r\n", "\n"))

			if got != want {
				t.Errorf("Output mismatch:\n--- want ---\n%s\n--- got ---\n%s", want, got)
			}
			if wantCode := exitCodeFor(stderr.String()); code != wantCode {
				t.Errorf("expected exit code %d, got %d", wantCode, code)
			}
		})
	}
}

func exitCodeFor(stderr string) int {
	if stderr != "" {
		return 1
	}
	return 0
}
