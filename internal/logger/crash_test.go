package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFormatCrashLog(t *testing.T) {
	log := CrashLog{
		Timestamp:  time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Version:    "0.1.0",
		Command:    "dayflow add",
		PanicValue: "runtime error: index out of range",
		StackTrace: "goroutine 1 [running]:\nmain.main()",
		GoVersion:  "go1.24.6",
		OS:         "linux",
		Arch:       "amd64",
	}

	out := formatCrashLog(log)

	for _, want := range []string{
		"DAYFLOW CRASH LOG",
		"Version:   0.1.0",
		"Command:   dayflow add",
		"runtime error: index out of range",
		"goroutine 1 [running]:",
		"OS/Arch:   linux/amd64",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("formatCrashLog missing %q", want)
		}
	}
}

func TestWriteAndListCrashLogs(t *testing.T) {
	tmp := t.TempDir()
	SetBasePath(tmp)
	defer SetBasePath("")

	SetVersion("test")
	SetCommand("dayflow list")

	log := createCrashLog("boom")
	if err := writeCrashLog(log); err != nil {
		t.Fatalf("writeCrashLog: %v", err)
	}

	logs, err := ListCrashLogs()
	if err != nil {
		t.Fatalf("ListCrashLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 crash log, got %d", len(logs))
	}

	data, err := os.ReadFile(logs[0])
	if err != nil {
		t.Fatalf("read crash log: %v", err)
	}
	if !strings.Contains(string(data), "boom") {
		t.Error("crash log does not contain the panic value")
	}
}

func TestCleanOldCrashLogs(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, CrashLogDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < MaxCrashLogs+5; i++ {
		name := fmt.Sprintf("crash_20260101_%06d.log", i)
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := cleanOldCrashLogs(dir); err != nil {
		t.Fatalf("cleanOldCrashLogs: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != MaxCrashLogs {
		t.Errorf("expected %d logs after cleanup, got %d", MaxCrashLogs, len(entries))
	}

	// The oldest files should be the ones removed.
	for _, e := range entries {
		if e.Name() < "crash_20260101_000005.log" {
			t.Errorf("old log %s should have been removed", e.Name())
		}
	}
}

func TestListCrashLogsMissingDir(t *testing.T) {
	SetBasePath(filepath.Join(t.TempDir(), "does-not-exist"))
	defer SetBasePath("")

	logs, err := ListCrashLogs()
	if err != nil {
		t.Fatalf("ListCrashLogs on missing dir: %v", err)
	}
	if logs != nil {
		t.Errorf("expected nil, got %v", logs)
	}
}
