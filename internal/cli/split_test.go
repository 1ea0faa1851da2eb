package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gluefinance/parse-schema/internal/config"
	"github.com/gluefinance/parse-schema/pkg/parseschema"
)

const testDump = `SET statement_timeout = 0;

CREATE TABLE users (
    id integer NOT NULL,
    note text DEFAULT 'none; pending'
);

CREATE FUNCTION touch() RETURNS trigger
    LANGUAGE plpgsql
    AS $$
BEGIN
    RETURN NEW;
END;
$$;

ALTER TABLE users OWNER TO postgres;
`

func setupSplitTest(t *testing.T) {
	t.Helper()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatal(err)
		}
	})
	t.Setenv("PARSE_SCHEMA_OUTPUT", "")
	t.Setenv("PARSE_SCHEMA_VERBOSE", "")
	if err := os.WriteFile("dump.sql", []byte(testDump), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRunSplit_EndToEnd(t *testing.T) {
	setupSplitTest(t)

	if err := runSplit(rootCmd, []string{"dump.sql", "out"}); err != nil {
		t.Fatalf("expected success, got: %v", err)
	}

	for _, p := range []string{
		"out/changes/000001-statement_timeout.sql",
		"out/changes/000002-users.sql",
		"out/changes/000003-touch.sql",
		"out/name/users.sql",
		"out/type/TABLE.sql",
		"out/type/FUNCTION.sql",
		"out/checksums.txt",
	} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
		}
	}

	// The extracted function body was reinlined verbatim.
	data, err := os.ReadFile("out/changes/000003-touch.sql")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "RETURN NEW;") {
		t.Errorf("expected function body in output, got: %s", data)
	}

	// The name index links back into changes/.
	target, err := os.Readlink("out/name/users/000002-users.sql")
	if err != nil {
		t.Fatal(err)
	}
	if target != filepath.Join("..", "..", "changes", "000002-users.sql") {
		t.Errorf("unexpected symlink target: %s", target)
	}

	// The ownership statement was skipped, not exported.
	agg, err := os.ReadFile("out/name/users.sql")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(agg), "OWNER TO") {
		t.Errorf("ownership statement leaked into aggregate: %s", agg)
	}
}

func TestRunSplit_MissingDumpFile(t *testing.T) {
	setupSplitTest(t)

	err := runSplit(rootCmd, []string{"nonexistent.sql", "out"})
	if err == nil {
		t.Fatal("expected error for missing dump file")
	}
	if parseschema.ExitCodeForError(err) != parseschema.ExitFilesystem {
		t.Errorf("expected filesystem exit code, got %d for: %v", parseschema.ExitCodeForError(err), err)
	}
}

func TestRunSplit_ResidualContent(t *testing.T) {
	setupSplitTest(t)
	dump := testDump + "\nthis is not a statement\n"
	if err := os.WriteFile("dump.sql", []byte(dump), 0644); err != nil {
		t.Fatal(err)
	}

	err := runSplit(rootCmd, []string{"dump.sql", "out"})
	if !errors.Is(err, parseschema.ErrParseResidual) {
		t.Fatalf("expected residual error, got: %v", err)
	}

	// Nothing was exported on parse failure.
	if _, statErr := os.Stat("out"); !os.IsNotExist(statErr) {
		t.Errorf("expected no output directory after parse failure")
	}
}

func TestRunSplit_ExistingOutputDir(t *testing.T) {
	setupSplitTest(t)
	if err := os.Mkdir("out", 0755); err != nil {
		t.Fatal(err)
	}

	err := runSplit(rootCmd, []string{"dump.sql", "out"})
	if !errors.Is(err, parseschema.ErrUsage) {
		t.Fatalf("expected usage error for existing output dir, got: %v", err)
	}
}

func TestResolveOutputDir(t *testing.T) {
	t.Setenv("PARSE_SCHEMA_OUTPUT", "")

	t.Run("argument wins", func(t *testing.T) {
		t.Setenv("PARSE_SCHEMA_OUTPUT", "fromenv")
		dir := resolveOutputDir([]string{"dump.sql", "fromarg"}, &config.ProjectConfig{Output: "fromcfg"})
		if dir != "fromarg" {
			t.Errorf("expected fromarg, got %s", dir)
		}
	})

	t.Run("environment beats config", func(t *testing.T) {
		t.Setenv("PARSE_SCHEMA_OUTPUT", "fromenv")
		dir := resolveOutputDir([]string{"dump.sql"}, &config.ProjectConfig{Output: "fromcfg"})
		if dir != "fromenv" {
			t.Errorf("expected fromenv, got %s", dir)
		}
	})

	t.Run("config beats default", func(t *testing.T) {
		dir := resolveOutputDir([]string{"dump.sql"}, &config.ProjectConfig{Output: "fromcfg"})
		if dir != "fromcfg" {
			t.Errorf("expected fromcfg, got %s", dir)
		}
	})

	t.Run("default when nothing set", func(t *testing.T) {
		dir := resolveOutputDir([]string{"dump.sql"}, nil)
		if dir != parseschema.DefaultOutputDir {
			t.Errorf("expected %s, got %s", parseschema.DefaultOutputDir, dir)
		}
	})
}

func TestLoadProjectConfig_NotFoundIsNil(t *testing.T) {
	cfg, err := loadProjectConfig(t.TempDir())
	if err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got: %+v", cfg)
	}
}
