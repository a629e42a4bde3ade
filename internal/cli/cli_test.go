package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meetcost/meetcost/config"
	"github.com/meetcost/meetcost/internal/history"
	"github.com/meetcost/meetcost/internal/models"
)

// setupTestDeps wires real collaborators against a temp database so the
// commands run end to end.
func setupTestDeps(t *testing.T) *Dependencies {
	t.Helper()

	store, err := history.New(filepath.Join(t.TempDir(), "meetings.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return &Dependencies{
		Config: &config.Config{
			SiteURL: "https://meetcost.test",
		},
		Store: store,
	}
}

func runCommand(t *testing.T, deps *Dependencies, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	root := NewRootCmd(deps)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCalcCommand(t *testing.T) {
	deps := setupTestDeps(t)

	out, err := runCommand(t, deps, "calc", "--people", "4", "--hourly", "100", "--minutes", "60")
	if err != nil {
		t.Fatalf("calc failed: %v", err)
	}

	if !strings.Contains(out, "Meeting cost: $400.00") {
		t.Errorf("expected $400.00 total, got:\n%s", out)
	}
	if !strings.Contains(out, "Score: ") || !strings.Contains(out, "/100") {
		t.Errorf("expected a score line, got:\n%s", out)
	}
	if !strings.Contains(out, "Average rate: $100.00/hr") {
		t.Errorf("expected average rate line, got:\n%s", out)
	}
}

func TestCalcRejectsConflictingCompensation(t *testing.T) {
	deps := setupTestDeps(t)

	if _, err := runCommand(t, deps, "calc", "--salary", "90000", "--hourly", "50"); err == nil {
		t.Error("expected error for --salary with --hourly")
	}
}

func TestCalcUnknownPreset(t *testing.T) {
	deps := setupTestDeps(t)

	if _, err := runCommand(t, deps, "calc", "--preset", "piracy"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

// savedMeetingID runs calc --save and extracts the assigned meeting ID
// from the output.
func savedMeetingID(t *testing.T, deps *Dependencies, extra ...string) string {
	t.Helper()

	args := append([]string{"calc", "--people", "3", "--salary", "104000", "--minutes", "30", "--save"}, extra...)
	out, err := runCommand(t, deps, args...)
	if err != nil {
		t.Fatalf("calc --save failed: %v", err)
	}
	for _, line := range strings.Split(out, "\n") {
		if id, ok := strings.CutPrefix(line, "saved as "); ok {
			return id
		}
	}
	t.Fatalf("no saved-as line in output:\n%s", out)
	return ""
}

func TestSaveAndHistory(t *testing.T) {
	deps := setupTestDeps(t)
	id := savedMeetingID(t, deps)

	if !strings.HasPrefix(id, "mtg_") {
		t.Errorf("expected mtg_ ID prefix, got %q", id)
	}

	out, err := runCommand(t, deps, "history", "list")
	if err != nil {
		t.Fatalf("history list failed: %v", err)
	}
	if !strings.Contains(out, id) {
		t.Errorf("history list missing %s:\n%s", id, out)
	}

	out, err = runCommand(t, deps, "history", "show", id)
	if err != nil {
		t.Fatalf("history show failed: %v", err)
	}
	if !strings.Contains(out, "Meeting cost: $75.00") {
		t.Errorf("expected $75.00 for 3x$50/hr over 30 min, got:\n%s", out)
	}
}

func TestHistoryShowUnknownID(t *testing.T) {
	deps := setupTestDeps(t)

	if _, err := runCommand(t, deps, "history", "show", "mtg_missing"); err == nil {
		t.Error("expected error for unknown meeting ID")
	}
}

func TestHistoryClearRequiresConfirmation(t *testing.T) {
	deps := setupTestDeps(t)
	savedMeetingID(t, deps)

	if _, err := runCommand(t, deps, "history", "clear"); err == nil {
		t.Error("expected clear without --yes to fail")
	}

	if _, err := runCommand(t, deps, "history", "clear", "--yes"); err != nil {
		t.Fatalf("history clear --yes failed: %v", err)
	}

	out, err := runCommand(t, deps, "history", "list")
	if err != nil {
		t.Fatalf("history list failed: %v", err)
	}
	if !strings.Contains(out, "no saved meetings") {
		t.Errorf("expected empty history, got:\n%s", out)
	}
}

func TestShareLinkAndDecode(t *testing.T) {
	deps := setupTestDeps(t)
	id := savedMeetingID(t, deps, "--type", "Stand Up")

	link, err := runCommand(t, deps, "share", "link", id)
	if err != nil {
		t.Fatalf("share link failed: %v", err)
	}
	link = strings.TrimSpace(link)
	if !strings.HasPrefix(link, "https://meetcost.test/share?r=") {
		t.Fatalf("unexpected share link %q", link)
	}

	// Decode accepts both the full URL and the bare token.
	for _, arg := range []string{link, strings.TrimPrefix(link, "https://meetcost.test/share?r=")} {
		out, err := runCommand(t, deps, "share", "decode", arg)
		if err != nil {
			t.Fatalf("share decode %q failed: %v", arg, err)
		}
		if !strings.Contains(out, "Total cost: $75.00") {
			t.Errorf("expected decoded total, got:\n%s", out)
		}
		if !strings.Contains(out, "Meeting: Stand Up") {
			t.Errorf("expected decoded description, got:\n%s", out)
		}
	}
}

func TestShareDecodeGarbage(t *testing.T) {
	deps := setupTestDeps(t)

	if _, err := runCommand(t, deps, "share", "decode", "!!not-base64!!"); err == nil {
		t.Error("expected error decoding garbage token")
	}
}

func TestExportFormats(t *testing.T) {
	deps := setupTestDeps(t)
	deps.Config.SectorLabels = map[models.SectorType]string{
		models.SectorPublic:  "Public sector",
		models.SectorPrivate: "Private sector",
	}
	id := savedMeetingID(t, deps)

	out, err := runCommand(t, deps, "export", id, "--format", "csv")
	if err != nil {
		t.Fatalf("export csv failed: %v", err)
	}
	if !strings.Contains(out, "Total Cost") {
		t.Errorf("expected csv header, got:\n%s", out)
	}

	out, err = runCommand(t, deps, "export", id, "--format", "markdown")
	if err != nil {
		t.Fatalf("export markdown failed: %v", err)
	}
	if !strings.Contains(out, "Total") || !strings.Contains(out, "$75.00") {
		t.Errorf("expected markdown receipt, got:\n%s", out)
	}

	if _, err := runCommand(t, deps, "export", id, "--format", "xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestScoreCommand(t *testing.T) {
	deps := setupTestDeps(t)

	out, err := runCommand(t, deps, "score", "--cost", "200", "--people", "5", "--minutes", "30")
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if !strings.Contains(out, "/100") {
		t.Errorf("expected score output, got:\n%s", out)
	}

	if _, err := runCommand(t, deps, "score", "--cost", "-1"); err == nil {
		t.Error("expected error for negative cost")
	}
}
