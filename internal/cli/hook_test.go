package cli

import (
	"strings"
	"testing"
)

func TestGenerateHookScript(t *testing.T) {
	script := generateHookScript("text")

	if !strings.Contains(script, hookMarkerStart) {
		t.Error("Script missing start marker")
	}
	if !strings.Contains(script, hookMarkerEnd) {
		t.Error("Script missing end marker")
	}
	if !strings.Contains(script, "tomlshield scan --staged --format text") {
		t.Error("Script missing scan command with correct flags")
	}
	if !strings.Contains(script, "TOMLSHIELD_EXIT=$?") {
		t.Error("Script missing exit code capture")
	}
	if !strings.Contains(script, "exit 1") {
		t.Error("Script missing exit 1 for findings")
	}
	if !strings.Contains(script, "allowing commit") {
		t.Error("Script missing warning for errors")
	}
}

func TestReplaceHookSection_NoExisting(t *testing.T) {
	existing := "#!/bin/sh\nsome-other-hook\n"
	section := generateHookScript("text")

	result := replaceHookSection(existing, section)

	if !strings.HasPrefix(result, "#!/bin/sh\nsome-other-hook\n") {
		t.Error("Existing content should be preserved")
	}
	if !strings.Contains(result, hookMarkerStart) {
		t.Error("New section should be appended")
	}
}

func TestReplaceHookSection_ExistingSection(t *testing.T) {
	oldSection := generateHookScript("text")
	existing := "#!/bin/sh\nbefore\n" + oldSection + "after\n"
	newSection := generateHookScript("json")

	result := replaceHookSection(existing, newSection)

	if !strings.Contains(result, "before") {
		t.Error("Content before tomlshield section should be preserved")
	}
	if !strings.Contains(result, "after") {
		t.Error("Content after tomlshield section should be preserved")
	}
	if !strings.Contains(result, "--format json") {
		t.Error("New section should have updated flags")
	}
	if strings.Contains(result, "--format text") {
		t.Error("Old section should be replaced")
	}
	if strings.Count(result, hookMarkerStart) != 1 {
		t.Error("Should have exactly one tomlshield section")
	}
}

func TestRemoveHookSection(t *testing.T) {
	section := generateHookScript("text")
	existing := "#!/bin/sh\nother-hook\n" + section

	result := removeHookSection(existing)

	if strings.Contains(result, hookMarkerStart) {
		t.Error("Section should be removed")
	}
	if !strings.Contains(result, "other-hook") {
		t.Error("Other hook content should survive")
	}
}

func TestRemoveHookSection_NoSection(t *testing.T) {
	existing := "#!/bin/sh\nother-hook\n"
	if got := removeHookSection(existing); got != existing {
		t.Errorf("Content without a tomlshield section should be unchanged, got:\n%s", got)
	}
}
