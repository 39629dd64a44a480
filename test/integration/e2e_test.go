//go:build integration

package integration_test

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestFullFlowEveryKind generates one artifact of each kind on disk and
// checks the resulting tree.
func TestFullFlowEveryKind(t *testing.T) {
	env := setupTestEnv(t)
	src := filepath.Join(env.ProjectDir, "src")

	steps := []struct {
		kind, name string
		files      []string
	}{
		{"component", "PrimaryButton", []string{
			"components/primaryButton/primaryButtonComponent.tsx",
			"components/primaryButton/primaryButtonStyles.ts",
			"components/primaryButton/primaryButtonTypes.ts",
			"components/primaryButton/primaryButtonFunctions.ts",
			"components/primaryButton/primaryButtonComponent.test.tsx",
			"components/primaryButton/index.ts",
		}},
		{"screen", "profile", []string{
			"screens/profile/profileScreen.tsx",
			"screens/profile/profileStyles.ts",
			"screens/profile/profileTypes.ts",
			"screens/profile/profileFunctions.ts",
			"screens/profile/profileScreen.test.tsx",
			"screens/profile/index.ts",
		}},
		{"hook", "session", []string{
			"hooks/session/session.tsx",
			"hooks/session/sessionTypes.ts",
			"hooks/session/session.test.ts",
			"hooks/session/index.ts",
		}},
		{"navigation", "profile", []string{
			"navigation/ProfileNavigation.tsx",
		}},
	}

	for _, step := range steps {
		out, err := runCLI(t, env, "", step.kind, step.name)
		if err != nil {
			t.Fatalf("%s %s: %v", step.kind, step.name, err)
		}
		if !strings.Contains(out, "ready at") {
			t.Errorf("%s %s: no success line in output:\n%s", step.kind, step.name, out)
		}
		for _, f := range step.files {
			assertFileExists(t, filepath.Join(src, filepath.FromSlash(f)))
		}
	}

	assertFileContains(t, filepath.Join(src, "components/primaryButton/index.ts"),
		"export * from './primaryButtonComponent';")
	assertFileContains(t, filepath.Join(src, "hooks/session/index.ts"),
		"export * from './session';")
	assertFileContains(t, filepath.Join(src, "navigation/ProfileNavigation.tsx"),
		"import { ProfileScreen } from '../screens/profile';")
	assertFileNotExists(t, filepath.Join(src, "navigation/index.ts"))
}

// TestFullFlowRerunUpdatesFiles regenerates over an existing artifact.
func TestFullFlowRerunUpdatesFiles(t *testing.T) {
	env := setupTestEnv(t)
	target := filepath.Join(env.ProjectDir, "src", "components", "card", "cardComponent.tsx")

	if _, err := runCLI(t, env, "", "component", "card"); err != nil {
		t.Fatalf("first run: %v", err)
	}
	writeFile(t, target, "local edits")

	out, err := runCLI(t, env, "", "component", "card")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !strings.Contains(out, "Directory found, updating files") {
		t.Errorf("second run did not report the existing directory:\n%s", out)
	}
	assertFileContains(t, target, "Card")
}

// TestFullFlowInteractiveMenu drives the menu through stdin.
func TestFullFlowInteractiveMenu(t *testing.T) {
	env := setupTestEnv(t)

	out, err := runCLI(t, env, "2\nsettings\n4\nsettings\n5\n")
	if err != nil {
		t.Fatalf("interactive run: %v", err)
	}

	assertDirExists(t, filepath.Join(env.ProjectDir, "src", "screens", "settings"))
	assertFileExists(t, filepath.Join(env.ProjectDir, "src", "navigation", "SettingsNavigation.tsx"))
	if !strings.Contains(out, "See you next time") {
		t.Errorf("farewell missing:\n%s", out)
	}
}

// TestFullFlowProjectAndUserConfig checks that the project file beats the
// user config and that both are read from disk.
func TestFullFlowProjectAndUserConfig(t *testing.T) {
	env := setupTestEnv(t)

	if _, err := runCLI(t, env, "", "config", "set", "src_dir", "from-user"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	assertFileContains(t, filepath.Join(env.HomeDir, ".rncreate", "config.yaml"), "from-user")

	if _, err := runCLI(t, env, "", "hook", "theme"); err != nil {
		t.Fatalf("hook with user config: %v", err)
	}
	assertFileExists(t, filepath.Join(env.ProjectDir, "from-user", "hooks", "theme", "index.ts"))

	writeFile(t, filepath.Join(env.ProjectDir, "rncreate.yaml"), "src_dir: from-project\n")
	if _, err := runCLI(t, env, "", "hook", "theme"); err != nil {
		t.Fatalf("hook with project file: %v", err)
	}
	assertFileExists(t, filepath.Join(env.ProjectDir, "from-project", "hooks", "theme", "index.ts"))
}
