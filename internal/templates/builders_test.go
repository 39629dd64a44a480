package templates

import (
	"strings"
	"testing"
)

func TestComponentFiles(t *testing.T) {
	files := ComponentFiles("sampleName")

	assertFilenames(t, files, []string{
		"sampleNameComponent.tsx",
		"sampleNameStyles.ts",
		"sampleNameTypes.ts",
		"sampleNameFunctions.ts",
		"sampleNameComponent.test.tsx",
	})

	body := files[0].Content
	assertContains(t, body, "export const SampleNameComponent")
	assertContains(t, body, "import { styles } from './sampleNameStyles';")
	assertContains(t, body, "React.FC<sampleNameProps>")
	assertContains(t, files[2].Content, "export interface sampleNameProps")
	assertContains(t, files[4].Content, "describe('SampleNameComponent'")
}

func TestScreenFiles(t *testing.T) {
	files := ScreenFiles("profile")

	assertFilenames(t, files, []string{
		"profileScreen.tsx",
		"profileStyles.ts",
		"profileTypes.ts",
		"profileFunctions.ts",
		"profileScreen.test.tsx",
	})

	body := files[0].Content
	assertContains(t, body, "export const ProfileScreen")
	assertContains(t, body, `<Button title="Go Back" onPress={() => navigation.goBack()} />`)
	assertContains(t, files[2].Content, "NativeStackNavigationProp")
	assertContains(t, files[4].Content, "fireEvent.press(getByText('Go Back'))")
}

func TestHookFiles(t *testing.T) {
	files := HookFiles("amazing")

	assertFilenames(t, files, []string{"amazing.tsx", "amazingTypes.ts", "amazing.test.ts"})

	assertContains(t, files[0].Content, "export function useAmazing(): UseAmazingReturn")
	assertContains(t, files[0].Content, "return [state, setState];")
	assertContains(t, files[1].Content, "export type UseAmazingReturn")
	assertContains(t, files[2].Content, "import { useAmazing } from './amazing';")
}

func TestNavigationFiles(t *testing.T) {
	files := NavigationFiles("journey")

	assertFilenames(t, files, []string{"JourneyNavigation.tsx"})

	body := files[0].Content
	assertContains(t, body, `<Stack.Screen name="Journey" component={JourneyScreen} />`)
	assertContains(t, body, "import { JourneyScreen } from '../screens/journey';")
	assertContains(t, body, "export function JourneyNavigation()")
}

func TestBuildersLeaveJSXBracesIntact(t *testing.T) {
	body := ComponentFiles("card")[0].Content
	assertContains(t, body, "<Text>{title ?? 'Card Component'}</Text>")
	assertContains(t, body, "style={styles.container}")
}

func TestBuildersDoNotValidateNames(t *testing.T) {
	files := HookFiles("bad name!")
	assertContains(t, files[0].Content, "useBad name!")
}

func TestEveryFileHasMessage(t *testing.T) {
	builders := map[string]func(string) []File{
		"component":  ComponentFiles,
		"screen":     ScreenFiles,
		"hook":       HookFiles,
		"navigation": NavigationFiles,
	}
	for kind, build := range builders {
		for _, f := range build("demo") {
			if f.Message == "" {
				t.Errorf("%s file %s has no progress message", kind, f.Filename)
			}
			if f.Content == "" {
				t.Errorf("%s file %s has no content", kind, f.Filename)
			}
		}
	}
}

func assertFilenames(t *testing.T, files []File, want []string) {
	t.Helper()
	if len(files) != len(want) {
		t.Fatalf("got %d files, want %d", len(files), len(want))
	}
	for i, f := range files {
		if f.Filename != want[i] {
			t.Errorf("files[%d].Filename = %q, want %q", i, f.Filename, want[i])
		}
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected content to contain %q, got:\n%s", substr, content)
	}
}
