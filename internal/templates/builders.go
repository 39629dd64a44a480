package templates

// ComponentFiles builds a presentational component: body, styles, prop
// types, helpers and a render test.
func ComponentFiles(name string) []File {
	d := NewData(name)
	return []File{
		{
			Filename: name + "Component.tsx",
			Message:  "Building main component",
			Content:  render("component.tsx.tmpl", d),
		},
		{
			Filename: name + "Styles.ts",
			Message:  "Creating base styles",
			Content:  render("component_styles.ts.tmpl", d),
		},
		{
			Filename: name + "Types.ts",
			Message:  "Typing props",
			Content:  render("component_types.ts.tmpl", d),
		},
		{
			Filename: name + "Functions.ts",
			Message:  "Adding utility helpers",
			Content:  render("component_functions.ts.tmpl", d),
		},
		{
			Filename: name + "Component.test.tsx",
			Message:  "Writing render test",
			Content:  render("component_test.tsx.tmpl", d),
		},
	}
}

// ScreenFiles builds a navigable screen with a "Go Back" button wired to the
// navigation prop.
func ScreenFiles(name string) []File {
	d := NewData(name)
	return []File{
		{
			Filename: name + "Screen.tsx",
			Message:  "Building main screen",
			Content:  render("screen.tsx.tmpl", d),
		},
		{
			Filename: name + "Styles.ts",
			Message:  "Creating responsive styles",
			Content:  render("screen_styles.ts.tmpl", d),
		},
		{
			Filename: name + "Types.ts",
			Message:  "Typing navigation",
			Content:  render("screen_types.ts.tmpl", d),
		},
		{
			Filename: name + "Functions.ts",
			Message:  "Seeding screen helpers",
			Content:  render("screen_functions.ts.tmpl", d),
		},
		{
			Filename: name + "Screen.test.tsx",
			Message:  "Setting up interaction test",
			Content:  render("screen_test.tsx.tmpl", d),
		},
	}
}

// HookFiles builds a use<Name> hook returning a [value, setter] pair, its
// return type and a unit test.
func HookFiles(name string) []File {
	d := NewData(name)
	return []File{
		{
			Filename: name + ".tsx",
			Message:  "Assembling reactive hook",
			Content:  render("hook.tsx.tmpl", d),
		},
		{
			Filename: name + "Types.ts",
			Message:  "Defining reactive types",
			Content:  render("hook_types.ts.tmpl", d),
		},
		{
			Filename: name + ".test.ts",
			Message:  "Writing hook test",
			Content:  render("hook_test.ts.tmpl", d),
		},
	}
}

// NavigationFiles builds a native-stack navigator with a single route that
// points at the screen of the same name.
func NavigationFiles(name string) []File {
	d := NewData(name)
	return []File{
		{
			Filename: d.Capitalized + "Navigation.tsx",
			Message:  "Assembling stack navigator",
			Content:  render("navigation.tsx.tmpl", d),
		},
	}
}
