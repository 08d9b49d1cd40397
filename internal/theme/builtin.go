package theme

// Built-in theme names.
const (
	NameLight     = "jtjs-light"
	NameDark      = "jtjs-dark"
	NameParchment = "jtjs-parchment"
)

// sharedStatusColours are identical across every built-in theme.
var sharedStatusColours = map[Role]string{
	RoleAffirmative:     "#3BAD61",
	RoleAffirmativeText: "#EEE",
	RoleNegative:        "#CB3D3D",
	RoleNegativeText:    "#EEE",
	RoleWarn:            "#D67327",
	RoleWarnText:        "#EEE",
	RoleInfo:            "#19417D",
	RoleInfoText:        "#EEE",
}

func builtin(name string, colours map[Role]string) Theme {
	t := Theme{Name: name}
	t.Merge(sharedStatusColours)
	t.Merge(colours)
	return t
}

// Light is a classic light theme with blue buttons and aqua accents.
func Light() Theme {
	return builtin(NameLight, map[Role]string{
		RoleBackground: "#FEFEFE",
		RoleForeground: "#EBEBEB",
		RoleDisabled:   "#B8B8B8",
		RoleText:       "#333",
		RoleAccent:     "#469BBF",
		RoleOutline:    "#8F8F8F",
		RoleButton:     "#5C7EC1",
		RoleButtonText: "#EEE",
		RoleFocus:      "#97ADD8",
	})
}

// Dark is mostly greys with soft blue buttons and an aqua accent.
func Dark() Theme {
	return builtin(NameDark, map[Role]string{
		RoleBackground: "#292929",
		RoleForeground: "#474747",
		RoleDisabled:   "#3D3D3D",
		RoleText:       "#EEE",
		RoleAccent:     "#469BBF",
		RoleOutline:    "#8F8F8F",
		RoleButton:     "#5C7EC1",
		RoleButtonText: "#EEE",
		RoleFocus:      "#97ADD8",
	})
}

// Parchment has an off-white background, chocolate text, blue buttons and
// lavender accents.
func Parchment() Theme {
	return builtin(NameParchment, map[Role]string{
		RoleBackground: "#EEECE7",
		RoleForeground: "#D5D0C3",
		RoleDisabled:   "#9B916F",
		RoleText:       "#36261A",
		RoleAccent:     "#957186",
		RoleOutline:    "#B4AC93",
		RoleButton:     "#5299D3",
		RoleButtonText: "#EEE",
		RoleFocus:      "#957186",
	})
}

// Default returns the theme published before anything is registered.
func Default() Theme {
	return Dark()
}

// Builtins returns every built-in theme.
func Builtins() []Theme {
	return []Theme{Light(), Dark(), Parchment()}
}
