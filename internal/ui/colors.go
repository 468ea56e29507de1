package ui

// ColorReset returns the reset code of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorPrimary returns the primary accent.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the dim accent.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorSuccess returns the success color.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the warning color.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the error color.
func ColorError() string { return GetCurrentTheme().Error }

// ColorBold returns the bold code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// Paint wraps s in color and the active reset code.
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + ColorReset()
}
