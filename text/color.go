package text

const (
	RED    string = "\033[31m"
	GREEN  string = "\033[32m"
	YELLOW string = "\033[33m"
	RESET  string = "\033[0m"
)

// Foreground wraps the given text with the colour. Empty colour leaves the text untouched.
func Foreground(colour string, text string) string {
	if colour == "" {
		return text
	}
	return colour + text + RESET
}
