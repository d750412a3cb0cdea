package instance

// AppName is what the tool calls itself: the command name, and the base name
// of its config file.
func AppName() string {
	return "linelen"
}
