package primer

// DefaultKeyFiles is the fixed, ordered list of project files embedded in
// every primer. The order is part of the output contract. Configuration may
// append extra files after these, never remove or reorder them.
var DefaultKeyFiles = []string{
	"README.md",
	"Cargo.toml",
	"src/main.rs",
	"src/chemistry.rs",
	"src/state.rs",
	"src/ui.rs",
	"src/voronoi.rs",
}

// KeyFiles returns the built-in list with extras appended.
func KeyFiles(extras []string) []string {
	files := make([]string, 0, len(DefaultKeyFiles)+len(extras))
	files = append(files, DefaultKeyFiles...)
	files = append(files, extras...)
	return files
}
