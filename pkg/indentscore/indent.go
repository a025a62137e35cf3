package indentscore

// MaxIndent caps the value returned by IndentOf. Lines indented further than
// this are not human-readable text, so there is no point scanning them.
const MaxIndent = 200

// IndentOf returns the width of the leading whitespace of line, expanding tabs
// to the next multiple of 8 columns. It returns -1 if the line is empty or
// contains only spaces and tabs, and clamps the result at MaxIndent.
func IndentOf(line string) int {
	indent := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			indent++
		case '\t':
			indent += 8 - indent%8
		default:
			return indent
		}
		if indent >= MaxIndent {
			return MaxIndent
		}
	}
	return -1 // only whitespace
}
