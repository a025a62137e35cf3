package indentscore

// Measurement describes the context around a hypothetical split placed
// directly above lines[split].
type Measurement struct {
	EndOfFile  bool `json:"end_of_file" yaml:"end_of_file"` // split is at or past the last line
	Indent     int  `json:"indent" yaml:"indent"`           // indent of the line after the split, -1 if blank or EOF
	PreBlank   int  `json:"pre_blank" yaml:"pre_blank"`     // consecutive blank lines above the split
	PreIndent  int  `json:"pre_indent" yaml:"pre_indent"`   // indent of the nearest non-blank line above, -1 if none
	PostBlank  int  `json:"post_blank" yaml:"post_blank"`   // blank lines after the line following the split
	PostIndent int  `json:"post_indent" yaml:"post_indent"` // indent of the nearest non-blank line below those, -1 if none
}

// Score is the accumulated badness of one or more splits. Smaller is better
// for both fields.
type Score struct {
	EffectiveIndent int `json:"effective_indent" yaml:"effective_indent"`
	Penalty         int `json:"penalty" yaml:"penalty"`
}

// Candidate is a pair of boundaries a hunk could be slid to.
type Candidate struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Ranked is a candidate together with its score.
type Ranked struct {
	Candidate `yaml:",inline"`
	Score     Score `json:"score" yaml:"score"`
}

// Op tells which side of a diff a hunk lives on.
type Op string

const (
	OpDelete Op = "delete" // lines only present in the old text
	OpInsert Op = "insert" // lines only present in the new text
)

// Hunk is a contiguous run of deleted or inserted lines. Start and End are
// 0-based line indices into the old text for deletions and into the new text
// for insertions; End is exclusive.
type Hunk struct {
	Op    Op  `json:"op" yaml:"op"`
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// HunkReport is a hunk scored at its current position.
type HunkReport struct {
	Hunk         `yaml:",inline"`
	Score        Score       `json:"score" yaml:"score"`
	StartMeasure Measurement `json:"start_measure" yaml:"start_measure"`
	EndMeasure   Measurement `json:"end_measure" yaml:"end_measure"`
}
