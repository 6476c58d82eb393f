package source

// Kind distinguishes what a candidate's payload refers to.
type Kind string

const (
	// KindCommit candidates carry a commit hash (gitlog).
	KindCommit Kind = "commit"
	// KindFile candidates carry a file path (gitstatus, gitchanged).
	KindFile Kind = "file"
)

// Candidate is one selectable entry: a display string rendered to the user
// plus the payload actions operate on. Candidates are transient; every
// listing request rebuilds them from scratch.
type Candidate struct {
	// Display is the rendered line.
	Display string `json:"display"`

	// Kind tells actions how to interpret the payload.
	Kind Kind `json:"kind"`

	// Hash is the full commit hash for commit candidates.
	Hash string `json:"hash,omitempty"`

	// CommitType is the conventional-commit type of the subject, when the
	// subject parses as one ("fix", "feat", ...). Display tagging only.
	CommitType string `json:"commit_type,omitempty"`

	// Path is the absolute file path for file candidates.
	Path string `json:"path,omitempty"`

	// RelPath is the path relative to the repository root.
	RelPath string `json:"rel_path,omitempty"`

	// Code is the two-character porcelain status code (gitstatus only).
	Code string `json:"code,omitempty"`

	// Staged and Worktree are derived from the porcelain code and drive the
	// reset/diff action branching.
	Staged   bool `json:"staged,omitempty"`
	Worktree bool `json:"worktree,omitempty"`
}

// Ref returns the identifying payload: hash for commits, path for files.
func (c Candidate) Ref() string {
	if c.Kind == KindCommit {
		return c.Hash
	}
	return c.Path
}
