package models

// GhPr represents GitHub PR info returned from gh CLI
type GhPr struct {
	Number uint64 `json:"number"`
	URL    string `json:"url"`
	Title  string `json:"title"`
	State  string `json:"state"`
}

// BranchPR is the result of creating a feature branch and its pull request link
type BranchPR struct {
	Branch string
	URL    string
	// CreatedWithGH is true if the PR was opened with `gh pr create`
	// rather than left as a compare link
	CreatedWithGH bool
}
