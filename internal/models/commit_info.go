package models

import "strings"

// CommitInfo is a one-line commit summary as printed by `git log --oneline`
type CommitInfo struct {
	// Hash is the abbreviated commit hash
	Hash string
	// Message is the subject line, including any --decorate prefix
	Message string
}

// NewCommitInfo creates a new CommitInfo
func NewCommitInfo(hash, message string) CommitInfo {
	return CommitInfo{
		Hash:    hash,
		Message: message,
	}
}

// ParseOneline parses a single `--oneline` line into a CommitInfo.
// Lines without a message produce a CommitInfo with an empty Message.
func ParseOneline(line string) CommitInfo {
	line = strings.TrimSpace(line)
	hash, message, _ := strings.Cut(line, " ")
	return NewCommitInfo(hash, strings.TrimSpace(message))
}

// ParseOnelineLog parses `git log --oneline` output, preserving order (newest first)
func ParseOnelineLog(output string) []CommitInfo {
	var commits []CommitInfo
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		commits = append(commits, ParseOneline(line))
	}
	return commits
}

// String returns the commit in its one-line form
func (c CommitInfo) String() string {
	if c.Message == "" {
		return c.Hash
	}
	return c.Hash + " " + c.Message
}
