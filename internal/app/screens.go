package app

// Screen represents the current view in the dashboard
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenDashboard
	ScreenError
)

func (s Screen) String() string {
	names := []string{
		"Loading",
		"Dashboard",
		"Error",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Action is the menu choice the dashboard exits with
type Action int

const (
	ActionNone Action = iota
	ActionRefresh
	ActionSync
	ActionSyncCommits
	ActionCommit
	ActionBranchPR
	ActionScaffold
	ActionQuit
)

type menuItem struct {
	action Action
	key    string
	title  string
	desc   string
}

// menuItems are shown in this order; keys double as shortcuts
var menuItems = []menuItem{
	{ActionRefresh, "1", "Refresh status", "Re-run the status queries"},
	{ActionSync, "2", "Sync repository", "Checkout main, stash, pull --rebase, restore"},
	{ActionSyncCommits, "3", "Sync commits", "Push local-only, pull remote-only commits"},
	{ActionCommit, "4", "Commit changes", "Stage everything and commit with a message"},
	{ActionBranchPR, "5", "Branch + PR", "New feature branch, push, open a PR link"},
	{ActionScaffold, "6", "Scaffold folders", "Create project folders with .gitkeep"},
	{ActionQuit, "q", "Quit", "Exit repodash"},
}

func (a Action) String() string {
	for _, item := range menuItems {
		if item.action == a {
			return item.title
		}
	}
	return "None"
}
