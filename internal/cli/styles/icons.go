package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" //  tag
	IconGitBranch = "\ue725" //  git branch
	IconCalendar  = "\uf073" //  calendar
	IconGithub    = "\uf09b" //  github
	IconHeart     = "\uf004" //  heart
	IconGo        = "\ue627" //  go gopher
	IconInfo      = "\uf05a" // info
	IconConfig    = "\ue615" // config
	IconFolder    = "\uf07b" // folder
	IconLogs      = "\uf0f6" // file-text
	IconCursor    = "\uf054" // chevron-right
	IconImage     = "\uf1c5" // image file
	IconCheck     = "\uf00c" // check
	IconDesktop   = "\uf108" // desktop
)
