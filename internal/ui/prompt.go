package ui

// capturedPrompt adapts the controller's UserPrompt to the Bubble Tea
// message flow: the confirm modal runs before the command is dispatched, so
// the prompt replays that answer, and notices are collected for the result
// message instead of blocking.
type capturedPrompt struct {
	confirmed bool
	notices   []string
}

func (p *capturedPrompt) Confirm(string) bool {
	return p.confirmed
}

func (p *capturedPrompt) Notify(message string) {
	p.notices = append(p.notices, message)
}

// noopPrompt declines everything; it is the controller's placeholder prompt
// until an action binds a capturedPrompt.
type noopPrompt struct{}

func (noopPrompt) Confirm(string) bool { return false }
func (noopPrompt) Notify(string)       {}
