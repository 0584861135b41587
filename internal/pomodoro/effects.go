package pomodoro

// Effect is an action the caller performs after a transition.
type Effect interface {
	isEffect()
}

// Notify announces a phase boundary to the user.
type Notify struct {
	Title string
	Body  string
}

type SyncStart struct {
	ProjectID   *string
	Description string
}

// SyncPause pauses the server timer, banking Accumulated seconds.
type SyncPause struct {
	Accumulated int64
}

// SyncResume restarts the server timer's run segment.
type SyncResume struct {
	Accumulated int64
}

type SyncStop struct {
	Save bool
}

type SyncProject struct {
	ProjectID *string
}

type SyncDescription struct {
	Description string
}

func (Notify) isEffect()          {}
func (SyncStart) isEffect()       {}
func (SyncPause) isEffect()       {}
func (SyncResume) isEffect()      {}
func (SyncStop) isEffect()        {}
func (SyncProject) isEffect()     {}
func (SyncDescription) isEffect() {}

var (
	workOver  = Notify{Title: "Time for a break!", Body: "You've completed a work session."}
	breakOver = Notify{Title: "Break is over!", Body: "Ready to get back to work?"}
)
