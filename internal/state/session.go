package state

// SessionStatus is what the client currently knows about its session. It
// starts unresolved until the first identity check answers.
type SessionStatus int

const (
	SessionUnresolved SessionStatus = iota
	SessionAuthenticated
	SessionUnauthenticated
)

func (s SessionStatus) String() string {
	switch s {
	case SessionUnresolved:
		return "unresolved"
	case SessionAuthenticated:
		return "authenticated"
	case SessionUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Access classifies a screen by whether it needs a session.
type Access int

const (
	AccessProtected Access = iota
	AccessPublic
)

// Paths the gate redirects to. SignInPath receives signed-out visitors of
// protected screens; HomePath receives signed-in visitors of public-only
// screens such as the sign-in form itself.
const (
	SignInPath = "/signin"
	HomePath   = "/"
)

// Decision tells the caller what to do with a navigation attempt.
type Decision struct {
	// Wait means the session is still unresolved; render nothing and retry
	// once it settles.
	Wait bool

	// Allow means the screen may render.
	Allow bool

	// Redirect, when non-empty, is the path to send the visitor to instead.
	Redirect string
}

// Decide resolves a navigation attempt against the current session status.
// It never allows a protected screen to render before the session check has
// answered, so a signed-out visitor cannot glimpse protected content.
func Decide(status SessionStatus, access Access) Decision {
	if status == SessionUnresolved {
		return Decision{Wait: true}
	}

	switch access {
	case AccessProtected:
		if status == SessionAuthenticated {
			return Decision{Allow: true}
		}

		return Decision{Redirect: SignInPath}
	default:
		if status == SessionAuthenticated {
			return Decision{Redirect: HomePath}
		}

		return Decision{Allow: true}
	}
}
