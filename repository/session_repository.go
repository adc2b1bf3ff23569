package repository

import "finance-toolkit/domain"

// SessionRepository keeps per-visitor settings between renders. Get reports
// a missing or expired session as (zero, false, nil); errors are reserved for
// store failures.
type SessionRepository interface {
	Get(id string) (domain.Session, bool, error)
	Set(id string, session domain.Session) error
}
