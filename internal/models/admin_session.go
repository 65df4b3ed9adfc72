package models

import "time"

// AdminSession is the snapshot persisted under the admin_session key when the
// staff user logs in. Valid for 24 hours from creation.
type AdminSession struct {
	Username  string    `json:"username"`
	LoginTime time.Time `json:"loginTime"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s AdminSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
