package models

// User is one entry in the users collection. The normalized (trimmed,
// lower-cased) email is the natural key; uniqueness is enforced at
// registration time by a linear scan.
//
// Password is stored in plaintext on purpose: this store inherits the
// original site's explicit no-auth-security non-goal.
type User struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func (u User) RecordID() int64 { return u.ID }

// Profile is a User with the password stripped, as handed to callers.
type Profile struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullname"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Principal is the session-identifying subset of a User, written under the
// currentUser key at login time.
type Principal struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullname"`
	Email     string `json:"email"`
	LoginAt   string `json:"loginAt"`
	SessionID string `json:"sessionId,omitempty"`
}
