package entity

import "time"

type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleEmployee
}

// User is the stored user document. The UID is assigned by the identity
// gateway and doubles as the document ID; role is immutable after
// registration. ProfileCompleted only exists on student documents.
type User struct {
	UID              string    `firestore:"uid" json:"uid"`
	Email            string    `firestore:"email" json:"email"`
	Name             string    `firestore:"name" json:"name,omitempty"`
	Role             Role      `firestore:"role" json:"role"`
	EmailVerified    bool      `firestore:"emailVerified" json:"emailVerified"`
	ProfileCompleted *bool     `firestore:"profileCompleted,omitempty" json:"profileCompleted,omitempty"`
	CreatedAt        time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `firestore:"updatedAt" json:"updatedAt"`
}
