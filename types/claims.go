package types

import "github.com/golang-jwt/jwt/v5"

type PrincipalKind string

const (
	KindStudent PrincipalKind = "student"
	KindAdmin   PrincipalKind = "admin"
)

// Claims carries the principal kind plus a snapshot of profile fields taken
// at login time. Admin profile updates re-issue the token so the snapshot
// stays current within a session.
type Claims struct {
	Kind      PrincipalKind `json:"kind"`
	StudentID string        `json:"student_id,omitempty"`
	AdminID   uint          `json:"admin_id,omitempty"`
	Username  string        `json:"username,omitempty"`
	FullName  string        `json:"full_name"`
	Email     string        `json:"email"`
	Role      string        `json:"role,omitempty"`
	jwt.RegisteredClaims
}
