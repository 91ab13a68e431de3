// Package models defines the marketplace resources exchanged with the
// remote API: user profiles and gigs.
package models

// Role is the acting role a user signed up with.
type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleFreelancer
}

// UserProfile is the signed-in user's profile as the server reports it.
type UserProfile struct {
	ID         string   `json:"_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email,omitempty"`
	Role       Role     `json:"role"`
	Bio        string   `json:"bio,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	ProfilePic string   `json:"profilePic,omitempty"`
}

// ProfilePatch is a partial profile update. Nil fields are left alone.
type ProfilePatch struct {
	Name       *string
	Bio        *string
	Skills     []string // nil = omitted, empty slice = clear
	ProfilePic *string
}

// PatchFrom turns a full profile (typically a server response) into a
// patch that overwrites every field the server sent back.
func PatchFrom(p UserProfile) ProfilePatch {
	patch := ProfilePatch{
		Name:       &p.Name,
		Bio:        &p.Bio,
		ProfilePic: &p.ProfilePic,
	}
	if p.Skills != nil {
		patch.Skills = append([]string{}, p.Skills...)
	}
	return patch
}

// Merge returns a copy of u with the provided patch fields applied.
func (u UserProfile) Merge(p ProfilePatch) UserProfile {
	out := u.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Bio != nil {
		out.Bio = *p.Bio
	}
	if p.Skills != nil {
		out.Skills = append([]string{}, p.Skills...)
	}
	if p.ProfilePic != nil {
		out.ProfilePic = *p.ProfilePic
	}
	return out
}

// Clone returns a deep copy.
func (u UserProfile) Clone() UserProfile {
	out := u
	if u.Skills != nil {
		out.Skills = append([]string{}, u.Skills...)
	}
	return out
}
