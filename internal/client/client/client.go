package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/gigdesk/internal/client/models"
)

// Attachment is a file sent as a multipart part.
type Attachment interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// TokenSource supplies the bearer token for authenticated calls. The
// session store implements it.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// AuthResult is what login and registration return.
type AuthResult struct {
	User  models.UserProfile `json:"user"`
	Token string             `json:"token"`
}

// RegisterRequest is the sign-up form. Skills are sent only for
// freelancers; Bio and ProfilePic are optional.
type RegisterRequest struct {
	Name       string
	Email      string
	Password   string
	Role       models.Role
	Bio        string
	Skills     []string
	ProfilePic Attachment
}

// ProfileUpdate is the body of PUT /auth/update.
type ProfileUpdate struct {
	Name   string   `json:"name"`
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
}

// GigPayload is the typed body of gig create/update requests. JSON-encoded
// parts: keywords, pricePlans, faqs, requirements, imagesToDelete.
type GigPayload struct {
	Title        string
	Desc         string
	Category     models.Category
	Keywords     []string
	PricePlans   []models.PricePlan
	FAQs         []models.FAQ
	Requirements []string

	// Thumbnail is required on create, optional on update.
	Thumbnail Attachment
	Images    []Attachment

	// ImagesToDelete is sent on every update, as [] when empty, and never
	// on create.
	ImagesToDelete []string
}

// Client is the remote marketplace API.
type Client interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	// Me resolves the profile behind token, which need not be the
	// session's current token.
	Me(ctx context.Context, token string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.UserProfile, error)
	UploadProfilePic(ctx context.Context, image Attachment) (*models.UserProfile, error)
	RequestReset(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp, newPassword string) error

	ListGigs(ctx context.Context) ([]models.Gig, error)
	GetGig(ctx context.Context, id string) (*models.Gig, error)
	MyGigs(ctx context.Context) ([]models.Gig, error)
	CreateGig(ctx context.Context, p GigPayload) (*models.Gig, error)
	UpdateGig(ctx context.Context, id string, p GigPayload) (*models.Gig, error)
	DeleteGig(ctx context.Context, id string) error
}
