package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gigdesk/internal/client/client"
	"github.com/dmitrijs2005/gigdesk/internal/client/models"
	"github.com/dmitrijs2005/gigdesk/internal/client/session"
)

var errNotStubbed = errors.New("not stubbed")

// fakeClient implements client.Client with per-method hooks.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	LoginFn            func(email, password string) (*client.AuthResult, error)
	RegisterFn         func(req client.RegisterRequest) (*client.AuthResult, error)
	MeFn               func(token string) (*models.UserProfile, error)
	UpdateProfileFn    func(upd client.ProfileUpdate) (*models.UserProfile, error)
	UploadProfilePicFn func(image client.Attachment) (*models.UserProfile, error)
	ListGigsFn         func() ([]models.Gig, error)
	GetGigFn           func(id string) (*models.Gig, error)
	MyGigsFn           func() ([]models.Gig, error)
	CreateGigFn        func(ctx context.Context, p client.GigPayload) (*models.Gig, error)
	UpdateGigFn        func(ctx context.Context, id string, p client.GigPayload) (*models.Gig, error)
	DeleteGigFn        func(id string) error

	LastResetEmail string
	LastOTP        [3]string
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*client.AuthResult, error) {
	f.record("Login")
	if f.LoginFn == nil {
		return nil, errNotStubbed
	}
	return f.LoginFn(email, password)
}

func (f *fakeClient) Register(_ context.Context, req client.RegisterRequest) (*client.AuthResult, error) {
	f.record("Register")
	if f.RegisterFn == nil {
		return nil, errNotStubbed
	}
	return f.RegisterFn(req)
}

func (f *fakeClient) Me(_ context.Context, token string) (*models.UserProfile, error) {
	f.record("Me")
	if f.MeFn == nil {
		return nil, errNotStubbed
	}
	return f.MeFn(token)
}

func (f *fakeClient) UpdateProfile(_ context.Context, upd client.ProfileUpdate) (*models.UserProfile, error) {
	f.record("UpdateProfile")
	if f.UpdateProfileFn == nil {
		return nil, errNotStubbed
	}
	return f.UpdateProfileFn(upd)
}

func (f *fakeClient) UploadProfilePic(_ context.Context, image client.Attachment) (*models.UserProfile, error) {
	f.record("UploadProfilePic")
	if f.UploadProfilePicFn == nil {
		return nil, errNotStubbed
	}
	return f.UploadProfilePicFn(image)
}

func (f *fakeClient) RequestReset(_ context.Context, email string) error {
	f.record("RequestReset")
	f.LastResetEmail = email
	return nil
}

func (f *fakeClient) VerifyOTP(_ context.Context, email, otp, newPassword string) error {
	f.record("VerifyOTP")
	f.LastOTP = [3]string{email, otp, newPassword}
	return nil
}

func (f *fakeClient) ListGigs(context.Context) ([]models.Gig, error) {
	f.record("ListGigs")
	if f.ListGigsFn == nil {
		return nil, errNotStubbed
	}
	return f.ListGigsFn()
}

func (f *fakeClient) GetGig(_ context.Context, id string) (*models.Gig, error) {
	f.record("GetGig")
	if f.GetGigFn == nil {
		return nil, errNotStubbed
	}
	return f.GetGigFn(id)
}

func (f *fakeClient) MyGigs(context.Context) ([]models.Gig, error) {
	f.record("MyGigs")
	if f.MyGigsFn == nil {
		return nil, errNotStubbed
	}
	return f.MyGigsFn()
}

func (f *fakeClient) CreateGig(ctx context.Context, p client.GigPayload) (*models.Gig, error) {
	f.record("CreateGig")
	if f.CreateGigFn == nil {
		return nil, errNotStubbed
	}
	return f.CreateGigFn(ctx, p)
}

func (f *fakeClient) UpdateGig(ctx context.Context, id string, p client.GigPayload) (*models.Gig, error) {
	f.record("UpdateGig")
	if f.UpdateGigFn == nil {
		return nil, errNotStubbed
	}
	return f.UpdateGigFn(ctx, id, p)
}

func (f *fakeClient) DeleteGig(_ context.Context, id string) error {
	f.record("DeleteGig")
	if f.DeleteGigFn == nil {
		return errNotStubbed
	}
	return f.DeleteGigFn(id)
}

var (
	freelancer = models.UserProfile{ID: "u1", Name: "Ann", Role: models.RoleFreelancer, Skills: []string{"figma"}}
	buyer      = models.UserProfile{ID: "c1", Name: "Bob", Role: models.RoleClient}
)

// signedIn returns a resolved store with u signed in, or anonymous when u
// is nil.
func signedIn(fc *fakeClient, u *models.UserProfile) *session.Store {
	s := session.NewStore(session.NewMemoryPersistence(), fc)
	s.Restore(context.Background())
	if u != nil {
		if err := s.Login(context.Background(), *u, "tok-"+u.ID); err != nil {
			panic(err)
		}
	}
	return s
}
