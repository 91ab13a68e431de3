package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/gigdesk/internal/client/client"
	"github.com/dmitrijs2005/gigdesk/internal/client/forms"
	"github.com/dmitrijs2005/gigdesk/internal/client/models"
	"github.com/dmitrijs2005/gigdesk/internal/client/session"
	"github.com/dmitrijs2005/gigdesk/internal/common"
	"github.com/dmitrijs2005/gigdesk/internal/logging"
)

// RegisterForm is the sign-up form as entered. SkillsRaw is the
// comma-separated skill list; it is ignored for clients.
type RegisterForm struct {
	Name       string
	Email      string
	Password   []byte
	Role       models.Role
	Bio        string
	SkillsRaw  string
	ProfilePic forms.File
}

// AuthService covers sign-in, sign-up, profile edits and password reset.
//
// Passwords are passed as byte slices and wiped once sent.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (models.UserProfile, error)
	Register(ctx context.Context, f RegisterForm) (models.UserProfile, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, name, bio, skillsRaw string) (models.UserProfile, error)
	UploadProfilePic(ctx context.Context, f forms.File) (models.UserProfile, error)
	RequestReset(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string, newPassword []byte) error
}

type authService struct {
	client  client.Client
	session *session.Store
	log     logging.Logger
}

func NewAuthService(c client.Client, s *session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: c, session: s, log: log}
}

func invalid(field, msg string) error {
	return &forms.ValidationError{Fields: []forms.FieldError{{Field: field, Message: msg}}}
}

func checkEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return invalid("email", "Email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalid("email", "Email is not valid")
	}
	return nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (models.UserProfile, error) {
	defer common.WipeByteArray(password)

	email = strings.TrimSpace(email)
	if err := checkEmail(email); err != nil {
		return models.UserProfile{}, err
	}
	if len(password) == 0 {
		return models.UserProfile{}, invalid("password", "Password is required")
	}

	res, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		a.log.Warn(ctx, "login failed", "class", errorClass(err), "error", err)
		return models.UserProfile{}, fmt.Errorf("login: %w", err)
	}
	if err := a.session.Login(ctx, res.User, res.Token); err != nil {
		return models.UserProfile{}, err
	}
	return res.User, nil
}

func (a *authService) Register(ctx context.Context, f RegisterForm) (models.UserProfile, error) {
	defer common.WipeByteArray(f.Password)

	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	if f.Name == "" {
		return models.UserProfile{}, invalid("name", "Name is required")
	}
	if err := checkEmail(f.Email); err != nil {
		return models.UserProfile{}, err
	}
	if len(f.Password) == 0 {
		return models.UserProfile{}, invalid("password", "Password is required")
	}
	if !f.Role.Valid() {
		return models.UserProfile{}, invalid("role", "Role must be client or freelancer")
	}

	req := client.RegisterRequest{
		Name:       f.Name,
		Email:      f.Email,
		Password:   string(f.Password),
		Role:       f.Role,
		Bio:        f.Bio,
		ProfilePic: f.ProfilePic,
	}
	if f.Role == models.RoleFreelancer {
		req.Skills = forms.NormalizeList(f.SkillsRaw)
	}

	res, err := a.client.Register(ctx, req)
	if err != nil {
		a.log.Warn(ctx, "registration failed", "class", errorClass(err), "error", err)
		return models.UserProfile{}, fmt.Errorf("register: %w", err)
	}
	if err := a.session.Login(ctx, res.User, res.Token); err != nil {
		return models.UserProfile{}, err
	}
	return res.User, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// UpdateProfile sends name, bio and skills, then merges the server's answer
// into the session. The submitted values are merged when the server does not
// echo the profile back.
func (a *authService) UpdateProfile(ctx context.Context, name, bio, skillsRaw string) (models.UserProfile, error) {
	if _, err := a.session.Guard(ctx); err != nil {
		return models.UserProfile{}, err
	}

	upd := client.ProfileUpdate{
		Name:   strings.TrimSpace(name),
		Bio:    strings.TrimSpace(bio),
		Skills: forms.NormalizeList(skillsRaw),
	}
	if upd.Name == "" {
		return models.UserProfile{}, invalid("name", "Name is required")
	}

	got, err := a.client.UpdateProfile(ctx, upd)
	if err != nil {
		a.log.Warn(ctx, "profile update failed", "class", errorClass(err), "error", err)
		return models.UserProfile{}, fmt.Errorf("update profile: %w", err)
	}

	patch := models.ProfilePatch{Name: &upd.Name, Bio: &upd.Bio, Skills: upd.Skills}
	if got != nil && got.ID != "" {
		patch = models.PatchFrom(*got)
		// the server may omit an emptied skill list
		if patch.Skills == nil {
			patch.Skills = upd.Skills
		}
	}
	return a.session.UpdateUser(ctx, patch)
}

func (a *authService) UploadProfilePic(ctx context.Context, f forms.File) (models.UserProfile, error) {
	if _, err := a.session.Guard(ctx); err != nil {
		return models.UserProfile{}, err
	}
	if f == nil {
		return models.UserProfile{}, invalid("image", "Please select an image to upload.")
	}

	got, err := a.client.UploadProfilePic(ctx, f)
	if err != nil {
		a.log.Warn(ctx, "profile picture upload failed", "class", errorClass(err), "error", err)
		return models.UserProfile{}, fmt.Errorf("upload profile picture: %w", err)
	}
	if got == nil || got.ProfilePic == "" {
		return models.UserProfile{}, errors.New("upload profile picture: server returned no picture url")
	}
	return a.session.UpdateUser(ctx, models.ProfilePatch{ProfilePic: &got.ProfilePic})
}

func (a *authService) RequestReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := checkEmail(email); err != nil {
		return err
	}
	if err := a.client.RequestReset(ctx, email); err != nil {
		return fmt.Errorf("request reset: %w", err)
	}
	return nil
}

func (a *authService) VerifyOTP(ctx context.Context, email, otp string, newPassword []byte) error {
	defer common.WipeByteArray(newPassword)

	email = strings.TrimSpace(email)
	if err := checkEmail(email); err != nil {
		return err
	}
	if strings.TrimSpace(otp) == "" {
		return invalid("otp", "OTP is required")
	}
	if len(newPassword) == 0 {
		return invalid("newPassword", "New password is required")
	}
	if err := a.client.VerifyOTP(ctx, email, strings.TrimSpace(otp), string(newPassword)); err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}
	return nil
}
