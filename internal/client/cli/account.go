package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gigdesk/internal/client/forms"
	"github.com/dmitrijs2005/gigdesk/internal/client/models"
	"github.com/dmitrijs2005/gigdesk/internal/client/services"
	"github.com/dmitrijs2005/gigdesk/internal/filex"
)

func (a *App) Login(ctx context.Context) error {
	if u := a.currentUser(ctx); u != nil {
		a.printf("Already logged in as %s. Log out first.\n", u.Name)
		return nil
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}

	u, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.report(ctx, err, "Login failed")
		return err
	}
	a.printf("Welcome, %s!\n", u.Name)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	if u := a.currentUser(ctx); u != nil {
		a.printf("Already logged in as %s. Log out first.\n", u.Name)
		return nil
	}

	var f services.RegisterForm
	var err error
	if f.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if f.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if f.Password, err = GetPassword("Password", a.out); err != nil {
		return err
	}
	role, err := GetTextOr(a.reader, "Role (client/freelancer)", string(models.RoleClient), a.out)
	if err != nil {
		return err
	}
	f.Role = models.Role(strings.ToLower(role))
	if f.Bio, err = GetSimpleText(a.reader, "Bio (optional)", a.out); err != nil {
		return err
	}
	if f.Role == models.RoleFreelancer {
		if f.SkillsRaw, err = GetSimpleText(a.reader, "Skills (comma separated, optional)", a.out); err != nil {
			return err
		}
	}
	pic, err := GetSimpleText(a.reader, "Profile picture path (optional)", a.out)
	if err != nil {
		return err
	}
	if pic != "" {
		file, err := filex.OpenLocal(pic)
		if err != nil {
			a.printf("Cannot use %s: %v\n", pic, err)
			return err
		}
		f.ProfilePic = file
	}

	u, err := a.auth.Register(ctx, f)
	if err != nil {
		a.report(ctx, err, "Registration failed. Please try again.")
		return err
	}
	a.printf("Account created. Welcome, %s!\n", u.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.report(ctx, err, "Logout failed")
		return err
	}
	a.printf("Logged out.\n")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.session.Guard(ctx)
	if err != nil {
		a.report(ctx, err, "Not logged in")
		return err
	}
	printProfile(a.out, u)
	return nil
}

// Profile edits name, bio and skills. Enter keeps the current value.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.session.Guard(ctx)
	if err != nil {
		a.report(ctx, err, "Not logged in")
		return err
	}

	name, err := GetTextOr(a.reader, "Name", u.Name, a.out)
	if err != nil {
		return err
	}
	bio, err := GetTextOr(a.reader, "Bio", u.Bio, a.out)
	if err != nil {
		return err
	}
	skills, err := GetTextOr(a.reader, "Skills (comma separated, '-' to clear)", forms.JoinList(u.Skills), a.out)
	if err != nil {
		return err
	}
	if skills == "-" {
		skills = ""
	}

	updated, err := a.auth.UpdateProfile(ctx, name, bio, skills)
	if err != nil {
		a.report(ctx, err, "Failed to update profile")
		return err
	}
	a.printf("Profile updated successfully\n")
	printProfile(a.out, updated)
	return nil
}

func (a *App) Avatar(ctx context.Context, path string) error {
	file, err := filex.OpenLocal(path)
	if err != nil {
		a.printf("Cannot use %s: %v\n", path, err)
		return err
	}
	u, err := a.auth.UploadProfilePic(ctx, file)
	if err != nil {
		a.report(ctx, err, "Failed to update profile picture")
		return err
	}
	a.printf("Profile picture updated: %s\n", u.ProfilePic)
	return nil
}

// Reset runs the two-step password reset: request an OTP by email, then
// submit it with the new password.
func (a *App) Reset(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Registered email", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.RequestReset(ctx, email); err != nil {
		a.report(ctx, err, "Failed to send reset OTP")
		return err
	}
	a.printf("OTP sent to your email\n")

	otp, err := GetSimpleText(a.reader, "OTP", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("New password", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.VerifyOTP(ctx, email, otp, password); err != nil {
		a.report(ctx, err, "Reset failed")
		return err
	}
	a.printf("Password reset successful! Please login with your new password.\n")
	return nil
}
