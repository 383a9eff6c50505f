package cli

import (
	"context"
	"log"
	"os"
	"strings"
)

// getSimpleText and getSecret are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getSecret = GetSecret

// Login runs the OTP flow: prompt for an email, ask the backend to send a
// one-time password, then prompt for the code. An empty code requests a
// resend, which is rate-limited client-side; entering "q" cancels the flow.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.auth.SendOtp(ctx, email)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	log.Println(msg)

	cd := newCooldown(otpResendInterval)
	for {
		otp, err := getSecret("Enter OTP (empty to resend, 'q' to cancel)", os.Stdout)
		if err != nil {
			return err
		}

		switch otp {
		case "":
			if !cd.Ready() {
				log.Printf("Please wait %d seconds before requesting a new OTP", cd.Remaining())
				continue
			}
			msg, err := a.auth.SendOtp(ctx, email)
			if err != nil {
				log.Printf("error: %v", err)
				continue
			}
			log.Println(msg)
			cd.Restart(otpResendInterval)
			continue
		case "q":
			return nil
		}

		if err := a.auth.Login(ctx, email, otp); err != nil {
			log.Printf("Login unsuccessfull: %s", err.Error())
			continue
		}
		break
	}

	if s, err := a.auth.Current(); err == nil && s != nil && s.Name != "" {
		log.Printf("Welcome, %s!", s.Name)
	} else {
		log.Printf("Login successfull")
	}
	return nil
}

// Logout drops the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	log.Println("Logged out")
	return nil
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	s, err := a.auth.Current()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if s == nil || !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn("Name: " + s.Name)
	printlnFn("Email: " + s.Email)
	if len(s.Roles) > 0 {
		printlnFn("Roles: " + strings.Join(s.Roles, ", "))
	}
	return nil
}
