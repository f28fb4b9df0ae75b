package services

import (
	"context"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// SessionTTL is how long an admin session cookie stays valid
const SessionTTL = 5 * 24 * time.Hour

// Session is the identity extracted from a verified session cookie
type Session struct {
	UID   string
	Email string
	Name  string
}

// SessionManager exchanges Firebase ID tokens for session cookies and verifies them
type SessionManager interface {
	CreateSession(ctx context.Context, idToken string) (string, error)
	VerifySession(ctx context.Context, cookie string) (*Session, error)
}

// FirebaseSessions implements SessionManager with the Firebase Admin SDK
type FirebaseSessions struct {
	client *auth.Client
}

// InitFirebase initializes the Firebase Admin SDK and returns a session manager
func InitFirebase(ctx context.Context, credPath string) (*FirebaseSessions, error) {
	opt := option.WithCredentialsFile(credPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &FirebaseSessions{client: client}, nil
}

// CreateSession verifies the ID token and mints a session cookie valid for SessionTTL
func (f *FirebaseSessions) CreateSession(ctx context.Context, idToken string) (string, error) {
	if _, err := f.client.VerifyIDToken(ctx, idToken); err != nil {
		return "", err
	}
	return f.client.SessionCookie(ctx, idToken, SessionTTL)
}

// VerifySession checks a session cookie and returns who it belongs to
func (f *FirebaseSessions) VerifySession(ctx context.Context, cookie string) (*Session, error) {
	token, err := f.client.VerifySessionCookie(ctx, cookie)
	if err != nil {
		return nil, err
	}
	s := &Session{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		s.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		s.Name = name
	}
	return s, nil
}
