package security

import (
	"context"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// InitFirebaseAuth initializes a Firebase Admin SDK auth client from a
// service account credentials file. An empty path disables Firebase login
// and returns a nil client.
func InitFirebaseAuth(ctx context.Context, credentialsFile string) (*fbauth.Client, error) {
	if credentialsFile == "" {
		return nil, nil
	}
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, err
	}
	return app.Auth(ctx)
}
