package firebase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Credentials are the service-account fields read from the environment.
// The private key may arrive with literal "\n" sequences.
type Credentials struct {
	ProjectID   string
	ClientEmail string
	PrivateKey  string
}

// App is the process-wide Firebase handle, created once at startup and
// injected into the layers that need it.
type App struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

func New(ctx context.Context, creds Credentials) (*App, error) {
	sa := map[string]string{
		"type":         "service_account",
		"project_id":   creds.ProjectID,
		"client_email": creds.ClientEmail,
		"private_key":  strings.ReplaceAll(creds.PrivateKey, `\n`, "\n"),
	}
	raw, err := json.Marshal(sa)
	if err != nil {
		return nil, fmt.Errorf("marshal service account: %w", err)
	}

	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: creds.ProjectID},
		option.WithCredentialsJSON(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize auth client: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize firestore client: %w", err)
	}

	return &App{Auth: authClient, Firestore: fsClient}, nil
}

func (a *App) Close() error {
	return a.Firestore.Close()
}
