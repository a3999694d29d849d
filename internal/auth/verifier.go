package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the canonical result of a successful token verification.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// TokenVerifier validates a bearer token and extracts the caller's identity.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

const securetokenCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

// FirebaseVerifier verifies Firebase-issued ID tokens: RS256 signature against
// Google's securetoken certificate set, plus issuer/audience/time claims.
type FirebaseVerifier struct {
	projectID string
	issuer    string
	certs     *certCache
}

func NewFirebaseVerifier(httpClient *http.Client, projectID string) (*FirebaseVerifier, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, fmt.Errorf("firebase project id is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &FirebaseVerifier{
		projectID: projectID,
		issuer:    "https://securetoken.google.com/" + projectID,
		certs:     newCertCache(httpClient, securetokenCertsURL),
	}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, fmt.Errorf("id token is empty")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.projectID),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)

	claims := jwt.MapClaims{}
	tok, err := parser.ParseWithClaims(idToken, claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if strings.TrimSpace(kid) == "" {
			return nil, fmt.Errorf("missing kid")
		}
		return v.certs.getKey(ctx, kid)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid id token: %w", err)
	}
	if tok == nil || !tok.Valid {
		return nil, fmt.Errorf("invalid id token")
	}

	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return nil, fmt.Errorf("missing sub claim")
	}

	ident := &Identity{UID: sub}
	if email, _ := claims["email"].(string); email != "" {
		ident.Email = email
	}
	if name, _ := claims["name"].(string); name != "" {
		ident.Name = name
	}
	return ident, nil
}
