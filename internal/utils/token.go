package utils // package utils provides helper functions for session token creation

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionToken represents a signed HS256 token identifying one selection
// session.  The token pins the session to a (venue, show) pair so a client
// cannot replay toggles against a different show, and carries the selection
// cap so the front end can render it without an extra round trip.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// SessionClaims is the decoded payload of a session token.
type SessionClaims struct {
	SessionID     string
	VenueID       string
	ShowID        string
	MaxSelectable int
}

// NewSessionToken builds and signs a session token.  Claims: sid (session
// id), ven (venue), shw (show), max (selection cap), plus standard exp/iat.
func NewSessionToken(secret, sessionID, venueID, showID string, maxSelectable, ttlMin int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sid": sessionID,
		"ven": venueID,
		"shw": showID,
		"max": maxSelectable,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken validates a raw token string and extracts its claims.
// Only HMAC-signed tokens are accepted.
func ParseSessionToken(secret, raw string) (SessionClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return SessionClaims{}, err
	}
	if !tok.Valid {
		return SessionClaims{}, fmt.Errorf("invalid token")
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, fmt.Errorf("invalid claims")
	}
	out := SessionClaims{}
	if v, ok := mc["sid"].(string); ok {
		out.SessionID = v
	}
	if v, ok := mc["ven"].(string); ok {
		out.VenueID = v
	}
	if v, ok := mc["shw"].(string); ok {
		out.ShowID = v
	}
	if v, ok := mc["max"].(float64); ok { // JSON numbers decode as float64
		out.MaxSelectable = int(v)
	}
	if out.SessionID == "" || out.VenueID == "" || out.ShowID == "" {
		return SessionClaims{}, fmt.Errorf("incomplete session claims")
	}
	return out, nil
}
