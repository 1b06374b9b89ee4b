package app

import (
	"errors"
	"fmt"
	"time"

	"domino/internal/domain"

	"github.com/form3tech-oss/jwt-go"
)

var ErrMatchNotFinished = errors.New("match not finished")

// Receipt is the verified content of a signed match outcome.
type Receipt struct {
	MatchID   string
	Issuer    string
	Reason    domain.EndReason
	Winner    string
	Rounds    int
	HandSizes []domain.HandCount
}

// ReceiptService signs finished match outcomes as HS256 tokens.
type ReceiptService struct {
	secret string
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewReceiptService(secret, issuer string, ttl time.Duration) *ReceiptService {
	return &ReceiptService{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Sign returns a token describing the outcome of a finished match.
func (s *ReceiptService) Sign(match *domain.Match) (string, error) {
	if s == nil {
		return "", fmt.Errorf("receipt service is nil")
	}
	if s.secret == "" {
		return "", fmt.Errorf("receipt secret is required")
	}
	if match == nil || !match.Finished() || match.Outcome == nil {
		return "", ErrMatchNotFinished
	}

	hands := make([]interface{}, 0, len(match.Outcome.HandSizes))
	for _, hc := range match.Outcome.HandSizes {
		hands = append(hands, map[string]interface{}{"player": hc.Player, "tiles": hc.Tiles})
	}

	now := s.now()
	claims := jwt.MapClaims{
		"iss":    s.issuer,
		"sub":    match.ID,
		"iat":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
		"reason": string(match.Outcome.Reason),
		"winner": match.Outcome.Winner,
		"rounds": match.Outcome.Rounds,
		"hands":  hands,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify checks the signature, expiry and issuer of a token and returns its content.
func (s *ReceiptService) Verify(tokenString string) (*Receipt, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse receipt: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid receipt")
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, fmt.Errorf("unexpected receipt issuer")
	}

	r := &Receipt{
		MatchID: stringClaim(claims, "sub"),
		Issuer:  stringClaim(claims, "iss"),
		Reason:  domain.EndReason(stringClaim(claims, "reason")),
		Winner:  stringClaim(claims, "winner"),
	}
	if rounds, ok := claims["rounds"].(float64); ok {
		r.Rounds = int(rounds)
	}
	if hands, ok := claims["hands"].([]interface{}); ok {
		for _, h := range hands {
			m, ok := h.(map[string]interface{})
			if !ok {
				continue
			}
			tiles, _ := m["tiles"].(float64)
			player, _ := m["player"].(string)
			r.HandSizes = append(r.HandSizes, domain.HandCount{Player: player, Tiles: int(tiles)})
		}
	}
	return r, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
