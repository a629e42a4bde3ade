// Package share encodes a meeting into a compact, privacy-preserving token
// for share URLs.
//
// Only aggregate fields ever enter the payload: no participant IDs, roles,
// salaries, or individual rates. The wire format is frozen for
// compatibility with previously generated links: JSON, percent-escaped the
// way JavaScript's encodeURIComponent does it, then standard base64.
package share

import (
	"encoding/base64"
	"encoding/json"
	"math"

	"github.com/meetcost/meetcost/internal/models"
)

// Payload is the minimal aggregate projection of a Meeting carried in a
// share URL. Field names are single letters to keep the URL short and are
// part of the wire format.
type Payload struct {
	// Timestamp is the meeting start in epoch milliseconds.
	Timestamp int64 `json:"t"`
	// Duration in seconds.
	Duration int64 `json:"d"`
	// ParticipantCount is the total attendee count.
	ParticipantCount int `json:"n"`
	// TotalCost rounded to 2 decimals.
	TotalCost float64 `json:"c"`
	// AverageRate rounded to 2 decimals.
	AverageRate float64 `json:"a"`
	// Sector is the optional sector classification.
	Sector models.SectorType `json:"s,omitempty"`
	// Description is the meeting type/description, truncated to 100 chars.
	Description string `json:"m,omitempty"`
	// Fulltime/Contractor/Unknown count participants per employment type.
	Fulltime   int `json:"f"`
	Contractor int `json:"ct"`
	Unknown    int `json:"un"`
}

const maxDescriptionChars = 100

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToPayload projects a meeting down to its whitelisted aggregates.
func ToPayload(m *models.Meeting) Payload {
	b := m.Breakdown()
	desc := m.MeetingDescription
	if runes := []rune(desc); len(runes) > maxDescriptionChars {
		desc = string(runes[:maxDescriptionChars])
	}
	return Payload{
		Timestamp:        m.Timestamp,
		Duration:         m.Duration,
		ParticipantCount: len(m.Participants),
		TotalCost:        round2(m.TotalCost),
		AverageRate:      round2(m.AverageRate),
		Sector:           m.SectorType,
		Description:      desc,
		Fulltime:         b.Fulltime,
		Contractor:       b.Contractor,
		Unknown:          b.Unknown,
	}
}

// Encode serializes a meeting's share payload into a URL-safe token:
// base64(uriEncode(json)).
func Encode(m *models.Meeting) (string, error) {
	raw, err := json.Marshal(ToPayload(m))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString([]byte(uriEncode(string(raw)))), nil
}

// Decode reverses Encode. Any failure (invalid base64, invalid percent
// escape, invalid JSON) yields nil; decoding never panics or errors out
// to the caller.
func Decode(token string) *Payload {
	escaped, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil
	}
	raw, err := uriDecode(string(escaped))
	if err != nil {
		return nil
	}
	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	return &p
}

// URL builds the shareable link for a meeting: <origin>/share?r=<token>.
func URL(m *models.Meeting, origin string) (string, error) {
	token, err := Encode(m)
	if err != nil {
		return "", err
	}
	return origin + "/share?r=" + token, nil
}
