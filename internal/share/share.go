// Package share encodes a study into a compact self-contained token and
// decodes it back for a read-only view. No server is involved: the token
// itself carries the passage and meditation content.
package share

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"io"
	"strings"

	apierrors "github.com/daehopark/malsum/internal/errors"
	"github.com/daehopark/malsum/internal/models"
)

// Version prefix lets a future format change stay decodable.
const tokenPrefix = "m1."

// Snapshot is the shareable portion of a study: the passage plus whatever
// meditation content has been generated.
type Snapshot struct {
	Reference      string `json:"r"`
	Text           string `json:"t"`
	Observation    string `json:"o,omitempty"`
	Interpretation string `json:"i,omitempty"`
	Application    string `json:"a,omitempty"`
}

// FromSession builds a Snapshot from a passage and its meditation content.
func FromSession(passage models.Passage, meditation models.MeditationContent) Snapshot {
	return Snapshot{
		Reference:      passage.Reference,
		Text:           passage.Text,
		Observation:    meditation.Observation,
		Interpretation: meditation.Interpretation,
		Application:    meditation.Application,
	}
}

// Passage returns the snapshot's passage.
func (s Snapshot) Passage() models.Passage {
	return models.Passage{Reference: s.Reference, Text: s.Text}
}

// Meditation returns the snapshot's meditation content.
func (s Snapshot) Meditation() models.MeditationContent {
	return models.MeditationContent{
		Observation:    s.Observation,
		Interpretation: s.Interpretation,
		Application:    s.Application,
	}
}

// Encode serializes a snapshot into a URL-safe token.
func Encode(snap Snapshot) (string, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := w.Write(raw); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return tokenPrefix + base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reconstructs a snapshot from a token. Any malformed input yields a
// ShareDecodeError; callers log it and stay in normal mode.
func Decode(token string) (Snapshot, error) {
	token = strings.TrimSpace(token)
	if !strings.HasPrefix(token, tokenPrefix) {
		return Snapshot{}, &apierrors.ShareDecodeError{Reason: "unknown format"}
	}

	compressed, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(token, tokenPrefix))
	if err != nil {
		return Snapshot{}, &apierrors.ShareDecodeError{Reason: "not base64", Err: err}
	}

	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()
	raw, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, &apierrors.ShareDecodeError{Reason: "corrupted payload", Err: err}
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, &apierrors.ShareDecodeError{Reason: "invalid content", Err: err}
	}
	if snap.Reference == "" || snap.Text == "" {
		return Snapshot{}, &apierrors.ShareDecodeError{Reason: "missing passage"}
	}

	return snap, nil
}
