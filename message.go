package vaa

import (
	"encoding/json"
	"errors"

	"github.com/wormhole-foundation/vaa/payload"
)

// Message is a VAA together with its decoded payload.
type Message struct {
	VAA     *VAA
	Payload payload.Payload
}

// Decode parses the envelope and its payload. A governance payload that names a known module and
// action but cannot be read makes the whole VAA malformed. Payloads of unknown shape decode to
// *payload.Unrecognized.
func Decode(data []byte) (*Message, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}

	p, err := payload.Parse(v.Payload)
	if err != nil {
		var malformed *payload.MalformedPayloadError
		if errors.As(err, &malformed) {
			return nil, NewMalformedEnvelopeError("payload", err.Error())
		}

		return nil, err
	}

	return &Message{VAA: v, Payload: p}, nil
}

// Marshal encodes the payload into a copy of the envelope and encodes the envelope.
func (m *Message) Marshal() ([]byte, error) {
	raw, err := payload.Encode(m.Payload)
	if err != nil {
		return nil, err
	}

	v := m.VAA.Clone()
	v.Payload = raw

	return v.Marshal()
}

type messageJSON struct {
	*VAA
	Digest    string          `json:"digest"`
	MessageID string          `json:"id"`
	Decoded   payload.Payload `json:"decodedPayload"`
}

// MarshalJSON renders the envelope, its digest and id, and the decoded payload.
func (m *Message) MarshalJSON() ([]byte, error) {
	digest, err := m.VAA.HexDigest()
	if err != nil {
		return nil, err
	}

	return json.Marshal(messageJSON{
		VAA:       m.VAA,
		Digest:    digest,
		MessageID: m.VAA.MessageID(),
		Decoded:   m.Payload,
	})
}
