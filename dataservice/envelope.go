package dataservice

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Error is what every client method returns on failure. Its JSON form is {"error": "..."}.
type Error struct {
	Message string `json:"error"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string { return e.Message }

func newError(status int, msg string) *Error {
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Message: msg, Status: status}
}

type envelope struct {
	Body         json.RawMessage `json:"body"`
	ErrorMessage json.RawMessage `json:"errorMessage"`
}

// DecodeEnvelope bóc lớp vỏ {body: "<json string>"} / {errorMessage} của API phía sau.
// body là JSON được stringify hai lần; đây là hợp đồng wire cố định, không sửa.
func DecodeEnvelope(raw []byte) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return json.RawMessage(raw), nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return json.RawMessage(raw), nil
	}

	if present(env.ErrorMessage) {
		var msg string
		if err := json.Unmarshal(env.ErrorMessage, &msg); err != nil {
			msg = string(env.ErrorMessage)
		}
		return nil, &Error{Message: msg, Status: http.StatusBadGateway}
	}

	if present(env.Body) {
		var s string
		if err := json.Unmarshal(env.Body, &s); err != nil {
			// body đã là object, không bị stringify
			return env.Body, nil
		}
		inner := bytes.TrimSpace([]byte(s))
		if json.Valid(inner) {
			return json.RawMessage(inner), nil
		}
		// không parse được thì trả text thô
		return env.Body, nil
	}

	return json.RawMessage(raw), nil
}

func present(m json.RawMessage) bool {
	m = bytes.TrimSpace(m)
	return len(m) > 0 && string(m) != "null"
}
