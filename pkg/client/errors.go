package client

import (
	"encoding/json"
	"net/http"
)

// fallbackMessage is shown when the backend gave us nothing readable.
const fallbackMessage = "något gick fel, försök igen senare"

type FailureKind int

const (
	FailureValidation FailureKind = iota
	FailureConflict
	FailureNotFound
	FailureRemote
)

// Failure is the only error type this client returns. Callers get a typed
// kind and a human-readable message, never a raw transport error or a JSON
// blob.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

func remoteFailure(err error) *Failure {
	return &Failure{Kind: FailureRemote, Message: err.Error()}
}

func failureFromResponse(statusCode int, body []byte) *Failure {
	kind := FailureRemote

	switch statusCode {
	case http.StatusBadRequest:
		kind = FailureValidation
	case http.StatusNotFound:
		kind = FailureNotFound
	case http.StatusConflict:
		kind = FailureConflict
	}

	return &Failure{Kind: kind, Message: messageFromBody(body)}
}

// messageFromBody digs a readable message out of an error body. Backends are
// not consistent about the shape, so the fields are tried in priority order:
// error.message, then message, then error as a plain string.
func messageFromBody(body []byte) string {
	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}

	if json.Unmarshal(body, &envelope) != nil {
		return fallbackMessage
	}

	if len(envelope.Error) > 0 {
		var obj struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(envelope.Error, &obj) == nil && obj.Message != "" {
			return obj.Message
		}
	}

	if envelope.Message != "" {
		return envelope.Message
	}

	if len(envelope.Error) > 0 {
		var plain string
		if json.Unmarshal(envelope.Error, &plain) == nil && plain != "" {
			return plain
		}
	}

	return fallbackMessage
}
