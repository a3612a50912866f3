package hypixel

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sotah-inc/skyblock/app/hypixel/codes"
)

// Error - a normalized api client error
type Error struct {
	Code   codes.Code
	Status int
	Cause  string
	Global bool
}

func (e Error) Error() string {
	if e.Cause == "" {
		return fmt.Sprintf("hypixel client error (%s)", e.Code)
	}

	return fmt.Sprintf("hypixel client error (%s): %s", e.Code, e.Cause)
}

// ErrorCode resolves the code of a client error, or codes.Blank for foreign errors
func ErrorCode(err error) codes.Code {
	e := Error{}
	if errors.As(err, &e) {
		return e.Code
	}

	return codes.Blank
}

type responseEnvelope struct {
	Success bool   `json:"success"`
	Cause   string `json:"cause"`
	Global  bool   `json:"global"`
}

// validateStatus maps error statuses onto the error taxonomy. The cause fields
// are parsed best-effort, error bodies are not guaranteed to be json.
func validateStatus(meta ResponseMeta) error {
	env := responseEnvelope{}
	_ = json.Unmarshal(meta.Body, &env)

	switch meta.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return Error{Code: codes.BadRequest, Status: meta.Status, Cause: env.Cause}
	case http.StatusForbidden:
		return Error{Code: codes.Forbidden, Status: meta.Status, Cause: env.Cause}
	case http.StatusTooManyRequests:
		return Error{Code: codes.RateLimited, Status: meta.Status, Cause: env.Cause, Global: env.Global}
	}

	if meta.Status < http.StatusOK || meta.Status >= http.StatusMultipleChoices {
		return Error{
			Code:   codes.Transport,
			Status: meta.Status,
			Cause:  fmt.Sprintf("unexpected status %d", meta.Status),
		}
	}

	return nil
}

// validateEnvelope additionally rejects 2xx bodies carrying success=false
func validateEnvelope(meta ResponseMeta) error {
	if err := validateStatus(meta); err != nil {
		return err
	}

	env := responseEnvelope{}
	if err := json.Unmarshal(meta.Body, &env); err != nil {
		return Error{Code: codes.MalformedResponse, Status: meta.Status, Cause: err.Error()}
	}

	if !env.Success {
		return Error{Code: codes.APIRefused, Status: meta.Status, Cause: env.Cause}
	}

	return nil
}
