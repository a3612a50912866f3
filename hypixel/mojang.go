package hypixel

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sotah-inc/skyblock/app/hypixel/codes"
)

// NewProfileFromHTTP resolves a display name against the identity api. The
// endpoint answers 204 for names that do not exist.
func NewProfileFromHTTP(res Resolver, name string) (Profile, error) {
	meta, err := res.Download(res.GetProfileURL(name))
	if err != nil {
		return Profile{}, Error{Code: codes.Transport, Cause: err.Error()}
	}

	if meta.Status == http.StatusNoContent {
		return Profile{}, Error{
			Code:   codes.NotFound,
			Status: meta.Status,
			Cause:  fmt.Sprintf("no profile exists for name %s", name),
		}
	}

	if err := validateStatus(meta); err != nil {
		return Profile{}, err
	}

	return NewProfile(meta.Body)
}

// NewProfile parses a json byte array for an identity profile
func NewProfile(body []byte) (Profile, error) {
	p := &Profile{}
	if err := json.Unmarshal(body, p); err != nil {
		return Profile{}, Error{Code: codes.MalformedResponse, Cause: err.Error()}
	}

	if p.ID == "" {
		return Profile{}, Error{Code: codes.MalformedResponse, Cause: "profile response is missing id"}
	}

	return *p, nil
}

// Profile is the stable identity behind a display name
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
