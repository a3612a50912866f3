package hypixel

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sotah-inc/skyblock/app/hypixel/codes"
	"github.com/sotah-inc/skyblock/app/utiltest"
)

func TestForbiddenStatus(t *testing.T) {
	ts := utiltest.ServeBody(http.StatusForbidden, `{"success":false,"cause":"Invalid API key"}`)
	defer ts.Close()

	res := NewResolver("")
	res.GetEndedAuctionsURL = func() string { return ts.URL }

	_, err := NewEndedAuctionsFromHTTP(res)
	if !assert.NotNil(t, err) {
		return
	}

	assert.Equal(t, codes.Forbidden, ErrorCode(err))

	e := Error{}
	if !assert.True(t, errors.As(err, &e)) {
		return
	}
	assert.Equal(t, http.StatusForbidden, e.Status)
	assert.Equal(t, "Invalid API key", e.Cause)
}

func TestRateLimitedStatus(t *testing.T) {
	ts := utiltest.ServeBody(http.StatusTooManyRequests, `{"success":false,"cause":"Key throttle","global":true}`)
	defer ts.Close()

	res := NewResolver("")
	res.GetEndedAuctionsURL = func() string { return ts.URL }

	_, err := NewEndedAuctionsFromHTTP(res)
	if !assert.NotNil(t, err) {
		return
	}

	e := Error{}
	if !assert.True(t, errors.As(err, &e)) {
		return
	}
	assert.Equal(t, codes.RateLimited, e.Code)
	assert.True(t, e.Global)
}

func TestBadRequestStatus(t *testing.T) {
	ts := utiltest.ServeBody(http.StatusBadRequest, `{"success":false,"cause":"Missing one or more fields"}`)
	defer ts.Close()

	res := NewResolver("")
	res.GetEndedAuctionsURL = func() string { return ts.URL }

	_, err := NewEndedAuctionsFromHTTP(res)
	assert.Equal(t, codes.BadRequest, ErrorCode(err))
}

func TestRefusedEnvelope(t *testing.T) {
	ts := utiltest.ServeBody(http.StatusOK, `{"success":false,"cause":"Malformed data"}`)
	defer ts.Close()

	res := NewResolver("")
	res.GetEndedAuctionsURL = func() string { return ts.URL }

	_, err := NewEndedAuctionsFromHTTP(res)
	if !assert.NotNil(t, err) {
		return
	}

	e := Error{}
	if !assert.True(t, errors.As(err, &e)) {
		return
	}
	assert.Equal(t, codes.APIRefused, e.Code)
	assert.Equal(t, "Malformed data", e.Cause)
}

func TestTransportStatus(t *testing.T) {
	ts := utiltest.ServeBody(http.StatusInternalServerError, "upstream fell over")
	defer ts.Close()

	res := NewResolver("")
	res.GetEndedAuctionsURL = func() string { return ts.URL }

	_, err := NewEndedAuctionsFromHTTP(res)
	assert.Equal(t, codes.Transport, ErrorCode(err))
}

func TestMalformedEnvelope(t *testing.T) {
	ts := utiltest.ServeBody(http.StatusOK, "not json")
	defer ts.Close()

	res := NewResolver("")
	res.GetEndedAuctionsURL = func() string { return ts.URL }

	_, err := NewEndedAuctionsFromHTTP(res)
	assert.Equal(t, codes.MalformedResponse, ErrorCode(err))
}

func TestErrorCodeForeignError(t *testing.T) {
	assert.Equal(t, codes.Blank, ErrorCode(errors.New("not ours")))
	assert.Equal(t, codes.Blank, ErrorCode(nil))
}
