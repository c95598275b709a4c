package bento

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlacklistStatus(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{"description":"ok","results":{"spamhaus":false}}`)

	result, err := client.BlacklistStatus(context.Background(), BlacklistQuery{Domain: "example.com", IP: "192.0.2.1"})
	require.NoError(t, err)
	assert.Equal(t, "ok", result["description"])

	req := f.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/experimental/blacklist.json", req.Path)
	assert.Equal(t, "example.com", req.Query.Get("domain"))
	assert.Equal(t, "192.0.2.1", req.Query.Get("ip"))
}

func TestBlacklistStatus_Validation(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{}`)

	_, err := client.BlacklistStatus(context.Background(), BlacklistQuery{})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = client.BlacklistStatus(context.Background(), BlacklistQuery{IP: "999.1.1.1"})
	assert.ErrorIs(t, err, ErrInvalidIPAddress)

	assert.Equal(t, 0, f.calls())
}

func TestValidateEmail(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{"valid":true}`)

	result, err := client.ValidateEmail(context.Background(), EmailValidation{
		Email: "test@example.com",
		Name:  "Ada Lovelace",
		IP:    "2001:db8::1",
	})
	require.NoError(t, err)
	assert.True(t, result.Valid)

	req := f.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/experimental/validation", req.Path)
	assert.JSONEq(t, `{"email":"test@example.com","name":"Ada Lovelace","ip":"2001:db8::1"}`, string(req.Body))
}

func TestValidateEmail_Validation(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{"valid":true}`)

	_, err := client.ValidateEmail(context.Background(), EmailValidation{Email: "nope"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = client.ValidateEmail(context.Background(), EmailValidation{Email: "a@b.com", IP: "localhost"})
	assert.ErrorIs(t, err, ErrInvalidIPAddress)

	assert.Equal(t, 0, f.calls())
}

func TestModerateContent(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{"flagged":false}`)

	result, err := client.ModerateContent(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, false, result["flagged"])

	req := f.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/experimental/content_moderation", req.Path)
	assert.Equal(t, "hello world", req.Query.Get("content"))
	assert.Empty(t, req.Body)
}

func TestPredictGender(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{"gender":"female","confidence":0.9}`)

	result, err := client.PredictGender(context.Background(), "Ada")
	require.NoError(t, err)
	assert.Equal(t, "female", result["gender"])
	assert.Equal(t, "Ada", f.last(t).Query.Get("name"))
}

func TestGeolocateIP(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{"country_name":"Nowhere"}`)

	result, err := client.GeolocateIP(context.Background(), "198.51.100.7")
	require.NoError(t, err)
	assert.Equal(t, "Nowhere", result["country_name"])

	req := f.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/experimental/geolocation", req.Path)
	assert.Equal(t, "198.51.100.7", req.Query.Get("ip"))
}

func TestExperimental_Validation(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{}`)

	_, err := client.ModerateContent(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidContent)

	_, err = client.PredictGender(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidName)

	for _, ip := range []string{"", "not-an-ip", "1.2.3", "fe80::1%eth0"} {
		_, err = client.GeolocateIP(context.Background(), ip)
		assert.ErrorIs(t, err, ErrInvalidIPAddress, "ip %q", ip)
	}

	assert.Equal(t, 0, f.calls())
}
