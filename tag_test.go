package bento

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTags(t *testing.T) {
	body := `{"data":[
		{"id":"1","type":"tags","attributes":{"name":"lead","created_at":"2024-01-01T00:00:00Z","discarded_at":null,"site_id":7}},
		{"id":"2","type":"tags","attributes":{"name":"old","created_at":"2023-01-01T00:00:00Z","discarded_at":"2023-06-01T00:00:00Z","site_id":7}}
	]}`
	client, f := newFakeClient(t, http.StatusOK, body)

	tags, err := client.ListTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)

	assert.Equal(t, "lead", tags[0].Attributes.Name)
	assert.Nil(t, tags[0].Attributes.DiscardedAt)
	assert.Equal(t, 7, tags[0].Attributes.SiteID)
	require.NotNil(t, tags[1].Attributes.DiscardedAt)
	assert.Equal(t, "2023-06-01T00:00:00Z", *tags[1].Attributes.DiscardedAt)

	req := f.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/fetch/tags", req.Path)
}

func TestCreateTag(t *testing.T) {
	body := `{"data":{"id":"3","type":"tags","attributes":{"name":"vip","created_at":"2024-01-01T00:00:00Z","site_id":7}}}`
	client, f := newFakeClient(t, http.StatusOK, body)

	tag, err := client.CreateTag(context.Background(), "vip")
	require.NoError(t, err)
	assert.Equal(t, "3", tag.ID)
	assert.JSONEq(t, `{"tag":{"name":"vip"}}`, string(f.last(t).Body))
}

func TestCreateTag_EmptyName(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{}`)

	_, err := client.CreateTag(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, 0, f.calls())
}

func TestListFields(t *testing.T) {
	body := `{"data":[
		{"id":"1","type":"visitors-fields","attributes":{"name":"Company","key":"company","whitelisted":true,"created_at":"2024-02-03T04:05:06Z"}},
		{"id":"2","type":"visitors-fields","attributes":{"name":"Plan","key":"plan"}}
	]}`
	client, f := newFakeClient(t, http.StatusOK, body)

	fields, err := client.ListFields(context.Background())
	require.NoError(t, err)
	require.Len(t, fields, 2)

	assert.Equal(t, "company", fields[0].Attributes.Key)
	require.NotNil(t, fields[0].Attributes.Whitelisted)
	assert.True(t, *fields[0].Attributes.Whitelisted)
	require.NotNil(t, fields[0].Attributes.CreatedAt)
	assert.Equal(t, 2024, fields[0].Attributes.CreatedAt.Year())
	assert.Nil(t, fields[1].Attributes.CreatedAt)
	assert.Equal(t, "/fetch/fields", f.last(t).Path)
}

func TestCreateField(t *testing.T) {
	body := `{"data":{"id":"9","type":"visitors-fields","attributes":{"name":"Plan","key":"plan"}}}`
	client, f := newFakeClient(t, http.StatusOK, body)

	field, err := client.CreateField(context.Background(), "plan")
	require.NoError(t, err)
	assert.Equal(t, "plan", field.Attributes.Key)

	req := f.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.JSONEq(t, `{"field":{"key":"plan"}}`, string(req.Body))
}

func TestCreateField_EmptyKey(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{}`)

	_, err := client.CreateField(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, 0, f.calls())
}
