package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"callboard/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RequestHeaders(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		fmt.Fprint(w, `{"success":true,"data":[]}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, session.Static{AccessToken: "tok-123"}, time.Second)
	_, err := client.ListPosts(context.Background(), ListPostsParams{})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_NoAuthHeaderWhenSignedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"success":true,"data":[]}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, session.Static{}, time.Second)
	_, err := client.ListPosts(context.Background(), ListPostsParams{})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_StatusErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"title is required"}`, "title is required"},
		{"error field", `{"error":"nope"}`, "nope"},
		{"message wins over error", `{"message":"a","error":"b"}`, "a"},
		{"unparseable body", `<html>bad gateway</html>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, session.Static{AccessToken: "tok"}, time.Second)
			err := client.ToggleLike(context.Background(), "p1")

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
			assert.Equal(t, tt.want, statusErr.Message)
		})
	}
}

func TestStatusError_UserMessage(t *testing.T) {
	withMessage := &StatusError{StatusCode: 409, Message: "already applied"}
	assert.Equal(t, "already applied", withMessage.UserMessage("Something went wrong"))

	bare := &StatusError{StatusCode: 500}
	assert.Equal(t, "Something went wrong", bare.UserMessage("Something went wrong"))
}

func TestClient_ListApplicationsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, session.Static{}, time.Second)
	apps, err := client.ListApplications(context.Background())
	require.NoError(t, err, "signed-out applications degrade to empty")
	assert.Empty(t, apps)
}

func TestClient_ListPostsQueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"success":true,"data":[]}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, session.Static{}, time.Second)
	_, err := client.ListPosts(context.Background(), ListPostsParams{
		Limit:  20,
		Offset: 40,
		Status: "published",
		Sort:   "recent",
	})
	require.NoError(t, err)
	assert.Equal(t, "limit=20&offset=40&sort=recent&status=published", gotQuery)
}

func TestFlexID_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"string", `"abc"`, "abc"},
		{"number", `42`, "42"},
		{"large number stays exact", `9007199254740993`, "9007199254740993"},
		{"float", `7.5`, "7.5"},
		{"null", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id FlexID
			require.NoError(t, json.Unmarshal([]byte(tt.json), &id))
			assert.Equal(t, tt.want, id.String())
		})
	}
}

func TestFlexNumber_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantValue float64
		wantValid bool
	}{
		{"number", `12`, 12, true},
		{"numeric string", `"12.5"`, 12.5, true},
		{"padded numeric string", `" 3 "`, 3, true},
		{"zero is valid", `0`, 0, true},
		{"negative", `-4`, -4, true},
		{"null", `null`, 0, false},
		{"empty string", `""`, 0, false},
		{"garbage string", `"soon"`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n FlexNumber
			require.NoError(t, json.Unmarshal([]byte(tt.json), &n))
			assert.Equal(t, tt.wantValid, n.Valid)
			assert.Equal(t, tt.wantValue, n.Value)
		})
	}
}

func TestStringList_Unmarshal(t *testing.T) {
	var fromArray StringList
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &fromArray))
	assert.Equal(t, StringList{"a", "b"}, fromArray)

	var fromCSV StringList
	require.NoError(t, json.Unmarshal([]byte(`"a, b,c"`), &fromCSV))
	assert.Equal(t, StringList{"a", " b", "c"}, fromCSV, "items kept verbatim for the normalizer")

	var fromEmpty StringList
	require.NoError(t, json.Unmarshal([]byte(`""`), &fromEmpty))
	assert.Nil(t, fromEmpty)

	var fromNull StringList
	require.NoError(t, json.Unmarshal([]byte(`null`), &fromNull))
	assert.Nil(t, fromNull)
}
