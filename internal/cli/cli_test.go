package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const identityJSON = `{
	"user_key": "1001",
	"display_name": "Alice",
	"race": "Elf",
	"job": "Mage",
	"gender": "Female",
	"body_type": "Slender",
	"hair_color": "Silver",
	"eye_color": "Green",
	"special_skill": "Appraisal",
	"attributes": {"strength": 5, "agility": 7, "intelligence": 8, "charisma": 2},
	"luck": 42,
	"created_at": "2024-01-01T12:00:00Z"
}`

// fakeAPI records the last request and serves canned responses
type fakeAPI struct {
	lastPath  string
	lastQuery string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.lastPath = r.URL.EscapedPath()
	f.lastQuery = r.URL.RawQuery
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/api/v1/health":
		_, _ = w.Write([]byte(`{"status":"ok","next_reset":"2024-01-02T00:00:00Z"}`))
	case r.URL.Path == "/api/v1/identities/broken":
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":"GENERATION_FAILED","message":"Failed to generate identity"}}`))
	default:
		_, _ = w.Write([]byte(identityJSON))
	}
}

func run(t *testing.T, server *httptest.Server, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", server.URL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRollPrintsIdentityText(t *testing.T) {
	api := &fakeAPI{}
	server := httptest.NewServer(api)
	defer server.Close()

	out, err := run(t, server, "roll", "1001", "--name", "Alice Smith")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/identities/1001", api.lastPath)
	assert.Equal(t, "display_name=Alice+Smith", api.lastQuery)
	assert.Equal(t, `Rebirth for Alice:
  Race: Elf  Job: Mage
  Gender: Female  Body Type: Slender
  Attributes: Strength: 5 Agility: 7 Intelligence: 8 Charisma: 2
  Luck: 42
  Special Skill: Appraisal
  Hair Color: Silver
  Eye Color: Green
`, out)
}

func TestRollPrintsJSON(t *testing.T) {
	server := httptest.NewServer(&fakeAPI{})
	defer server.Close()

	out, err := run(t, server, "--output", "json", "roll", "1001")
	require.NoError(t, err)

	var id Identity
	require.NoError(t, json.Unmarshal([]byte(out), &id))
	assert.Equal(t, "Elf", id.Race)
	assert.Equal(t, 42, id.Luck)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), id.CreatedAt.UTC())
}

func TestRollEscapesUserKey(t *testing.T) {
	api := &fakeAPI{}
	server := httptest.NewServer(api)
	defer server.Close()

	_, err := run(t, server, "roll", "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/identities/a%2Fb%20c", api.lastPath)
	assert.Empty(t, api.lastQuery)
}

func TestRollReportsAPIError(t *testing.T) {
	server := httptest.NewServer(&fakeAPI{})
	defer server.Close()

	_, err := run(t, server, "roll", "broken")
	require.Error(t, err)
	assert.Equal(t, "Failed to generate identity (GENERATION_FAILED)", err.Error())
}

func TestRollRequiresUserKey(t *testing.T) {
	server := httptest.NewServer(&fakeAPI{})
	defer server.Close()

	_, err := run(t, server, "roll")
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(&fakeAPI{})
	defer server.Close()

	out, err := run(t, server, "health")
	require.NoError(t, err)
	assert.Equal(t, "Status: ok\nNext Reset: 2024-01-02T00:00:00Z\n", out)
}

func TestInvalidOutputFormat(t *testing.T) {
	server := httptest.NewServer(&fakeAPI{})
	defer server.Close()

	_, err := run(t, server, "--output", "yaml", "health")
	assert.ErrorContains(t, err, "invalid --output")
}

func TestClientNonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL+"/", time.Second).Health(context.Background())
	assert.ErrorContains(t, err, "HTTP 502")
}
