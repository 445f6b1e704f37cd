package infra

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewElasticSearchConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	testCases := []struct {
		name      string
		input     ElasticsearchConfig
		expectErr bool
	}{
		{
			name: "valid input",
			input: ElasticsearchConfig{
				Addresses: []string{srv.URL},
			},
			expectErr: false,
		},
		{
			name: "unreachable address",
			input: ElasticsearchConfig{
				Addresses: []string{"http://127.0.0.1:1"},
			},
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, e := NewElasticSearchConnection(tc.input)
			if tc.expectErr {
				assert.Error(t, e)
			} else {
				assert.NoError(t, e)
				assert.NotNil(t, client)
			}
		})
	}
}
