package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(0)
	client2 := NewHTTPClient(0)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient(5 * time.Second)
	assert.Equal(t, 5*time.Second, client.GetClient().Timeout)

	noTimeout := NewHTTPClient(0)
	assert.Equal(t, time.Duration(0), noTimeout.GetClient().Timeout)
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://ipfs.infura.io:5001/api/v0/add", want: "https://ipfs.infura.io:5001/api/v0/add"},
		{name: "no scheme", raw: "localhost:5001/api/v0/add", want: "http://localhost:5001/api/v0/add"},
		{name: "trailing slash and spaces", raw: "  http://127.0.0.1:5001/api/v0/add/ ", want: "http://127.0.0.1:5001/api/v0/add"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
