package awsutil

import (
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientOptions(t *testing.T) {
	t.Run("SetCredentialsProvider", func(t *testing.T) {
		creds := credentials.NewStaticCredentialsProvider("access_key", "secret_key", "")
		opts := NewClientOptions().SetCredentialsProvider(creds)
		require.NotNil(t, opts.CredsProvider)
		assert.Equal(t, creds, *opts.CredsProvider)
	})
	t.Run("SetRole", func(t *testing.T) {
		role := "role"
		opts := NewClientOptions().SetRole(role)
		require.NotNil(t, opts.Role)
		assert.Equal(t, role, *opts.Role)
	})
	t.Run("SetRegion", func(t *testing.T) {
		region := "region"
		opts := NewClientOptions().SetRegion(region)
		require.NotNil(t, opts.Region)
		assert.Equal(t, region, *opts.Region)
	})
	t.Run("SetHost", func(t *testing.T) {
		host := "autoscaling.example.com"
		opts := NewClientOptions().SetHost(host)
		require.NotNil(t, opts.Host)
		assert.Equal(t, host, *opts.Host)
	})
	t.Run("SetHTTPClient", func(t *testing.T) {
		hc := http.DefaultClient
		opts := NewClientOptions().SetHTTPClient(hc)
		require.NotNil(t, opts.HTTPClient)
		assert.Equal(t, hc, opts.HTTPClient)
		assert.False(t, opts.ownsHTTPClient)
	})
	t.Run("Validate", func(t *testing.T) {
		t.Run("SucceedsWithCredentialsAndRegion", func(t *testing.T) {
			creds := credentials.NewStaticCredentialsProvider("access_key", "secret_key", "")
			hc := http.DefaultClient
			opts := NewClientOptions().
				SetCredentialsProvider(creds).
				SetRegion("us-east-1").
				SetHTTPClient(hc)

			require.NoError(t, opts.Validate())

			assert.Equal(t, "us-east-1", *opts.Region)
			assert.Equal(t, hc, opts.HTTPClient)
			assert.False(t, opts.ownsHTTPClient)
		})
		t.Run("SucceedsWithoutCredentialsWhenRoleIsGiven", func(t *testing.T) {
			opts := NewClientOptions().
				SetRole("role").
				SetRegion("us-east-1").
				SetHTTPClient(http.DefaultClient)

			assert.NoError(t, opts.Validate())
		})
		t.Run("SucceedsWithoutCredentialsWhenIAMProfileFallbackIsGiven", func(t *testing.T) {
			opts := NewClientOptions().
				SetUseIAMProfile(true).
				SetRegion("us-east-1").
				SetHTTPClient(http.DefaultClient)

			assert.NoError(t, opts.Validate())
		})
		t.Run("FailsWhenNeitherCredentialsNorRoleAreGiven", func(t *testing.T) {
			opts := NewClientOptions().
				SetRegion("us-east-1").
				SetHTTPClient(http.DefaultClient)

			assert.Error(t, opts.Validate())
		})
		t.Run("FailsWithoutRegion", func(t *testing.T) {
			creds := credentials.NewStaticCredentialsProvider("access_key", "secret_key", "")
			opts := NewClientOptions().
				SetCredentialsProvider(creds).
				SetHTTPClient(http.DefaultClient)

			assert.Error(t, opts.Validate())
		})
		t.Run("DefaultsEndpointFromRegion", func(t *testing.T) {
			creds := credentials.NewStaticCredentialsProvider("access_key", "secret_key", "")
			opts := NewClientOptions().
				SetCredentialsProvider(creds).
				SetRegion("us-west-2").
				SetHTTPClient(http.DefaultClient)

			require.NoError(t, opts.Validate())

			assert.Equal(t, "https", *opts.Scheme)
			assert.Equal(t, "autoscaling.us-west-2.amazonaws.com", *opts.Host)
			assert.Equal(t, 443, *opts.Port)
			assert.Equal(t, "/", *opts.Path)
			assert.True(t, *opts.Persistent)
			assert.Equal(t, "https://autoscaling.us-west-2.amazonaws.com", opts.Endpoint())
		})
		t.Run("EndpointIncludesNonStandardPort", func(t *testing.T) {
			creds := credentials.NewStaticCredentialsProvider("access_key", "secret_key", "")
			opts := NewClientOptions().
				SetCredentialsProvider(creds).
				SetRegion("us-east-1").
				SetScheme("http").
				SetHost("localhost").
				SetPort(8080).
				SetHTTPClient(http.DefaultClient)

			require.NoError(t, opts.Validate())

			assert.Equal(t, "http://localhost:8080", opts.Endpoint())
		})
		t.Run("DefaultsHTTPClient", func(t *testing.T) {
			creds := credentials.NewStaticCredentialsProvider("access_key", "secret_key", "")
			opts := NewClientOptions().
				SetCredentialsProvider(creds).
				SetRegion("us-east-1")

			require.NoError(t, opts.Validate())
			defer opts.Close()

			assert.NotZero(t, opts.HTTPClient)
			assert.True(t, opts.ownsHTTPClient)
		})
	})
}
