package awsutil

import (
	"net/url"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestV2Signer(t *testing.T) {
	creds := aws.Credentials{
		AccessKeyID:     "access_key",
		SecretAccessKey: "secret_key",
	}
	fixedTime := time.Date(2013, time.August, 27, 1, 2, 3, 0, time.UTC)
	newSigner := func() *V2Signer {
		s := NewV2Signer()
		s.now = func() time.Time { return fixedTime }
		return s
	}

	t.Run("AddsAuthParameters", func(t *testing.T) {
		params := url.Values{}
		params.Set("Action", "DescribeAutoScalingGroups")
		params.Set("Version", "2011-01-01")

		signed := newSigner().SignParams(params, creds, "https", "autoscaling.us-east-1.amazonaws.com", "/", 443)

		assert.Equal(t, "access_key", signed.Get("AWSAccessKeyId"))
		assert.Equal(t, "2", signed.Get("SignatureVersion"))
		assert.Equal(t, "HmacSHA256", signed.Get("SignatureMethod"))
		assert.Equal(t, "2013-08-27T01:02:03Z", signed.Get("Timestamp"))
		assert.NotEmpty(t, signed.Get("Signature"))
		assert.Empty(t, signed.Get("SecurityToken"))

		// The input parameters are not mutated.
		assert.Empty(t, params.Get("Signature"))
	})
	t.Run("IncludesSessionTokenWhenPresent", func(t *testing.T) {
		withToken := creds
		withToken.SessionToken = "session_token"

		params := url.Values{}
		params.Set("Action", "DescribeAutoScalingGroups")

		signed := newSigner().SignParams(params, withToken, "https", "autoscaling.us-east-1.amazonaws.com", "/", 443)

		assert.Equal(t, "session_token", signed.Get("SecurityToken"))
	})
	t.Run("IsDeterministicForFixedInputs", func(t *testing.T) {
		params := url.Values{}
		params.Set("Action", "CreateAutoScalingGroup")
		params.Set("AutoScalingGroupName", "group name with spaces")
		params.Set("AvailabilityZones.member.1", "us-east-1a")

		first := newSigner().SignParams(params, creds, "https", "autoscaling.us-east-1.amazonaws.com", "/", 443)
		second := newSigner().SignParams(params, creds, "https", "autoscaling.us-east-1.amazonaws.com", "/", 443)

		require.NotEmpty(t, first.Get("Signature"))
		assert.Equal(t, first.Get("Signature"), second.Get("Signature"))
	})
	t.Run("SignatureDependsOnSecret", func(t *testing.T) {
		otherCreds := creds
		otherCreds.SecretAccessKey = "other_secret_key"

		params := url.Values{}
		params.Set("Action", "DescribePolicies")

		signed := newSigner().SignParams(params, creds, "https", "autoscaling.us-east-1.amazonaws.com", "/", 443)
		otherSigned := newSigner().SignParams(params, otherCreds, "https", "autoscaling.us-east-1.amazonaws.com", "/", 443)

		assert.NotEqual(t, signed.Get("Signature"), otherSigned.Get("Signature"))
	})
	t.Run("SignatureDependsOnParameters", func(t *testing.T) {
		params := url.Values{}
		params.Set("Action", "DeletePolicy")
		params.Set("PolicyName", "policy")

		otherParams := url.Values{}
		otherParams.Set("Action", "DeletePolicy")
		otherParams.Set("PolicyName", "other_policy")

		signed := newSigner().SignParams(params, creds, "https", "autoscaling.us-east-1.amazonaws.com", "/", 443)
		otherSigned := newSigner().SignParams(otherParams, creds, "https", "autoscaling.us-east-1.amazonaws.com", "/", 443)

		assert.NotEqual(t, signed.Get("Signature"), otherSigned.Get("Signature"))
	})
	t.Run("CanonicalQueryStringSortsAndEscapes", func(t *testing.T) {
		params := url.Values{}
		params.Set("Zebra", "z")
		params.Set("Alpha", "value with spaces")
		params.Set("Tilde", "~keep")
		params.Set("Slash", "a/b")

		assert.Equal(t, "Alpha=value%20with%20spaces&Slash=a%2Fb&Tilde=~keep&Zebra=z", canonicalQueryString(params))
	})
	t.Run("StringToSignUsesHostPathAndQuery", func(t *testing.T) {
		params := url.Values{}
		params.Set("Action", "DescribeTags")

		assert.Equal(t, "POST\nautoscaling.us-east-1.amazonaws.com\n/\nAction=DescribeTags", stringToSign(params, "https", "autoscaling.us-east-1.amazonaws.com", "/", 443))
		assert.Equal(t, "POST\nlocalhost:8080\n/custom\nAction=DescribeTags", stringToSign(params, "http", "localhost", "/custom", 8080))
	})
	t.Run("PortIsElidedOnlyForSchemeDefault", func(t *testing.T) {
		params := url.Values{}
		params.Set("Action", "DescribeTags")

		assert.Equal(t, "POST\nlocalhost\n/\nAction=DescribeTags", stringToSign(params, "http", "localhost", "/", 80))
		assert.Equal(t, "POST\nlocalhost:80\n/\nAction=DescribeTags", stringToSign(params, "https", "localhost", "/", 80))
		assert.Equal(t, "POST\nlocalhost\n/\nAction=DescribeTags", stringToSign(params, "https", "localhost", "/", 443))
		assert.Equal(t, "POST\nlocalhost:443\n/\nAction=DescribeTags", stringToSign(params, "http", "localhost", "/", 443))
	})
}
