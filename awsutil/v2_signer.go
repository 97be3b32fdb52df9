package awsutil

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Signature Version 2 parameter values.
const (
	SignatureVersion = "2"
	SignatureMethod  = "HmacSHA256"

	// timestampFormat is the ISO 8601 UTC format the Query API expects in
	// the Timestamp parameter.
	timestampFormat = "2006-01-02T15:04:05Z"
)

// V2Signer signs Query API request parameters with AWS Signature Version 2:
// an HMAC-SHA256 over the canonical key-sorted, URL-encoded parameter string
// together with the request method, host, and path.
type V2Signer struct {
	now func() time.Time
}

// NewV2Signer returns a signer that timestamps requests with the current
// time.
func NewV2Signer() *V2Signer {
	return &V2Signer{now: time.Now}
}

// SignParams returns a copy of the given parameters with the authentication
// parameters and computed signature added. If the parameters already contain
// a Timestamp it is signed as-is, making the signature deterministic for a
// fixed set of inputs.
func (s *V2Signer) SignParams(params url.Values, creds aws.Credentials, scheme, host, path string, port int) url.Values {
	signed := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			signed.Add(k, v)
		}
	}

	signed.Set("AWSAccessKeyId", creds.AccessKeyID)
	signed.Set("SignatureVersion", SignatureVersion)
	signed.Set("SignatureMethod", SignatureMethod)
	if signed.Get("Timestamp") == "" {
		signed.Set("Timestamp", s.now().UTC().Format(timestampFormat))
	}
	if creds.SessionToken != "" {
		signed.Set("SecurityToken", creds.SessionToken)
	}

	mac := hmac.New(sha256.New, []byte(creds.SecretAccessKey))
	mac.Write([]byte(stringToSign(signed, scheme, host, path, port)))
	signed.Set("Signature", base64.StdEncoding.EncodeToString(mac.Sum(nil)))

	return signed
}

// stringToSign builds the canonical string covered by the signature. The
// port is elided only when it is the scheme's default, matching the Host
// header the transport sends.
func stringToSign(params url.Values, scheme, host, path string, port int) string {
	hostHeader := host
	if port != defaultSchemePort(scheme) {
		hostHeader = fmt.Sprintf("%s:%d", host, port)
	}
	if path == "" {
		path = "/"
	}
	return strings.Join([]string{"POST", hostHeader, path, canonicalQueryString(params)}, "\n")
}

func defaultSchemePort(scheme string) int {
	switch scheme {
	case "https":
		return 443
	case "http":
		return 80
	default:
		return 0
	}
}

// canonicalQueryString serializes the parameters as key-sorted, URL-encoded
// key=value pairs per the documented signing algorithm.
func canonicalQueryString(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, v := range params[k] {
			pairs = append(pairs, v2Escape(k)+"="+v2Escape(v))
		}
	}
	return strings.Join(pairs, "&")
}

// v2Escape percent-encodes everything except the RFC 3986 unreserved
// characters. It differs from url.QueryEscape, which encodes spaces as "+"
// and leaves characters the signing algorithm requires encoded.
func v2Escape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '~':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
