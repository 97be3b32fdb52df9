// Package autoscaling implements the AutoScaling client against the real
// Query API with signed HTTP requests.
package autoscaling

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/evergreen-ci/ascent"
	"github.com/evergreen-ci/ascent/awsutil"
	"github.com/evergreen-ci/utility"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// apiVersion is the AutoScaling Query API version every request is made
// against.
const apiVersion = "2011-01-01"

// errorBodyRegexp extracts the error code and message embedded in a non-200
// response body. Bodies that do not match this shape are not translated.
var errorBodyRegexp = regexp.MustCompile(`(?s)<Code>\s*(.+?)\s*</Code>.*?<Message>\s*(.+?)\s*</Message>`)

// BasicClient provides an AutoScalingClient implementation that signs
// requests with Signature Version 2 and posts them to the AutoScaling Query
// API. It does not retry failed requests.
type BasicClient struct {
	opts   *awsutil.ClientOptions
	signer *awsutil.V2Signer
	tracer trace.Tracer
	closed bool
}

// NewBasicClient creates a new AutoScaling client from the given options.
func NewBasicClient(opts awsutil.ClientOptions) (*BasicClient, error) {
	c := &BasicClient{
		opts:   &opts,
		signer: awsutil.NewV2Signer(),
	}
	if err := c.setup(); err != nil {
		return nil, errors.Wrap(err, "setting up client")
	}

	return c, nil
}

func (c *BasicClient) setup() error {
	if err := c.opts.Validate(); err != nil {
		return errors.Wrap(err, "invalid options")
	}

	if c.opts.TracerProvider != nil && c.tracer == nil {
		c.tracer = c.opts.TracerProvider.Tracer(utility.FromStringPtr(c.opts.TracerName))
	}

	return nil
}

// runRequest signs the parameters for the named action, posts them, and
// decodes the response into out when out is non-nil. The idempotent flag is a
// transport hint only; it never causes a retry at this layer.
func (c *BasicClient) runRequest(ctx context.Context, action string, params url.Values, out interface{}, idempotent bool) error {
	provider, err := c.opts.GetCredentialsProvider(ctx)
	if err != nil {
		return errors.Wrap(err, "getting credentials provider")
	}
	// Retrieving immediately before signing lets the provider refresh
	// expired credentials.
	creds, err := provider.Retrieve(ctx)
	if err != nil {
		return errors.Wrap(err, "retrieving credentials")
	}

	params.Set("Action", action)
	params.Set("Version", apiVersion)
	signed := c.signer.SignParams(params, creds, utility.FromStringPtr(c.opts.Scheme), utility.FromStringPtr(c.opts.Host), utility.FromStringPtr(c.opts.Path), utility.FromIntPtr(c.opts.Port))

	if c.tracer != nil {
		var span trace.Span
		ctx, span = c.tracer.Start(ctx, action, trace.WithAttributes(
			attribute.String("aws.action", action),
			attribute.String("aws.endpoint", c.opts.Endpoint()),
			attribute.Bool("aws.idempotent", idempotent),
			attribute.StringSlice("aws.param_keys", awsutil.SortedParamKeys(params)),
		))
		defer span.End()
	}

	err = c.send(ctx, action, signed, out)
	grip.DebugWhen(err != nil, message.WrapError(err, awsutil.MakeAPILogMessage(action, params)))

	return err
}

func (c *BasicClient) send(ctx context.Context, action string, signed url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint()+utility.FromStringPtr(c.opts.Path), strings.NewReader(signed.Encode()))
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if !utility.FromBoolPtr(c.opts.Persistent) {
		req.Close = true
	}

	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "sending %s request", action)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}

	if resp.StatusCode != http.StatusOK {
		return translateResponseError(action, resp.Status, body)
	}

	if out != nil {
		if err := xml.Unmarshal(bytes.TrimSpace(body), out); err != nil {
			return errors.Wrapf(err, "parsing %s response", action)
		}
	}

	return nil
}

// translateResponseError maps the error code embedded in a non-200 response
// body to a typed error. If the body does not contain a code and message, the
// original status failure propagates unchanged.
func translateResponseError(action, status string, body []byte) error {
	statusErr := errors.Errorf("%s request returned status %s", action, status)
	if match := errorBodyRegexp.FindSubmatch(body); match != nil {
		return ascent.TranslateErrorCode(string(match[1]), string(match[2]), statusErr)
	}
	return statusErr
}

// Reload discards any pooled connection state held by the underlying
// transport. The client remains usable afterwards.
func (c *BasicClient) Reload() {
	if c.opts.HTTPClient != nil {
		c.opts.HTTPClient.CloseIdleConnections()
	}
}

// Close closes the client and cleans up its resources.
func (c *BasicClient) Close(ctx context.Context) error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.opts.Close()
	return nil
}
