package awsutil

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/evergreen-ci/utility"
	"github.com/mongodb/grip"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"
)

// ClientOptions represent AutoScaling client options such as authentication
// and the endpoint to make requests against.
type ClientOptions struct {
	// CredsProvider is a credentials provider, which may be used to either
	// sign requests directly, or authenticate to STS to retrieve temporary
	// credentials for signing (if Role is specified). Providers own
	// refreshing expired credentials; the client retrieves fresh credential
	// values immediately before signing each request.
	CredsProvider *aws.CredentialsProvider
	// Role is the STS role that should be used to perform authorized
	// actions. If specified, CredsProvider will be used to retrieve
	// temporary credentials from STS.
	Role *string
	// UseIAMProfile falls back to the ambient credential chain (instance
	// profile, environment) when no explicit credentials are given.
	UseIAMProfile *bool
	// Region is the geographical region where API calls should be made. It
	// determines the default endpoint host.
	Region *string
	// Scheme is the URL scheme for the endpoint. Defaults to https.
	Scheme *string
	// Host is the endpoint host. Defaults to the regional AutoScaling
	// endpoint.
	Host *string
	// Port is the endpoint port. Defaults to 443.
	Port *int
	// Path is the request path. Defaults to "/".
	Path *string
	// Persistent controls whether connections are reused across requests.
	// Defaults to true.
	Persistent *bool
	// HTTPClient is the HTTP client to use to make requests.
	HTTPClient *http.Client
	// TracerProvider, if set, wraps each API request in a span named after
	// the operation. Tracing never alters request or response semantics.
	TracerProvider trace.TracerProvider
	// TracerName is the instrumentation name used when acquiring a tracer
	// from TracerProvider. Defaults to the module path.
	TracerName *string

	stsClient   *sts.Client
	stsProvider *stscreds.AssumeRoleProvider

	ownsHTTPClient bool
}

// NewClientOptions returns new unconfigured client options.
func NewClientOptions() *ClientOptions {
	return &ClientOptions{}
}

// SetCredentialsProvider sets the client's credentials provider.
func (o *ClientOptions) SetCredentialsProvider(creds aws.CredentialsProvider) *ClientOptions {
	o.CredsProvider = &creds
	return o
}

// SetRole sets the client's role to assume.
func (o *ClientOptions) SetRole(role string) *ClientOptions {
	o.Role = &role
	return o
}

// SetUseIAMProfile sets whether the client falls back to the ambient
// credential chain.
func (o *ClientOptions) SetUseIAMProfile(use bool) *ClientOptions {
	o.UseIAMProfile = &use
	return o
}

// SetRegion sets the client's geographical region.
func (o *ClientOptions) SetRegion(region string) *ClientOptions {
	o.Region = &region
	return o
}

// SetScheme sets the URL scheme for the endpoint.
func (o *ClientOptions) SetScheme(scheme string) *ClientOptions {
	o.Scheme = &scheme
	return o
}

// SetHost sets the endpoint host.
func (o *ClientOptions) SetHost(host string) *ClientOptions {
	o.Host = &host
	return o
}

// SetPort sets the endpoint port.
func (o *ClientOptions) SetPort(port int) *ClientOptions {
	o.Port = &port
	return o
}

// SetPath sets the request path.
func (o *ClientOptions) SetPath(path string) *ClientOptions {
	o.Path = &path
	return o
}

// SetPersistent sets whether connections are reused across requests.
func (o *ClientOptions) SetPersistent(persistent bool) *ClientOptions {
	o.Persistent = &persistent
	return o
}

// SetHTTPClient sets the HTTP client to use.
func (o *ClientOptions) SetHTTPClient(hc *http.Client) *ClientOptions {
	o.HTTPClient = hc
	return o
}

// SetTracerProvider sets the tracer provider used to instrument API
// requests.
func (o *ClientOptions) SetTracerProvider(tp trace.TracerProvider) *ClientOptions {
	o.TracerProvider = tp
	return o
}

// SetTracerName sets the instrumentation name used for tracing.
func (o *ClientOptions) SetTracerName(name string) *ClientOptions {
	o.TracerName = &name
	return o
}

// Validate checks that all required fields are given and sets defaults for
// unspecified options.
func (o *ClientOptions) Validate() error {
	catcher := grip.NewBasicCatcher()
	catcher.NewWhen(o.Region == nil, "must provide geographical region")
	catcher.NewWhen(o.Role == nil && o.CredsProvider == nil && !utility.FromBoolPtr(o.UseIAMProfile), "must provide either explicit credentials, a role to assume, or the IAM profile fallback")

	if catcher.HasErrors() {
		return catcher.Resolve()
	}

	if o.Scheme == nil {
		o.Scheme = utility.ToStringPtr("https")
	}
	if o.Host == nil {
		o.Host = utility.ToStringPtr(fmt.Sprintf("autoscaling.%s.amazonaws.com", utility.FromStringPtr(o.Region)))
	}
	if o.Port == nil {
		o.Port = utility.ToIntPtr(443)
	}
	if o.Path == nil {
		o.Path = utility.ToStringPtr("/")
	}
	if o.Persistent == nil {
		o.Persistent = utility.ToBoolPtr(true)
	}
	if o.TracerName == nil {
		o.TracerName = utility.ToStringPtr("github.com/evergreen-ci/ascent")
	}

	if o.HTTPClient == nil {
		o.HTTPClient = utility.GetHTTPClient()
		o.ownsHTTPClient = true
	}

	return nil
}

// GetCredentialsProvider retrieves the appropriate credentials provider to
// use for signing requests.
func (o *ClientOptions) GetCredentialsProvider(ctx context.Context) (aws.CredentialsProvider, error) {
	if o.Role == nil && o.CredsProvider == nil && !utility.FromBoolPtr(o.UseIAMProfile) {
		return nil, errors.New("cannot get client credentials when neither explicit credentials, the role to assume, nor the IAM profile fallback is given")
	}

	if o.Role == nil && o.CredsProvider != nil {
		return *o.CredsProvider, nil
	}

	if o.Role == nil {
		config, err := config.LoadDefaultConfig(ctx,
			config.WithRegion(utility.FromStringPtr(o.Region)),
			config.WithHTTPClient(o.HTTPClient),
		)
		if err != nil {
			return nil, errors.Wrap(err, "loading default credential chain")
		}
		return config.Credentials, nil
	}

	if o.stsProvider != nil {
		return o.stsProvider, nil
	}

	if o.stsClient == nil {
		loadOpts := []func(*config.LoadOptions) error{
			config.WithRegion(utility.FromStringPtr(o.Region)),
			config.WithHTTPClient(o.HTTPClient),
		}
		if o.CredsProvider != nil {
			loadOpts = append(loadOpts, config.WithCredentialsProvider(*o.CredsProvider))
		}
		config, err := config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, errors.Wrap(err, "creating config")
		}

		o.stsClient = sts.NewFromConfig(config)
	}

	o.stsProvider = stscreds.NewAssumeRoleProvider(o.stsClient, *o.Role)

	return o.stsProvider, nil
}

// Endpoint returns the URL that requests should be made against, without the
// request path.
func (o *ClientOptions) Endpoint() string {
	scheme := utility.FromStringPtr(o.Scheme)
	host := utility.FromStringPtr(o.Host)
	port := utility.FromIntPtr(o.Port)
	if (scheme == "https" && port == 443) || (scheme == "http" && port == 80) {
		return fmt.Sprintf("%s://%s", scheme, host)
	}
	return fmt.Sprintf("%s://%s:%d", scheme, host, port)
}

// Close cleans up the HTTP client if it is owned by this client.
func (o *ClientOptions) Close() {
	if o.ownsHTTPClient {
		utility.PutHTTPClient(o.HTTPClient)
	}
}
