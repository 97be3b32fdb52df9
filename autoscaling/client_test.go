package autoscaling

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/evergreen-ci/ascent"
	"github.com/evergreen-ci/ascent/awsutil"
	"github.com/evergreen-ci/ascent/internal/testutil"
	"github.com/evergreen-ci/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaultTestTimeout is the default timeout for tests against a local server.
const defaultTestTimeout = 10 * time.Second

// newTestClient creates a client pointed at a local test server instead of
// the real service endpoint.
func newTestClient(t *testing.T, srv *httptest.Server) *BasicClient {
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	c, err := NewBasicClient(*awsutil.NewClientOptions().
		SetCredentialsProvider(credentials.NewStaticCredentialsProvider("access-key", "secret-key", "")).
		SetRegion("us-east-1").
		SetScheme("http").
		SetHost(host).
		SetPort(port).
		SetHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func errorResponse(code, msg string) string {
	return `<ErrorResponse>
  <Error>
    <Type>Sender</Type>
    <Code>` + code + `</Code>
    <Message>` + msg + `</Message>
  </Error>
  <RequestId>00000000-0000-0000-0000-000000000000</RequestId>
</ErrorResponse>`
}

func TestBasicClient(t *testing.T) {
	assert.Implements(t, (*ascent.AutoScalingClient)(nil), &BasicClient{})

	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	t.Run("SendsSignedFormParameters", func(t *testing.T) {
		var form url.Values
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			form = r.PostForm
			_, _ = w.Write([]byte(`<DescribeAutoScalingGroupsResponse><DescribeAutoScalingGroupsResult><AutoScalingGroups/></DescribeAutoScalingGroupsResult><ResponseMetadata><RequestId>req-0</RequestId></ResponseMetadata></DescribeAutoScalingGroupsResponse>`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		defer func() { assert.NoError(t, c.Close(ctx)) }()

		out, err := c.DescribeAutoScalingGroups(ctx, &ascent.DescribeAutoScalingGroupsInput{
			AutoScalingGroupNames: []string{"group0"},
		})
		require.NoError(t, err)
		require.NotZero(t, out)
		assert.Equal(t, "req-0", utility.FromStringPtr(out.RequestID))

		assert.Equal(t, "DescribeAutoScalingGroups", form.Get("Action"))
		assert.Equal(t, "2011-01-01", form.Get("Version"))
		assert.Equal(t, "group0", form.Get("AutoScalingGroupNames.member.1"))
		assert.Equal(t, "access-key", form.Get("AWSAccessKeyId"))
		assert.Equal(t, "2", form.Get("SignatureVersion"))
		assert.Equal(t, "HmacSHA256", form.Get("SignatureMethod"))
		assert.NotZero(t, form.Get("Signature"))
		assert.NotZero(t, form.Get("Timestamp"))
	})
	t.Run("DecodesSuccessfulResponse", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<PutScalingPolicyResponse>
  <PutScalingPolicyResult>
    <PolicyARN>arn:aws:autoscaling:us-east-1:123456789012:scalingPolicy:policy0</PolicyARN>
  </PutScalingPolicyResult>
  <ResponseMetadata><RequestId>req-1</RequestId></ResponseMetadata>
</PutScalingPolicyResponse>`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		defer func() { assert.NoError(t, c.Close(ctx)) }()

		out, err := c.PutScalingPolicy(ctx, &ascent.PutScalingPolicyInput{
			AutoScalingGroupName: utility.ToStringPtr("group0"),
			PolicyName:           utility.ToStringPtr("policy0"),
			AdjustmentType:       utility.ToStringPtr("ChangeInCapacity"),
			ScalingAdjustment:    utility.ToIntPtr(1),
		})
		require.NoError(t, err)
		require.NotZero(t, out)
		assert.Equal(t, "arn:aws:autoscaling:us-east-1:123456789012:scalingPolicy:policy0", utility.FromStringPtr(out.PolicyARN))
		assert.Equal(t, "req-1", utility.FromStringPtr(out.RequestID))
	})
	t.Run("DecodesDescribedGroupFields", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<DescribeAutoScalingGroupsResponse>
  <DescribeAutoScalingGroupsResult>
    <AutoScalingGroups>
      <member>
        <AutoScalingGroupName>group0</AutoScalingGroupName>
        <LaunchConfigurationName>lc0</LaunchConfigurationName>
        <AvailabilityZones><member>us-east-1a</member><member>us-east-1b</member></AvailabilityZones>
        <MinSize>1</MinSize>
        <MaxSize>5</MaxSize>
        <DesiredCapacity>2</DesiredCapacity>
        <Instances>
          <member>
            <InstanceId>i-deadbeef</InstanceId>
            <HealthStatus>Healthy</HealthStatus>
            <LifecycleState>InService</LifecycleState>
          </member>
        </Instances>
      </member>
    </AutoScalingGroups>
  </DescribeAutoScalingGroupsResult>
  <ResponseMetadata><RequestId>req-2</RequestId></ResponseMetadata>
</DescribeAutoScalingGroupsResponse>`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		defer func() { assert.NoError(t, c.Close(ctx)) }()

		out, err := c.DescribeAutoScalingGroups(ctx, &ascent.DescribeAutoScalingGroupsInput{})
		require.NoError(t, err)
		require.Len(t, out.AutoScalingGroups, 1)
		group := out.AutoScalingGroups[0]
		assert.Equal(t, "group0", utility.FromStringPtr(group.AutoScalingGroupName))
		assert.Equal(t, "lc0", utility.FromStringPtr(group.LaunchConfigurationName))
		assert.Equal(t, []string{"us-east-1a", "us-east-1b"}, group.AvailabilityZones)
		assert.Equal(t, 1, utility.FromIntPtr(group.MinSize))
		assert.Equal(t, 5, utility.FromIntPtr(group.MaxSize))
		assert.Equal(t, 2, utility.FromIntPtr(group.DesiredCapacity))
		require.Len(t, group.Instances, 1)
		assert.Equal(t, "i-deadbeef", utility.FromStringPtr(group.Instances[0].InstanceID))
	})
	t.Run("TranslatesAlreadyExistsError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(errorResponse("AlreadyExists", "A group with the name group0 already exists")))
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		defer func() { assert.NoError(t, c.Close(ctx)) }()

		err := c.CreateAutoScalingGroup(ctx, &ascent.CreateAutoScalingGroupInput{
			AutoScalingGroupName: utility.ToStringPtr("group0"),
		})
		require.Error(t, err)
		assert.True(t, ascent.IsIdentifierTakenError(err))
		assert.Equal(t, "A group with the name group0 already exists", err.Error())
	})
	t.Run("TranslatesResourceInUseError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(errorResponse("ResourceInUse", "launch configuration lc0 is still in use")))
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		defer func() { assert.NoError(t, c.Close(ctx)) }()

		err := c.DeleteLaunchConfiguration(ctx, &ascent.DeleteLaunchConfigurationInput{
			LaunchConfigurationName: utility.ToStringPtr("lc0"),
		})
		require.Error(t, err)
		assert.True(t, ascent.IsResourceInUseError(err))
	})
	t.Run("TranslatesValidationError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(errorResponse("ValidationError", "no such group: group0")))
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		defer func() { assert.NoError(t, c.Close(ctx)) }()

		err := c.SetDesiredCapacity(ctx, &ascent.SetDesiredCapacityInput{
			AutoScalingGroupName: utility.ToStringPtr("group0"),
			DesiredCapacity:      utility.ToIntPtr(1),
		})
		require.Error(t, err)
		assert.True(t, ascent.IsValidationError(err))
	})
	t.Run("UnrecognizedCodeBecomesAPIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(errorResponse("Throttling", "rate exceeded")))
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		defer func() { assert.NoError(t, c.Close(ctx)) }()

		err := c.ExecutePolicy(ctx, &ascent.ExecutePolicyInput{
			PolicyName: utility.ToStringPtr("policy0"),
		})
		require.Error(t, err)
		assert.True(t, ascent.IsAPIError(err))
		assert.Equal(t, "Throttling => rate exceeded", err.Error())
	})
	t.Run("MalformedErrorBodyPropagatesStatusError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("the service fell over"))
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		defer func() { assert.NoError(t, c.Close(ctx)) }()

		err := c.ExecutePolicy(ctx, &ascent.ExecutePolicyInput{
			PolicyName: utility.ToStringPtr("policy0"),
		})
		require.Error(t, err)
		assert.False(t, ascent.IsAPIError(err))
		assert.Contains(t, err.Error(), "request returned status")
	})
	t.Run("ErrorCauseRemainsReachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(errorResponse("ValidationError", "no such group: group0")))
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		defer func() { assert.NoError(t, c.Close(ctx)) }()

		err := c.DeleteAutoScalingGroup(ctx, &ascent.DeleteAutoScalingGroupInput{
			AutoScalingGroupName: utility.ToStringPtr("group0"),
		})
		require.Error(t, err)

		var validationErr *ascent.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.NotNil(t, validationErr.Unwrap())
		assert.Contains(t, validationErr.Unwrap().Error(), "400")
	})
	t.Run("CloseIsIdempotent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		c := newTestClient(t, srv)
		assert.NoError(t, c.Close(ctx))
		assert.NoError(t, c.Close(ctx))
	})
	t.Run("ConstructionFailsWithInvalidOptions", func(t *testing.T) {
		c, err := NewBasicClient(*awsutil.NewClientOptions())
		assert.Error(t, err)
		assert.Zero(t, c)
	})
	t.Run("ConstructionSucceedsWithValidOptions", func(t *testing.T) {
		c, err := NewBasicClient(testutil.ValidNonIntegrationAWSOptions())
		require.NoError(t, err)
		require.NotZero(t, c)
		assert.NoError(t, c.Close(ctx))
	})
}
