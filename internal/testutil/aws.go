package testutil

import (
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/evergreen-ci/ascent/awsutil"
	"github.com/evergreen-ci/utility"
)

// runtimeNamespace is a random string generated during testing runtime that
// acts as a namespace for this particular runtime's tests. It is used to
// namespace AWS resources (e.g. groups, launch configurations) so that tests
// running concurrently on different machines do not interfere with each
// other's resource cleanup.
var runtimeNamespace = utility.RandomString()

// NewGroupName makes a new test group name with a common prefix, the given
// name, and a random string.
func NewGroupName(name string) string {
	return strings.Join([]string{"ascent", strings.ReplaceAll(name, "/", "-"), runtimeNamespace, utility.RandomString()}, "-")
}

// NewLaunchConfigurationName makes a new test launch configuration name with
// a common prefix, the given name, and a random string.
func NewLaunchConfigurationName(name string) string {
	return strings.Join([]string{"ascent", strings.ReplaceAll(name, "/", "-"), runtimeNamespace, utility.RandomString()}, "-")
}

// ValidIntegrationAWSOptions returns valid options to create an AWS client
// that can make actual requests to AWS for integration testing. Credentials
// and the region are read from the standard environment variables.
func ValidIntegrationAWSOptions() awsutil.ClientOptions {
	return *awsutil.NewClientOptions().
		SetCredentialsProvider(credentials.NewStaticCredentialsProvider(os.Getenv("AWS_ACCESS_KEY"), os.Getenv("AWS_SECRET_ACCESS_KEY"), "")).
		SetRegion(os.Getenv("AWS_REGION"))
}

// ValidNonIntegrationAWSOptions returns valid options to create an AWS client
// that doesn't make any actual requests to AWS.
func ValidNonIntegrationAWSOptions() awsutil.ClientOptions {
	return *awsutil.NewClientOptions().
		SetCredentialsProvider(credentials.NewStaticCredentialsProvider("", "", "")).
		SetRegion("us-east-1")
}
