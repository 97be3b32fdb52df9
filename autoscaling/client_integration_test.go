package autoscaling

import (
	"context"
	"testing"
	"time"

	"github.com/evergreen-ci/ascent/internal/testcase"
	"github.com/evergreen-ci/ascent/internal/testutil"
	"github.com/evergreen-ci/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// integrationTestTimeout is the timeout for test cases that make actual
// requests to AWS.
const integrationTestTimeout = time.Minute

func TestBasicClientIntegration(t *testing.T) {
	testutil.CheckAWSEnvVars(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hc := utility.GetHTTPClient()
	defer utility.PutHTTPClient(hc)

	opts := testutil.ValidIntegrationAWSOptions()
	opts.SetHTTPClient(hc)

	c, err := NewBasicClient(opts)
	require.NoError(t, err)
	require.NotNil(t, c)

	defer func() {
		assert.NoError(t, c.Close(ctx))
	}()

	for tName, tCase := range testcase.AutoScalingClientTests() {
		t.Run(tName, func(t *testing.T) {
			tctx, tcancel := context.WithTimeout(ctx, integrationTestTimeout)
			defer tcancel()

			tCase(tctx, t, c)
		})
	}
}
