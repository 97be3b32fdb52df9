package mock

import (
	"context"
	"testing"
	"time"

	"github.com/evergreen-ci/ascent"
	"github.com/evergreen-ci/ascent/internal/testcase"
	"github.com/evergreen-ci/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaultTestTimeout is the default test timeout for mock tests.
const defaultTestTimeout = time.Second

func TestClient(t *testing.T) {
	assert.Implements(t, (*ascent.AutoScalingClient)(nil), &Client{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, err := NewClient(*NewClientOptions().
		SetRegion("us-east-1").
		SetAccessKeyID("test-access-key").
		SetService(NewService()))
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, c.Close(ctx))
	}()

	for tName, tCase := range testcase.AutoScalingClientTests() {
		t.Run(tName, func(t *testing.T) {
			tctx, tcancel := context.WithTimeout(ctx, defaultTestTimeout)
			defer tcancel()

			c.ResetData()

			tCase(tctx, t, c)
		})
	}
}

func TestClientOptions(t *testing.T) {
	t.Run("SucceedsWithRegionAndAccessKey", func(t *testing.T) {
		opts := NewClientOptions().
			SetRegion("us-west-2").
			SetAccessKeyID("abc")
		require.NoError(t, opts.Validate())
		assert.Equal(t, GlobalAutoScalingService, opts.Service)
	})
	t.Run("PreservesExplicitService", func(t *testing.T) {
		s := NewService()
		opts := NewClientOptions().
			SetRegion("us-west-2").
			SetAccessKeyID("abc").
			SetService(s)
		require.NoError(t, opts.Validate())
		assert.Equal(t, s, opts.Service)
	})
	t.Run("FailsWithoutRegion", func(t *testing.T) {
		opts := NewClientOptions().SetAccessKeyID("abc")
		assert.Error(t, opts.Validate())
	})
	t.Run("FailsWithoutAccessKey", func(t *testing.T) {
		opts := NewClientOptions().SetRegion("us-west-2")
		assert.Error(t, opts.Validate())
	})
	t.Run("FailsWithUnknownRegion", func(t *testing.T) {
		opts := NewClientOptions().
			SetRegion("us-fake-9").
			SetAccessKeyID("abc")
		assert.Error(t, opts.Validate())
	})
	t.Run("SucceedsWithEveryKnownRegion", func(t *testing.T) {
		for _, region := range ValidRegions() {
			opts := NewClientOptions().
				SetRegion(region).
				SetAccessKeyID("abc")
			assert.NoError(t, opts.Validate())
		}
	})
}

func TestClientStateIsolation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	s := NewService()
	newClient := func(region, accessKeyID string) *Client {
		c, err := NewClient(*NewClientOptions().
			SetRegion(region).
			SetAccessKeyID(accessKeyID).
			SetService(s))
		require.NoError(t, err)
		return c
	}

	c1 := newClient("us-west-2", "abc")
	c2 := newClient("us-west-2", "xyz")
	c3 := newClient("us-east-1", "abc")

	require.NoError(t, c1.CreateLaunchConfiguration(ctx, &ascent.CreateLaunchConfigurationInput{
		LaunchConfigurationName: utility.ToStringPtr("lc-isolated"),
		ImageID:                 utility.ToStringPtr("ami-12345678"),
		InstanceType:            utility.ToStringPtr("m1.small"),
	}))

	t.Run("ResourcesAreScopedToCredentialAndRegion", func(t *testing.T) {
		out, err := c1.DescribeLaunchConfigurations(ctx, &ascent.DescribeLaunchConfigurationsInput{})
		require.NoError(t, err)
		assert.Len(t, out.LaunchConfigurations, 1)

		out, err = c2.DescribeLaunchConfigurations(ctx, &ascent.DescribeLaunchConfigurationsInput{})
		require.NoError(t, err)
		assert.Empty(t, out.LaunchConfigurations)

		out, err = c3.DescribeLaunchConfigurations(ctx, &ascent.DescribeLaunchConfigurationsInput{})
		require.NoError(t, err)
		assert.Empty(t, out.LaunchConfigurations)
	})
	t.Run("ResetDataOnlyClearsOwnCell", func(t *testing.T) {
		require.NoError(t, c2.CreateLaunchConfiguration(ctx, &ascent.CreateLaunchConfigurationInput{
			LaunchConfigurationName: utility.ToStringPtr("lc-other"),
			ImageID:                 utility.ToStringPtr("ami-12345678"),
			InstanceType:            utility.ToStringPtr("m1.small"),
		}))

		c2.ResetData()

		out, err := c2.DescribeLaunchConfigurations(ctx, &ascent.DescribeLaunchConfigurationsInput{})
		require.NoError(t, err)
		assert.Empty(t, out.LaunchConfigurations)

		out, err = c1.DescribeLaunchConfigurations(ctx, &ascent.DescribeLaunchConfigurationsInput{})
		require.NoError(t, err)
		assert.Len(t, out.LaunchConfigurations, 1)
	})
}
