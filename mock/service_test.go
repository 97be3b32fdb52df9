package mock

import (
	"context"
	"testing"

	"github.com/evergreen-ci/ascent"
	"github.com/evergreen-ci/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("NewServiceStartsEmpty", func(t *testing.T) {
		s := NewService()
		assert.Empty(t, s.Regions)
	})
	t.Run("CellIsCreatedLazilyWithDefaultSkeleton", func(t *testing.T) {
		s := NewService()
		cell := s.Cell("us-west-2", "abc")
		require.NotZero(t, cell)

		assert.Len(t, cell.AdjustmentTypes, 3)
		assert.Len(t, cell.HealthStates, 2)
		assert.Len(t, cell.ProcessTypes, 7)
		assert.Len(t, cell.MetricGranularities, 1)
		assert.Len(t, cell.Metrics, 7)

		assert.Empty(t, cell.LaunchConfigurations)
		assert.Empty(t, cell.AutoScalingGroups)
		assert.Empty(t, cell.ScalingPolicies)
		assert.Empty(t, cell.ScheduledActions)
		assert.Empty(t, cell.Activities)
	})
	t.Run("CellReturnsSameStateForSameKeys", func(t *testing.T) {
		s := NewService()
		cell := s.Cell("us-west-2", "abc")
		cell.AutoScalingGroups["group0"] = ascent.AutoScalingGroup{
			AutoScalingGroupName: utility.ToStringPtr("group0"),
		}
		assert.Len(t, s.Cell("us-west-2", "abc").AutoScalingGroups, 1)
		assert.Empty(t, s.Cell("us-west-2", "xyz").AutoScalingGroups)
		assert.Empty(t, s.Cell("us-east-1", "abc").AutoScalingGroups)
	})
	t.Run("ResetDataRecreatesFreshSkeletonOnNextAccess", func(t *testing.T) {
		s := NewService()
		cell := s.Cell("us-west-2", "abc")
		cell.AutoScalingGroups["group0"] = ascent.AutoScalingGroup{
			AutoScalingGroupName: utility.ToStringPtr("group0"),
		}

		s.ResetData("us-west-2", "abc")

		cell = s.Cell("us-west-2", "abc")
		assert.Empty(t, cell.AutoScalingGroups)
		assert.Len(t, cell.ProcessTypes, 7)
	})
	t.Run("ResetClearsAllState", func(t *testing.T) {
		s := NewService()
		s.Cell("us-west-2", "abc")
		s.Cell("us-east-1", "xyz")
		s.Reset()
		assert.Empty(t, s.Regions)
	})
	t.Run("IsValidRegionRecognizesKnownRegionsOnly", func(t *testing.T) {
		for _, region := range ValidRegions() {
			assert.True(t, IsValidRegion(region))
		}
		assert.False(t, IsValidRegion("us-fake-9"))
		assert.False(t, IsValidRegion(""))
	})
}

func TestFreshClientSeesDefaultSkeleton(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	c, err := NewClient(*NewClientOptions().
		SetRegion("us-west-2").
		SetAccessKeyID("abc").
		SetService(NewService()))
	require.NoError(t, err)

	processes, err := c.DescribeScalingProcessTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, processes.Processes, 7)

	groups, err := c.DescribeAutoScalingGroups(ctx, &ascent.DescribeAutoScalingGroupsInput{})
	require.NoError(t, err)
	assert.Empty(t, groups.AutoScalingGroups)

	require.NoError(t, c.CreateLaunchConfiguration(ctx, &ascent.CreateLaunchConfigurationInput{
		LaunchConfigurationName: utility.ToStringPtr("lc0"),
		ImageID:                 utility.ToStringPtr("ami-12345678"),
		InstanceType:            utility.ToStringPtr("m1.small"),
	}))
	require.Len(t, c.Data().LaunchConfigurations, 1)

	c.ResetData()

	lcs, err := c.DescribeLaunchConfigurations(ctx, &ascent.DescribeLaunchConfigurationsInput{})
	require.NoError(t, err)
	assert.Empty(t, lcs.LaunchConfigurations)

	processes, err = c.DescribeScalingProcessTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, processes.Processes, 7)
}
