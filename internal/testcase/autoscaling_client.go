package testcase

import (
	"context"
	"testing"

	"github.com/evergreen-ci/ascent"
	"github.com/evergreen-ci/ascent/internal/testutil"
	"github.com/evergreen-ci/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AutoScalingClientTestCase represents a test case for an
// ascent.AutoScalingClient.
type AutoScalingClientTestCase func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient)

// AutoScalingClientTests returns common test cases that an
// ascent.AutoScalingClient should support.
func AutoScalingClientTests() map[string]AutoScalingClientTestCase {
	return map[string]AutoScalingClientTestCase{
		"DescribeAdjustmentTypesReturnsSupportedTypes": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			out, err := c.DescribeAdjustmentTypes(ctx)
			require.NoError(t, err)
			require.NotZero(t, out)
			require.Len(t, out.AdjustmentTypes, 3)
			var names []string
			for _, at := range out.AdjustmentTypes {
				names = append(names, utility.FromStringPtr(at.AdjustmentType))
			}
			assert.Contains(t, names, "ChangeInCapacity")
			assert.Contains(t, names, "ExactCapacity")
			assert.Contains(t, names, "PercentChangeInCapacity")
		},
		"DescribeScalingProcessTypesReturnsSupportedProcesses": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			out, err := c.DescribeScalingProcessTypes(ctx)
			require.NoError(t, err)
			require.NotZero(t, out)
			require.Len(t, out.Processes, 7)
			var names []string
			for _, p := range out.Processes {
				names = append(names, utility.FromStringPtr(p.ProcessName))
			}
			assert.Contains(t, names, "Launch")
			assert.Contains(t, names, "Terminate")
		},
		"DescribeMetricCollectionTypesReturnsMetricsAndGranularities": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			out, err := c.DescribeMetricCollectionTypes(ctx)
			require.NoError(t, err)
			require.NotZero(t, out)
			require.Len(t, out.Metrics, 7)
			require.Len(t, out.Granularities, 1)
			assert.Equal(t, "1Minute", utility.FromStringPtr(out.Granularities[0].Granularity))
		},
		"DescribeTerminationPolicyTypesSucceeds": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			out, err := c.DescribeTerminationPolicyTypes(ctx)
			require.NoError(t, err)
			require.NotZero(t, out)
			assert.Contains(t, out.TerminationPolicyTypes, "Default")
			assert.Contains(t, out.TerminationPolicyTypes, "OldestInstance")
		},
		"CreateAndDescribeLaunchConfigurationSucceeds": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)

			out, err := c.DescribeLaunchConfigurations(ctx, &ascent.DescribeLaunchConfigurationsInput{
				LaunchConfigurationNames: []string{lcName},
			})
			require.NoError(t, err)
			require.NotZero(t, out)
			require.Len(t, out.LaunchConfigurations, 1)
			lc := out.LaunchConfigurations[0]
			assert.Equal(t, lcName, utility.FromStringPtr(lc.LaunchConfigurationName))
			assert.NotZero(t, utility.FromStringPtr(lc.LaunchConfigurationARN))
			assert.Equal(t, "ami-12345678", utility.FromStringPtr(lc.ImageID))
			assert.Equal(t, "m1.small", utility.FromStringPtr(lc.InstanceType))
		},
		"CreateLaunchConfigurationFailsWithDuplicateName": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)

			err := c.CreateLaunchConfiguration(ctx, &ascent.CreateLaunchConfigurationInput{
				LaunchConfigurationName: utility.ToStringPtr(lcName),
				ImageID:                 utility.ToStringPtr("ami-12345678"),
				InstanceType:            utility.ToStringPtr("m1.small"),
			})
			require.Error(t, err)
			assert.True(t, ascent.IsIdentifierTakenError(err))
		},
		"CreateAutoScalingGroupFailsWithNonexistentLaunchConfiguration": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			err := c.CreateAutoScalingGroup(ctx, &ascent.CreateAutoScalingGroupInput{
				AutoScalingGroupName:    utility.ToStringPtr(testutil.NewGroupName(t.Name())),
				LaunchConfigurationName: utility.ToStringPtr(testutil.NewLaunchConfigurationName(t.Name())),
				AvailabilityZones:       []string{"us-east-1a"},
				MinSize:                 utility.ToIntPtr(0),
				MaxSize:                 utility.ToIntPtr(1),
			})
			require.Error(t, err)
			assert.True(t, ascent.IsValidationError(err))
		},
		"CreateAutoScalingGroupLaunchesInstancesToDesiredCapacity": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 2)
			defer cleanupGroup(ctx, t, c, groupName)

			out, err := c.DescribeAutoScalingGroups(ctx, &ascent.DescribeAutoScalingGroupsInput{
				AutoScalingGroupNames: []string{groupName},
			})
			require.NoError(t, err)
			require.NotZero(t, out)
			require.Len(t, out.AutoScalingGroups, 1)
			group := out.AutoScalingGroups[0]
			assert.Equal(t, 2, utility.FromIntPtr(group.DesiredCapacity))
			require.Len(t, group.Instances, 2)
			for _, instance := range group.Instances {
				assert.Equal(t, "Healthy", utility.FromStringPtr(instance.HealthStatus))
				assert.Equal(t, "InService", utility.FromStringPtr(instance.LifecycleState))
			}
		},
		"CreateAutoScalingGroupFailsWithDuplicateName": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 0)
			defer cleanupGroup(ctx, t, c, groupName)

			err := c.CreateAutoScalingGroup(ctx, &ascent.CreateAutoScalingGroupInput{
				AutoScalingGroupName:    utility.ToStringPtr(groupName),
				LaunchConfigurationName: utility.ToStringPtr(lcName),
				AvailabilityZones:       []string{"us-east-1a"},
				MinSize:                 utility.ToIntPtr(0),
				MaxSize:                 utility.ToIntPtr(1),
			})
			require.Error(t, err)
			assert.True(t, ascent.IsIdentifierTakenError(err))
		},
		"CreateAutoScalingGroupFailsWithNegativeCapacity": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)

			err := c.CreateAutoScalingGroup(ctx, &ascent.CreateAutoScalingGroupInput{
				AutoScalingGroupName:    utility.ToStringPtr(testutil.NewGroupName(t.Name())),
				LaunchConfigurationName: utility.ToStringPtr(lcName),
				AvailabilityZones:       []string{"us-east-1a"},
				MinSize:                 utility.ToIntPtr(0),
				MaxSize:                 utility.ToIntPtr(1),
				DesiredCapacity:         utility.ToIntPtr(-1),
			})
			require.Error(t, err)
			assert.True(t, ascent.IsValidationError(err))
		},
		"UpdateAutoScalingGroupFailsWithNegativeDesiredCapacity": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 0)
			defer cleanupGroup(ctx, t, c, groupName)

			err := c.UpdateAutoScalingGroup(ctx, &ascent.UpdateAutoScalingGroupInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				DesiredCapacity:      utility.ToIntPtr(-1),
			})
			require.Error(t, err)
			assert.True(t, ascent.IsValidationError(err))

			group := describeGroup(ctx, t, c, groupName)
			assert.Equal(t, 0, utility.FromIntPtr(group.DesiredCapacity))
			assert.Empty(t, group.Instances)
		},
		"DeleteLaunchConfigurationFailsWhileAttachedToGroup": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 0)
			defer cleanupGroup(ctx, t, c, groupName)

			err := c.DeleteLaunchConfiguration(ctx, &ascent.DeleteLaunchConfigurationInput{
				LaunchConfigurationName: utility.ToStringPtr(lcName),
			})
			require.Error(t, err)
			assert.True(t, ascent.IsResourceInUseError(err))
		},
		"DeleteAutoScalingGroupWithInstancesRequiresForceDelete": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 1)

			err := c.DeleteAutoScalingGroup(ctx, &ascent.DeleteAutoScalingGroupInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
			})
			require.Error(t, err)
			assert.True(t, ascent.IsResourceInUseError(err))

			require.NoError(t, c.DeleteAutoScalingGroup(ctx, &ascent.DeleteAutoScalingGroupInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				ForceDelete:          utility.ToBoolPtr(true),
			}))
		},
		"DeleteAutoScalingGroupFailsWithNonexistentGroup": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			err := c.DeleteAutoScalingGroup(ctx, &ascent.DeleteAutoScalingGroupInput{
				AutoScalingGroupName: utility.ToStringPtr(testutil.NewGroupName(t.Name())),
			})
			require.Error(t, err)
			assert.True(t, ascent.IsValidationError(err))
		},
		"SetDesiredCapacityAdjustsInstances": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 1)
			defer cleanupGroup(ctx, t, c, groupName)

			require.NoError(t, c.SetDesiredCapacity(ctx, &ascent.SetDesiredCapacityInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				DesiredCapacity:      utility.ToIntPtr(3),
			}))

			group := describeGroup(ctx, t, c, groupName)
			assert.Equal(t, 3, utility.FromIntPtr(group.DesiredCapacity))
			assert.Len(t, group.Instances, 3)
		},
		"SetDesiredCapacityFailsOutsideGroupBounds": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 1)
			defer cleanupGroup(ctx, t, c, groupName)

			err := c.SetDesiredCapacity(ctx, &ascent.SetDesiredCapacityInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				DesiredCapacity:      utility.ToIntPtr(100),
			})
			require.Error(t, err)
			assert.True(t, ascent.IsValidationError(err))
		},
		"PutAndExecuteScalingPolicySucceeds": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 1)
			defer cleanupGroup(ctx, t, c, groupName)

			policyName := "scale-up-" + utility.RandomString()
			putOut, err := c.PutScalingPolicy(ctx, &ascent.PutScalingPolicyInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				PolicyName:           utility.ToStringPtr(policyName),
				AdjustmentType:       utility.ToStringPtr("ChangeInCapacity"),
				ScalingAdjustment:    utility.ToIntPtr(1),
			})
			require.NoError(t, err)
			require.NotZero(t, putOut)
			assert.NotZero(t, utility.FromStringPtr(putOut.PolicyARN))

			require.NoError(t, c.ExecutePolicy(ctx, &ascent.ExecutePolicyInput{
				PolicyName: utility.ToStringPtr(policyName),
			}))

			group := describeGroup(ctx, t, c, groupName)
			assert.Equal(t, 2, utility.FromIntPtr(group.DesiredCapacity))

			require.NoError(t, c.DeletePolicy(ctx, &ascent.DeletePolicyInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				PolicyName:           utility.ToStringPtr(policyName),
			}))
		},
		"ExecutePolicyFailsWithNonexistentPolicy": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			err := c.ExecutePolicy(ctx, &ascent.ExecutePolicyInput{
				PolicyName: utility.ToStringPtr("nonexistent-" + utility.RandomString()),
			})
			require.Error(t, err)
			assert.True(t, ascent.IsValidationError(err))
		},
		"TerminateInstanceWithoutDecrementLaunchesReplacement": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 1)
			defer cleanupGroup(ctx, t, c, groupName)

			group := describeGroup(ctx, t, c, groupName)
			require.Len(t, group.Instances, 1)
			id := utility.FromStringPtr(group.Instances[0].InstanceID)

			out, err := c.TerminateInstanceInAutoScalingGroup(ctx, &ascent.TerminateInstanceInAutoScalingGroupInput{
				InstanceID:                     utility.ToStringPtr(id),
				ShouldDecrementDesiredCapacity: utility.ToBoolPtr(false),
			})
			require.NoError(t, err)
			require.NotZero(t, out)
			require.NotZero(t, out.Activity)
			assert.NotZero(t, utility.FromStringPtr(out.Activity.ActivityID))

			group = describeGroup(ctx, t, c, groupName)
			assert.Equal(t, 1, utility.FromIntPtr(group.DesiredCapacity))
			require.Len(t, group.Instances, 1)
			assert.NotEqual(t, id, utility.FromStringPtr(group.Instances[0].InstanceID))

			activities, err := c.DescribeScalingActivities(ctx, &ascent.DescribeScalingActivitiesInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
			})
			require.NoError(t, err)
			require.NotEmpty(t, activities.Activities)
		},
		"TerminateInstanceWithDecrementShrinksGroup": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 2)
			defer cleanupGroup(ctx, t, c, groupName)

			group := describeGroup(ctx, t, c, groupName)
			require.Len(t, group.Instances, 2)
			id := utility.FromStringPtr(group.Instances[0].InstanceID)

			out, err := c.TerminateInstanceInAutoScalingGroup(ctx, &ascent.TerminateInstanceInAutoScalingGroupInput{
				InstanceID:                     utility.ToStringPtr(id),
				ShouldDecrementDesiredCapacity: utility.ToBoolPtr(true),
			})
			require.NoError(t, err)
			require.NotZero(t, out)

			group = describeGroup(ctx, t, c, groupName)
			assert.Equal(t, 1, utility.FromIntPtr(group.DesiredCapacity))
			assert.Len(t, group.Instances, 1)
		},
		"TerminateInstanceFailsWithNonexistentInstance": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			out, err := c.TerminateInstanceInAutoScalingGroup(ctx, &ascent.TerminateInstanceInAutoScalingGroupInput{
				InstanceID: utility.ToStringPtr("i-does-not-exist"),
			})
			require.Error(t, err)
			assert.True(t, ascent.IsValidationError(err))
			assert.Zero(t, out)
		},
		"SuspendAndResumeProcessesSucceeds": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 0)
			defer cleanupGroup(ctx, t, c, groupName)

			require.NoError(t, c.SuspendProcesses(ctx, &ascent.SuspendProcessesInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				ScalingProcesses:     []string{"Launch", "Terminate"},
			}))

			group := describeGroup(ctx, t, c, groupName)
			require.Len(t, group.SuspendedProcesses, 2)

			require.NoError(t, c.ResumeProcesses(ctx, &ascent.ResumeProcessesInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				ScalingProcesses:     []string{"Launch"},
			}))

			group = describeGroup(ctx, t, c, groupName)
			require.Len(t, group.SuspendedProcesses, 1)
			assert.Equal(t, "Terminate", utility.FromStringPtr(group.SuspendedProcesses[0].ProcessName))
		},
		"SuspendProcessesFailsWithInvalidProcess": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 0)
			defer cleanupGroup(ctx, t, c, groupName)

			err := c.SuspendProcesses(ctx, &ascent.SuspendProcessesInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				ScalingProcesses:     []string{"NotAProcess"},
			})
			require.Error(t, err)
			assert.True(t, ascent.IsValidationError(err))
		},
		"EnableMetricsCollectionFailsWithInvalidGranularity": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 0)
			defer cleanupGroup(ctx, t, c, groupName)

			err := c.EnableMetricsCollection(ctx, &ascent.EnableMetricsCollectionInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				Granularity:          utility.ToStringPtr("5Minute"),
			})
			require.Error(t, err)
			assert.True(t, ascent.IsValidationError(err))
		},
		"EnableAndDisableMetricsCollectionSucceeds": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 0)
			defer cleanupGroup(ctx, t, c, groupName)

			require.NoError(t, c.EnableMetricsCollection(ctx, &ascent.EnableMetricsCollectionInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				Granularity:          utility.ToStringPtr("1Minute"),
				Metrics:              []string{"GroupMinSize", "GroupMaxSize"},
			}))

			group := describeGroup(ctx, t, c, groupName)
			require.Len(t, group.EnabledMetrics, 2)

			require.NoError(t, c.DisableMetricsCollection(ctx, &ascent.DisableMetricsCollectionInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
			}))

			group = describeGroup(ctx, t, c, groupName)
			assert.Empty(t, group.EnabledMetrics)
		},
		"SetInstanceHealthSucceeds": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 1)
			defer cleanupGroup(ctx, t, c, groupName)

			group := describeGroup(ctx, t, c, groupName)
			require.Len(t, group.Instances, 1)
			id := utility.FromStringPtr(group.Instances[0].InstanceID)

			require.NoError(t, c.SetInstanceHealth(ctx, &ascent.SetInstanceHealthInput{
				InstanceID:   utility.ToStringPtr(id),
				HealthStatus: utility.ToStringPtr("Unhealthy"),
			}))

			group = describeGroup(ctx, t, c, groupName)
			assert.Equal(t, "Unhealthy", utility.FromStringPtr(group.Instances[0].HealthStatus))
		},
		"SetInstanceHealthFailsWithInvalidStatus": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			err := c.SetInstanceHealth(ctx, &ascent.SetInstanceHealthInput{
				InstanceID:   utility.ToStringPtr("i-does-not-exist"),
				HealthStatus: utility.ToStringPtr("Sideways"),
			})
			require.Error(t, err)
			assert.True(t, ascent.IsValidationError(err))
		},
		"TagsLifecycleSucceeds": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 0)
			defer cleanupGroup(ctx, t, c, groupName)

			tag := ascent.Tag{
				Key:               utility.ToStringPtr("purpose"),
				Value:             utility.ToStringPtr("testing"),
				ResourceID:        utility.ToStringPtr(groupName),
				PropagateAtLaunch: utility.ToBoolPtr(true),
			}
			require.NoError(t, c.CreateOrUpdateTags(ctx, &ascent.CreateOrUpdateTagsInput{Tags: []ascent.Tag{tag}}))

			out, err := c.DescribeTags(ctx, &ascent.DescribeTagsInput{})
			require.NoError(t, err)
			require.NotZero(t, out)
			found := false
			for _, described := range out.Tags {
				if utility.FromStringPtr(described.ResourceID) == groupName && utility.FromStringPtr(described.Key) == "purpose" {
					found = true
					assert.Equal(t, "testing", utility.FromStringPtr(described.Value))
				}
			}
			assert.True(t, found)

			require.NoError(t, c.DeleteTags(ctx, &ascent.DeleteTagsInput{Tags: []ascent.Tag{tag}}))

			group := describeGroup(ctx, t, c, groupName)
			assert.Empty(t, group.Tags)
		},
		"PutAndDeleteScheduledActionSucceeds": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 0)
			defer cleanupGroup(ctx, t, c, groupName)

			actionName := "scheduled-" + utility.RandomString()
			require.NoError(t, c.PutScheduledUpdateGroupAction(ctx, &ascent.PutScheduledUpdateGroupActionInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				ScheduledActionName:  utility.ToStringPtr(actionName),
				Recurrence:           utility.ToStringPtr("0 7 * * *"),
				DesiredCapacity:      utility.ToIntPtr(2),
			}))

			out, err := c.DescribeScheduledActions(ctx, &ascent.DescribeScheduledActionsInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
			})
			require.NoError(t, err)
			require.NotZero(t, out)
			require.Len(t, out.ScheduledUpdateGroupActions, 1)
			assert.Equal(t, actionName, utility.FromStringPtr(out.ScheduledUpdateGroupActions[0].ScheduledActionName))

			require.NoError(t, c.DeleteScheduledAction(ctx, &ascent.DeleteScheduledActionInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				ScheduledActionName:  utility.ToStringPtr(actionName),
			}))

			out, err = c.DescribeScheduledActions(ctx, &ascent.DescribeScheduledActionsInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
			})
			require.NoError(t, err)
			assert.Empty(t, out.ScheduledUpdateGroupActions)
		},
		"UpdateAutoScalingGroupChangesOnlySetFields": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 1)
			defer cleanupGroup(ctx, t, c, groupName)

			require.NoError(t, c.UpdateAutoScalingGroup(ctx, &ascent.UpdateAutoScalingGroupInput{
				AutoScalingGroupName: utility.ToStringPtr(groupName),
				MaxSize:              utility.ToIntPtr(10),
			}))

			group := describeGroup(ctx, t, c, groupName)
			assert.Equal(t, 10, utility.FromIntPtr(group.MaxSize))
			assert.Equal(t, 0, utility.FromIntPtr(group.MinSize))
			assert.Equal(t, 1, utility.FromIntPtr(group.DesiredCapacity))
			assert.Equal(t, lcName, utility.FromStringPtr(group.LaunchConfigurationName))
		},
		"DescribeAutoScalingInstancesFiltersByInstanceID": func(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) {
			lcName := createTestLaunchConfiguration(ctx, t, c)
			defer cleanupLaunchConfiguration(ctx, t, c, lcName)
			groupName := createTestGroup(ctx, t, c, lcName, 2)
			defer cleanupGroup(ctx, t, c, groupName)

			group := describeGroup(ctx, t, c, groupName)
			require.Len(t, group.Instances, 2)
			id := utility.FromStringPtr(group.Instances[1].InstanceID)

			out, err := c.DescribeAutoScalingInstances(ctx, &ascent.DescribeAutoScalingInstancesInput{
				InstanceIDs: []string{id},
			})
			require.NoError(t, err)
			require.NotZero(t, out)
			require.Len(t, out.AutoScalingInstances, 1)
			assert.Equal(t, id, utility.FromStringPtr(out.AutoScalingInstances[0].InstanceID))
			assert.Equal(t, groupName, utility.FromStringPtr(out.AutoScalingInstances[0].AutoScalingGroupName))
		},
	}
}

func createTestLaunchConfiguration(ctx context.Context, t *testing.T, c ascent.AutoScalingClient) string {
	name := testutil.NewLaunchConfigurationName(t.Name())
	require.NoError(t, c.CreateLaunchConfiguration(ctx, &ascent.CreateLaunchConfigurationInput{
		LaunchConfigurationName: utility.ToStringPtr(name),
		ImageID:                 utility.ToStringPtr("ami-12345678"),
		InstanceType:            utility.ToStringPtr("m1.small"),
		KeyName:                 utility.ToStringPtr("test-key"),
		SecurityGroups:          []string{"default"},
		InstanceMonitoring:      utility.ToBoolPtr(true),
	}))
	return name
}

func createTestGroup(ctx context.Context, t *testing.T, c ascent.AutoScalingClient, lcName string, desiredCapacity int) string {
	name := testutil.NewGroupName(t.Name())
	require.NoError(t, c.CreateAutoScalingGroup(ctx, &ascent.CreateAutoScalingGroupInput{
		AutoScalingGroupName:    utility.ToStringPtr(name),
		LaunchConfigurationName: utility.ToStringPtr(lcName),
		AvailabilityZones:       []string{"us-east-1a", "us-east-1b"},
		MinSize:                 utility.ToIntPtr(0),
		MaxSize:                 utility.ToIntPtr(5),
		DesiredCapacity:         utility.ToIntPtr(desiredCapacity),
	}))
	return name
}

func describeGroup(ctx context.Context, t *testing.T, c ascent.AutoScalingClient, name string) ascent.AutoScalingGroup {
	out, err := c.DescribeAutoScalingGroups(ctx, &ascent.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: []string{name},
	})
	require.NoError(t, err)
	require.NotZero(t, out)
	require.Len(t, out.AutoScalingGroups, 1)
	return out.AutoScalingGroups[0]
}

func cleanupGroup(ctx context.Context, t *testing.T, c ascent.AutoScalingClient, name string) {
	assert.NoError(t, c.DeleteAutoScalingGroup(ctx, &ascent.DeleteAutoScalingGroupInput{
		AutoScalingGroupName: utility.ToStringPtr(name),
		ForceDelete:          utility.ToBoolPtr(true),
	}))
}

func cleanupLaunchConfiguration(ctx context.Context, t *testing.T, c ascent.AutoScalingClient, name string) {
	assert.NoError(t, c.DeleteLaunchConfiguration(ctx, &ascent.DeleteLaunchConfigurationInput{
		LaunchConfigurationName: utility.ToStringPtr(name),
	}))
}
