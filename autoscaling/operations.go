package autoscaling

import (
	"context"
	"net/url"

	"github.com/evergreen-ci/ascent"
)

// CreateAutoScalingGroup creates a new group from a launch configuration.
func (c *BasicClient) CreateAutoScalingGroup(ctx context.Context, in *ascent.CreateAutoScalingGroupInput) error {
	params := url.Values{}
	setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
	setString(params, "LaunchConfigurationName", in.LaunchConfigurationName)
	setStringList(params, "AvailabilityZones", in.AvailabilityZones)
	setInt(params, "MinSize", in.MinSize)
	setInt(params, "MaxSize", in.MaxSize)
	setInt(params, "DesiredCapacity", in.DesiredCapacity)
	setInt(params, "DefaultCooldown", in.DefaultCooldown)
	setString(params, "HealthCheckType", in.HealthCheckType)
	setInt(params, "HealthCheckGracePeriod", in.HealthCheckGracePeriod)
	setStringList(params, "LoadBalancerNames", in.LoadBalancerNames)
	setString(params, "PlacementGroup", in.PlacementGroup)
	setStringList(params, "TerminationPolicies", in.TerminationPolicies)
	setString(params, "VPCZoneIdentifier", in.VPCZoneIdentifier)
	setTags(params, "Tags", in.Tags)
	return c.runRequest(ctx, "CreateAutoScalingGroup", params, nil, false)
}

// CreateLaunchConfiguration creates a new launch configuration.
func (c *BasicClient) CreateLaunchConfiguration(ctx context.Context, in *ascent.CreateLaunchConfigurationInput) error {
	params := url.Values{}
	setString(params, "LaunchConfigurationName", in.LaunchConfigurationName)
	setString(params, "ImageId", in.ImageID)
	setString(params, "InstanceType", in.InstanceType)
	setString(params, "KeyName", in.KeyName)
	setStringList(params, "SecurityGroups", in.SecurityGroups)
	setString(params, "UserData", in.UserData)
	setInstanceMonitoring(params, "InstanceMonitoring", in.InstanceMonitoring)
	setString(params, "SpotPrice", in.SpotPrice)
	setString(params, "IamInstanceProfile", in.IAMInstanceProfile)
	setBool(params, "EbsOptimized", in.EBSOptimized)
	setBool(params, "AssociatePublicIpAddress", in.AssociatePublicIPAddress)
	setString(params, "PlacementTenancy", in.PlacementTenancy)
	return c.runRequest(ctx, "CreateLaunchConfiguration", params, nil, false)
}

// CreateOrUpdateTags creates new tags or updates existing tags on groups.
func (c *BasicClient) CreateOrUpdateTags(ctx context.Context, in *ascent.CreateOrUpdateTagsInput) error {
	params := url.Values{}
	setTags(params, "Tags", in.Tags)
	return c.runRequest(ctx, "CreateOrUpdateTags", params, nil, false)
}

// DeleteAutoScalingGroup deletes an existing group.
func (c *BasicClient) DeleteAutoScalingGroup(ctx context.Context, in *ascent.DeleteAutoScalingGroupInput) error {
	params := url.Values{}
	setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
	setBool(params, "ForceDelete", in.ForceDelete)
	return c.runRequest(ctx, "DeleteAutoScalingGroup", params, nil, true)
}

// DeleteLaunchConfiguration deletes a launch configuration that is not
// attached to any group.
func (c *BasicClient) DeleteLaunchConfiguration(ctx context.Context, in *ascent.DeleteLaunchConfigurationInput) error {
	params := url.Values{}
	setString(params, "LaunchConfigurationName", in.LaunchConfigurationName)
	return c.runRequest(ctx, "DeleteLaunchConfiguration", params, nil, true)
}

// DeletePolicy deletes a scaling policy.
func (c *BasicClient) DeletePolicy(ctx context.Context, in *ascent.DeletePolicyInput) error {
	params := url.Values{}
	setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
	setString(params, "PolicyName", in.PolicyName)
	return c.runRequest(ctx, "DeletePolicy", params, nil, true)
}

// DeleteScheduledAction deletes a scheduled scaling action.
func (c *BasicClient) DeleteScheduledAction(ctx context.Context, in *ascent.DeleteScheduledActionInput) error {
	params := url.Values{}
	setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
	setString(params, "ScheduledActionName", in.ScheduledActionName)
	return c.runRequest(ctx, "DeleteScheduledAction", params, nil, true)
}

// DeleteTags removes tags from groups.
func (c *BasicClient) DeleteTags(ctx context.Context, in *ascent.DeleteTagsInput) error {
	params := url.Values{}
	setTags(params, "Tags", in.Tags)
	return c.runRequest(ctx, "DeleteTags", params, nil, true)
}

// DescribeAdjustmentTypes lists the policy adjustment types the service
// supports.
func (c *BasicClient) DescribeAdjustmentTypes(ctx context.Context) (*ascent.DescribeAdjustmentTypesOutput, error) {
	var resp describeAdjustmentTypesResponse
	if err := c.runRequest(ctx, "DescribeAdjustmentTypes", url.Values{}, &resp, true); err != nil {
		return nil, err
	}
	return &ascent.DescribeAdjustmentTypesOutput{
		AdjustmentTypes: resp.AdjustmentTypes,
		RequestID:       resp.RequestID,
	}, nil
}

// DescribeAutoScalingGroups gets information about existing groups.
func (c *BasicClient) DescribeAutoScalingGroups(ctx context.Context, in *ascent.DescribeAutoScalingGroupsInput) (*ascent.DescribeAutoScalingGroupsOutput, error) {
	params := url.Values{}
	if in != nil {
		setStringList(params, "AutoScalingGroupNames", in.AutoScalingGroupNames)
		setInt(params, "MaxRecords", in.MaxRecords)
		setString(params, "NextToken", in.NextToken)
	}
	var resp describeAutoScalingGroupsResponse
	if err := c.runRequest(ctx, "DescribeAutoScalingGroups", params, &resp, true); err != nil {
		return nil, err
	}
	return &ascent.DescribeAutoScalingGroupsOutput{
		AutoScalingGroups: resp.AutoScalingGroups,
		NextToken:         resp.NextToken,
		RequestID:         resp.RequestID,
	}, nil
}

// DescribeAutoScalingInstances gets information about instances within
// groups.
func (c *BasicClient) DescribeAutoScalingInstances(ctx context.Context, in *ascent.DescribeAutoScalingInstancesInput) (*ascent.DescribeAutoScalingInstancesOutput, error) {
	params := url.Values{}
	if in != nil {
		setStringList(params, "InstanceIds", in.InstanceIDs)
		setInt(params, "MaxRecords", in.MaxRecords)
		setString(params, "NextToken", in.NextToken)
	}
	var resp describeAutoScalingInstancesResponse
	if err := c.runRequest(ctx, "DescribeAutoScalingInstances", params, &resp, true); err != nil {
		return nil, err
	}
	return &ascent.DescribeAutoScalingInstancesOutput{
		AutoScalingInstances: resp.AutoScalingInstances,
		NextToken:            resp.NextToken,
		RequestID:            resp.RequestID,
	}, nil
}

// DescribeLaunchConfigurations gets information about existing launch
// configurations.
func (c *BasicClient) DescribeLaunchConfigurations(ctx context.Context, in *ascent.DescribeLaunchConfigurationsInput) (*ascent.DescribeLaunchConfigurationsOutput, error) {
	params := url.Values{}
	if in != nil {
		setStringList(params, "LaunchConfigurationNames", in.LaunchConfigurationNames)
		setInt(params, "MaxRecords", in.MaxRecords)
		setString(params, "NextToken", in.NextToken)
	}
	var resp describeLaunchConfigurationsResponse
	if err := c.runRequest(ctx, "DescribeLaunchConfigurations", params, &resp, true); err != nil {
		return nil, err
	}
	return &ascent.DescribeLaunchConfigurationsOutput{
		LaunchConfigurations: resp.LaunchConfigurations,
		NextToken:            resp.NextToken,
		RequestID:            resp.RequestID,
	}, nil
}

// DescribeMetricCollectionTypes lists the group metrics and granularities
// available for collection.
func (c *BasicClient) DescribeMetricCollectionTypes(ctx context.Context) (*ascent.DescribeMetricCollectionTypesOutput, error) {
	var resp describeMetricCollectionTypesResponse
	if err := c.runRequest(ctx, "DescribeMetricCollectionTypes", url.Values{}, &resp, true); err != nil {
		return nil, err
	}
	return &ascent.DescribeMetricCollectionTypesOutput{
		Metrics:       resp.Metrics,
		Granularities: resp.Granularities,
		RequestID:     resp.RequestID,
	}, nil
}

// DescribePolicies gets information about existing scaling policies.
func (c *BasicClient) DescribePolicies(ctx context.Context, in *ascent.DescribePoliciesInput) (*ascent.DescribePoliciesOutput, error) {
	params := url.Values{}
	if in != nil {
		setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
		setStringList(params, "PolicyNames", in.PolicyNames)
		setInt(params, "MaxRecords", in.MaxRecords)
		setString(params, "NextToken", in.NextToken)
	}
	var resp describePoliciesResponse
	if err := c.runRequest(ctx, "DescribePolicies", params, &resp, true); err != nil {
		return nil, err
	}
	return &ascent.DescribePoliciesOutput{
		ScalingPolicies: resp.ScalingPolicies,
		NextToken:       resp.NextToken,
		RequestID:       resp.RequestID,
	}, nil
}

// DescribeScalingActivities gets information about scaling activities
// performed on groups.
func (c *BasicClient) DescribeScalingActivities(ctx context.Context, in *ascent.DescribeScalingActivitiesInput) (*ascent.DescribeScalingActivitiesOutput, error) {
	params := url.Values{}
	if in != nil {
		setStringList(params, "ActivityIds", in.ActivityIDs)
		setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
		setInt(params, "MaxRecords", in.MaxRecords)
		setString(params, "NextToken", in.NextToken)
	}
	var resp describeScalingActivitiesResponse
	if err := c.runRequest(ctx, "DescribeScalingActivities", params, &resp, true); err != nil {
		return nil, err
	}
	return &ascent.DescribeScalingActivitiesOutput{
		Activities: resp.Activities,
		NextToken:  resp.NextToken,
		RequestID:  resp.RequestID,
	}, nil
}

// DescribeScalingProcessTypes lists the scaling processes that can be
// suspended and resumed.
func (c *BasicClient) DescribeScalingProcessTypes(ctx context.Context) (*ascent.DescribeScalingProcessTypesOutput, error) {
	var resp describeScalingProcessTypesResponse
	if err := c.runRequest(ctx, "DescribeScalingProcessTypes", url.Values{}, &resp, true); err != nil {
		return nil, err
	}
	return &ascent.DescribeScalingProcessTypesOutput{
		Processes: resp.Processes,
		RequestID: resp.RequestID,
	}, nil
}

// DescribeScheduledActions gets information about scheduled scaling actions.
func (c *BasicClient) DescribeScheduledActions(ctx context.Context, in *ascent.DescribeScheduledActionsInput) (*ascent.DescribeScheduledActionsOutput, error) {
	params := url.Values{}
	if in != nil {
		setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
		setStringList(params, "ScheduledActionNames", in.ScheduledActionNames)
		setTime(params, "StartTime", in.StartTime)
		setTime(params, "EndTime", in.EndTime)
		setInt(params, "MaxRecords", in.MaxRecords)
		setString(params, "NextToken", in.NextToken)
	}
	var resp describeScheduledActionsResponse
	if err := c.runRequest(ctx, "DescribeScheduledActions", params, &resp, true); err != nil {
		return nil, err
	}
	return &ascent.DescribeScheduledActionsOutput{
		ScheduledUpdateGroupActions: resp.ScheduledUpdateGroupActions,
		NextToken:                   resp.NextToken,
		RequestID:                   resp.RequestID,
	}, nil
}

// DescribeTags gets information about tags on groups.
func (c *BasicClient) DescribeTags(ctx context.Context, in *ascent.DescribeTagsInput) (*ascent.DescribeTagsOutput, error) {
	params := url.Values{}
	if in != nil {
		setInt(params, "MaxRecords", in.MaxRecords)
		setString(params, "NextToken", in.NextToken)
	}
	var resp describeTagsResponse
	if err := c.runRequest(ctx, "DescribeTags", params, &resp, true); err != nil {
		return nil, err
	}
	return &ascent.DescribeTagsOutput{
		Tags:      resp.Tags,
		NextToken: resp.NextToken,
		RequestID: resp.RequestID,
	}, nil
}

// DescribeTerminationPolicyTypes lists the termination policies the service
// supports.
func (c *BasicClient) DescribeTerminationPolicyTypes(ctx context.Context) (*ascent.DescribeTerminationPolicyTypesOutput, error) {
	var resp describeTerminationPolicyTypesResponse
	if err := c.runRequest(ctx, "DescribeTerminationPolicyTypes", url.Values{}, &resp, true); err != nil {
		return nil, err
	}
	return &ascent.DescribeTerminationPolicyTypesOutput{
		TerminationPolicyTypes: resp.TerminationPolicyTypes,
		RequestID:              resp.RequestID,
	}, nil
}

// DisableMetricsCollection stops collecting metrics for a group.
func (c *BasicClient) DisableMetricsCollection(ctx context.Context, in *ascent.DisableMetricsCollectionInput) error {
	params := url.Values{}
	setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
	setStringList(params, "Metrics", in.Metrics)
	return c.runRequest(ctx, "DisableMetricsCollection", params, nil, true)
}

// EnableMetricsCollection starts collecting metrics for a group.
func (c *BasicClient) EnableMetricsCollection(ctx context.Context, in *ascent.EnableMetricsCollectionInput) error {
	params := url.Values{}
	setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
	setString(params, "Granularity", in.Granularity)
	setStringList(params, "Metrics", in.Metrics)
	return c.runRequest(ctx, "EnableMetricsCollection", params, nil, true)
}

// ExecutePolicy runs a scaling policy.
func (c *BasicClient) ExecutePolicy(ctx context.Context, in *ascent.ExecutePolicyInput) error {
	params := url.Values{}
	setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
	setString(params, "PolicyName", in.PolicyName)
	setBool(params, "HonorCooldown", in.HonorCooldown)
	return c.runRequest(ctx, "ExecutePolicy", params, nil, false)
}

// PutScalingPolicy creates or updates a scaling policy.
func (c *BasicClient) PutScalingPolicy(ctx context.Context, in *ascent.PutScalingPolicyInput) (*ascent.PutScalingPolicyOutput, error) {
	params := url.Values{}
	setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
	setString(params, "PolicyName", in.PolicyName)
	setString(params, "AdjustmentType", in.AdjustmentType)
	setInt(params, "ScalingAdjustment", in.ScalingAdjustment)
	setInt(params, "Cooldown", in.Cooldown)
	setInt(params, "MinAdjustmentStep", in.MinAdjustmentStep)
	var resp putScalingPolicyResponse
	if err := c.runRequest(ctx, "PutScalingPolicy", params, &resp, false); err != nil {
		return nil, err
	}
	return &ascent.PutScalingPolicyOutput{
		PolicyARN: resp.PolicyARN,
		RequestID: resp.RequestID,
	}, nil
}

// PutScheduledUpdateGroupAction creates or updates a scheduled scaling
// action.
func (c *BasicClient) PutScheduledUpdateGroupAction(ctx context.Context, in *ascent.PutScheduledUpdateGroupActionInput) error {
	params := url.Values{}
	setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
	setString(params, "ScheduledActionName", in.ScheduledActionName)
	setTime(params, "StartTime", in.StartTime)
	setTime(params, "EndTime", in.EndTime)
	setString(params, "Recurrence", in.Recurrence)
	setInt(params, "MinSize", in.MinSize)
	setInt(params, "MaxSize", in.MaxSize)
	setInt(params, "DesiredCapacity", in.DesiredCapacity)
	return c.runRequest(ctx, "PutScheduledUpdateGroupAction", params, nil, false)
}

// ResumeProcesses resumes suspended scaling processes on a group.
func (c *BasicClient) ResumeProcesses(ctx context.Context, in *ascent.ResumeProcessesInput) error {
	params := url.Values{}
	setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
	setStringList(params, "ScalingProcesses", in.ScalingProcesses)
	return c.runRequest(ctx, "ResumeProcesses", params, nil, true)
}

// SetDesiredCapacity sets the desired size of a group.
func (c *BasicClient) SetDesiredCapacity(ctx context.Context, in *ascent.SetDesiredCapacityInput) error {
	params := url.Values{}
	setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
	setInt(params, "DesiredCapacity", in.DesiredCapacity)
	setBool(params, "HonorCooldown", in.HonorCooldown)
	return c.runRequest(ctx, "SetDesiredCapacity", params, nil, false)
}

// SetInstanceHealth sets the health status of an instance.
func (c *BasicClient) SetInstanceHealth(ctx context.Context, in *ascent.SetInstanceHealthInput) error {
	params := url.Values{}
	setString(params, "InstanceId", in.InstanceID)
	setString(params, "HealthStatus", in.HealthStatus)
	setBool(params, "ShouldRespectGracePeriod", in.ShouldRespectGracePeriod)
	return c.runRequest(ctx, "SetInstanceHealth", params, nil, false)
}

// SuspendProcesses suspends scaling processes on a group.
func (c *BasicClient) SuspendProcesses(ctx context.Context, in *ascent.SuspendProcessesInput) error {
	params := url.Values{}
	setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
	setStringList(params, "ScalingProcesses", in.ScalingProcesses)
	return c.runRequest(ctx, "SuspendProcesses", params, nil, true)
}

// TerminateInstanceInAutoScalingGroup terminates an instance belonging to a
// group and returns the resulting scaling activity.
func (c *BasicClient) TerminateInstanceInAutoScalingGroup(ctx context.Context, in *ascent.TerminateInstanceInAutoScalingGroupInput) (*ascent.TerminateInstanceInAutoScalingGroupOutput, error) {
	params := url.Values{}
	setString(params, "InstanceId", in.InstanceID)
	setBool(params, "ShouldDecrementDesiredCapacity", in.ShouldDecrementDesiredCapacity)
	var resp terminateInstanceResponse
	if err := c.runRequest(ctx, "TerminateInstanceInAutoScalingGroup", params, &resp, false); err != nil {
		return nil, err
	}
	return &ascent.TerminateInstanceInAutoScalingGroupOutput{
		Activity:  resp.Activity,
		RequestID: resp.RequestID,
	}, nil
}

// UpdateAutoScalingGroup updates the configuration of an existing group. Only
// the fields that are set are changed.
func (c *BasicClient) UpdateAutoScalingGroup(ctx context.Context, in *ascent.UpdateAutoScalingGroupInput) error {
	params := url.Values{}
	setString(params, "AutoScalingGroupName", in.AutoScalingGroupName)
	setString(params, "LaunchConfigurationName", in.LaunchConfigurationName)
	setStringList(params, "AvailabilityZones", in.AvailabilityZones)
	setInt(params, "MinSize", in.MinSize)
	setInt(params, "MaxSize", in.MaxSize)
	setInt(params, "DesiredCapacity", in.DesiredCapacity)
	setInt(params, "DefaultCooldown", in.DefaultCooldown)
	setString(params, "HealthCheckType", in.HealthCheckType)
	setInt(params, "HealthCheckGracePeriod", in.HealthCheckGracePeriod)
	setString(params, "PlacementGroup", in.PlacementGroup)
	setStringList(params, "TerminationPolicies", in.TerminationPolicies)
	setString(params, "VPCZoneIdentifier", in.VPCZoneIdentifier)
	return c.runRequest(ctx, "UpdateAutoScalingGroup", params, nil, false)
}
