package ascent

import "time"

// CreateAutoScalingGroupInput is the input to create a new group.
type CreateAutoScalingGroupInput struct {
	AutoScalingGroupName    *string
	LaunchConfigurationName *string
	AvailabilityZones       []string
	MinSize                 *int
	MaxSize                 *int
	DesiredCapacity         *int
	DefaultCooldown         *int
	HealthCheckType         *string
	HealthCheckGracePeriod  *int
	LoadBalancerNames       []string
	PlacementGroup          *string
	TerminationPolicies     []string
	VPCZoneIdentifier       *string
	Tags                    []Tag
}

// CreateLaunchConfigurationInput is the input to create a new launch
// configuration.
type CreateLaunchConfigurationInput struct {
	LaunchConfigurationName  *string
	ImageID                  *string
	InstanceType             *string
	KeyName                  *string
	SecurityGroups           []string
	UserData                 *string
	InstanceMonitoring       *bool
	SpotPrice                *string
	IAMInstanceProfile       *string
	EBSOptimized             *bool
	AssociatePublicIPAddress *bool
	PlacementTenancy         *string
}

// CreateOrUpdateTagsInput is the input to create or update group tags.
type CreateOrUpdateTagsInput struct {
	Tags []Tag
}

// DeleteAutoScalingGroupInput is the input to delete an existing group.
type DeleteAutoScalingGroupInput struct {
	AutoScalingGroupName *string
	// ForceDelete deletes the group along with any instances still
	// associated with it, without waiting for them to terminate.
	ForceDelete *bool
}

// DeleteLaunchConfigurationInput is the input to delete a launch
// configuration.
type DeleteLaunchConfigurationInput struct {
	LaunchConfigurationName *string
}

// DeletePolicyInput is the input to delete a scaling policy.
type DeletePolicyInput struct {
	AutoScalingGroupName *string
	PolicyName           *string
}

// DeleteScheduledActionInput is the input to delete a scheduled action.
type DeleteScheduledActionInput struct {
	AutoScalingGroupName *string
	ScheduledActionName  *string
}

// DeleteTagsInput is the input to remove tags from groups.
type DeleteTagsInput struct {
	Tags []Tag
}

// DescribeAdjustmentTypesOutput is the result of listing supported policy
// adjustment types.
type DescribeAdjustmentTypesOutput struct {
	AdjustmentTypes []AdjustmentType
	RequestID       *string
}

// DescribeAutoScalingGroupsInput is the input to describe existing groups.
// An empty input describes all groups.
type DescribeAutoScalingGroupsInput struct {
	AutoScalingGroupNames []string
	MaxRecords            *int
	NextToken             *string
}

// DescribeAutoScalingGroupsOutput is the result of describing groups.
type DescribeAutoScalingGroupsOutput struct {
	AutoScalingGroups []AutoScalingGroup
	NextToken         *string
	RequestID         *string
}

// DescribeAutoScalingInstancesInput is the input to describe instances within
// groups.
type DescribeAutoScalingInstancesInput struct {
	InstanceIDs []string
	MaxRecords  *int
	NextToken   *string
}

// DescribeAutoScalingInstancesOutput is the result of describing instances.
type DescribeAutoScalingInstancesOutput struct {
	AutoScalingInstances []Instance
	NextToken            *string
	RequestID            *string
}

// DescribeLaunchConfigurationsInput is the input to describe launch
// configurations. An empty input describes all launch configurations.
type DescribeLaunchConfigurationsInput struct {
	LaunchConfigurationNames []string
	MaxRecords               *int
	NextToken                *string
}

// DescribeLaunchConfigurationsOutput is the result of describing launch
// configurations.
type DescribeLaunchConfigurationsOutput struct {
	LaunchConfigurations []LaunchConfiguration
	NextToken            *string
	RequestID            *string
}

// DescribeMetricCollectionTypesOutput is the result of listing the metrics
// and granularities available for collection.
type DescribeMetricCollectionTypesOutput struct {
	Metrics       []MetricCollectionType
	Granularities []MetricGranularityType
	RequestID     *string
}

// DescribePoliciesInput is the input to describe scaling policies.
type DescribePoliciesInput struct {
	AutoScalingGroupName *string
	PolicyNames          []string
	MaxRecords           *int
	NextToken            *string
}

// DescribePoliciesOutput is the result of describing scaling policies.
type DescribePoliciesOutput struct {
	ScalingPolicies []ScalingPolicy
	NextToken       *string
	RequestID       *string
}

// DescribeScalingActivitiesInput is the input to describe scaling activities.
type DescribeScalingActivitiesInput struct {
	ActivityIDs          []string
	AutoScalingGroupName *string
	MaxRecords           *int
	NextToken            *string
}

// DescribeScalingActivitiesOutput is the result of describing scaling
// activities.
type DescribeScalingActivitiesOutput struct {
	Activities []Activity
	NextToken  *string
	RequestID  *string
}

// DescribeScalingProcessTypesOutput is the result of listing the scaling
// processes that can be suspended and resumed.
type DescribeScalingProcessTypesOutput struct {
	Processes []ProcessType
	RequestID *string
}

// DescribeScheduledActionsInput is the input to describe scheduled actions.
type DescribeScheduledActionsInput struct {
	AutoScalingGroupName *string
	ScheduledActionNames []string
	StartTime            *time.Time
	EndTime              *time.Time
	MaxRecords           *int
	NextToken            *string
}

// DescribeScheduledActionsOutput is the result of describing scheduled
// actions.
type DescribeScheduledActionsOutput struct {
	ScheduledUpdateGroupActions []ScheduledAction
	NextToken                   *string
	RequestID                   *string
}

// DescribeTagsInput is the input to describe group tags.
type DescribeTagsInput struct {
	MaxRecords *int
	NextToken  *string
}

// DescribeTagsOutput is the result of describing group tags.
type DescribeTagsOutput struct {
	Tags      []Tag
	NextToken *string
	RequestID *string
}

// DescribeTerminationPolicyTypesOutput is the result of listing supported
// termination policies.
type DescribeTerminationPolicyTypesOutput struct {
	TerminationPolicyTypes []string
	RequestID              *string
}

// DisableMetricsCollectionInput is the input to stop metrics collection for a
// group. An empty Metrics list disables all metrics.
type DisableMetricsCollectionInput struct {
	AutoScalingGroupName *string
	Metrics              []string
}

// EnableMetricsCollectionInput is the input to start metrics collection for a
// group. An empty Metrics list enables all metrics.
type EnableMetricsCollectionInput struct {
	AutoScalingGroupName *string
	Granularity          *string
	Metrics              []string
}

// ExecutePolicyInput is the input to run a scaling policy.
type ExecutePolicyInput struct {
	AutoScalingGroupName *string
	PolicyName           *string
	HonorCooldown        *bool
}

// PutScalingPolicyInput is the input to create or update a scaling policy.
type PutScalingPolicyInput struct {
	AutoScalingGroupName *string
	PolicyName           *string
	AdjustmentType       *string
	ScalingAdjustment    *int
	Cooldown             *int
	MinAdjustmentStep    *int
}

// PutScalingPolicyOutput is the result of creating or updating a scaling
// policy.
type PutScalingPolicyOutput struct {
	PolicyARN *string
	RequestID *string
}

// PutScheduledUpdateGroupActionInput is the input to create or update a
// scheduled action.
type PutScheduledUpdateGroupActionInput struct {
	AutoScalingGroupName *string
	ScheduledActionName  *string
	StartTime            *time.Time
	EndTime              *time.Time
	Recurrence           *string
	MinSize              *int
	MaxSize              *int
	DesiredCapacity      *int
}

// ResumeProcessesInput is the input to resume suspended scaling processes. An
// empty ScalingProcesses list resumes all processes.
type ResumeProcessesInput struct {
	AutoScalingGroupName *string
	ScalingProcesses     []string
}

// SetDesiredCapacityInput is the input to set a group's desired size.
type SetDesiredCapacityInput struct {
	AutoScalingGroupName *string
	DesiredCapacity      *int
	HonorCooldown        *bool
}

// SetInstanceHealthInput is the input to set an instance's health status.
type SetInstanceHealthInput struct {
	InstanceID               *string
	HealthStatus             *string
	ShouldRespectGracePeriod *bool
}

// SuspendProcessesInput is the input to suspend scaling processes. An empty
// ScalingProcesses list suspends all processes.
type SuspendProcessesInput struct {
	AutoScalingGroupName *string
	ScalingProcesses     []string
}

// TerminateInstanceInAutoScalingGroupInput is the input to terminate a
// group's instance.
type TerminateInstanceInAutoScalingGroupInput struct {
	InstanceID                     *string
	ShouldDecrementDesiredCapacity *bool
}

// TerminateInstanceInAutoScalingGroupOutput is the result of terminating a
// group's instance.
type TerminateInstanceInAutoScalingGroupOutput struct {
	Activity  *Activity
	RequestID *string
}

// UpdateAutoScalingGroupInput is the input to update an existing group. Only
// the fields that are set are changed.
type UpdateAutoScalingGroupInput struct {
	AutoScalingGroupName    *string
	LaunchConfigurationName *string
	AvailabilityZones       []string
	MinSize                 *int
	MaxSize                 *int
	DesiredCapacity         *int
	DefaultCooldown         *int
	HealthCheckType         *string
	HealthCheckGracePeriod  *int
	PlacementGroup          *string
	TerminationPolicies     []string
	VPCZoneIdentifier       *string
}
