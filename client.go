package ascent

import "context"

// AutoScalingClient provides a common interface to interact with a client
// backed by the AWS AutoScaling Query API. Implementations do not retry
// failed requests - every failure surfaces to the caller immediately.
type AutoScalingClient interface {
	// CreateAutoScalingGroup creates a new group from a launch
	// configuration.
	CreateAutoScalingGroup(ctx context.Context, in *CreateAutoScalingGroupInput) error
	// CreateLaunchConfiguration creates a new launch configuration.
	CreateLaunchConfiguration(ctx context.Context, in *CreateLaunchConfigurationInput) error
	// CreateOrUpdateTags creates new tags or updates existing tags on
	// groups.
	CreateOrUpdateTags(ctx context.Context, in *CreateOrUpdateTagsInput) error
	// DeleteAutoScalingGroup deletes an existing group.
	DeleteAutoScalingGroup(ctx context.Context, in *DeleteAutoScalingGroupInput) error
	// DeleteLaunchConfiguration deletes a launch configuration that is not
	// attached to any group.
	DeleteLaunchConfiguration(ctx context.Context, in *DeleteLaunchConfigurationInput) error
	// DeletePolicy deletes a scaling policy.
	DeletePolicy(ctx context.Context, in *DeletePolicyInput) error
	// DeleteScheduledAction deletes a scheduled scaling action.
	DeleteScheduledAction(ctx context.Context, in *DeleteScheduledActionInput) error
	// DeleteTags removes tags from groups.
	DeleteTags(ctx context.Context, in *DeleteTagsInput) error
	// DescribeAdjustmentTypes lists the policy adjustment types the service
	// supports.
	DescribeAdjustmentTypes(ctx context.Context) (*DescribeAdjustmentTypesOutput, error)
	// DescribeAutoScalingGroups gets information about existing groups.
	DescribeAutoScalingGroups(ctx context.Context, in *DescribeAutoScalingGroupsInput) (*DescribeAutoScalingGroupsOutput, error)
	// DescribeAutoScalingInstances gets information about instances within
	// groups.
	DescribeAutoScalingInstances(ctx context.Context, in *DescribeAutoScalingInstancesInput) (*DescribeAutoScalingInstancesOutput, error)
	// DescribeLaunchConfigurations gets information about existing launch
	// configurations.
	DescribeLaunchConfigurations(ctx context.Context, in *DescribeLaunchConfigurationsInput) (*DescribeLaunchConfigurationsOutput, error)
	// DescribeMetricCollectionTypes lists the group metrics and
	// granularities available for collection.
	DescribeMetricCollectionTypes(ctx context.Context) (*DescribeMetricCollectionTypesOutput, error)
	// DescribePolicies gets information about existing scaling policies.
	DescribePolicies(ctx context.Context, in *DescribePoliciesInput) (*DescribePoliciesOutput, error)
	// DescribeScalingActivities gets information about scaling activities
	// performed on groups.
	DescribeScalingActivities(ctx context.Context, in *DescribeScalingActivitiesInput) (*DescribeScalingActivitiesOutput, error)
	// DescribeScalingProcessTypes lists the scaling processes that can be
	// suspended and resumed.
	DescribeScalingProcessTypes(ctx context.Context) (*DescribeScalingProcessTypesOutput, error)
	// DescribeScheduledActions gets information about scheduled scaling
	// actions.
	DescribeScheduledActions(ctx context.Context, in *DescribeScheduledActionsInput) (*DescribeScheduledActionsOutput, error)
	// DescribeTags gets information about tags on groups.
	DescribeTags(ctx context.Context, in *DescribeTagsInput) (*DescribeTagsOutput, error)
	// DescribeTerminationPolicyTypes lists the termination policies the
	// service supports.
	DescribeTerminationPolicyTypes(ctx context.Context) (*DescribeTerminationPolicyTypesOutput, error)
	// DisableMetricsCollection stops collecting metrics for a group.
	DisableMetricsCollection(ctx context.Context, in *DisableMetricsCollectionInput) error
	// EnableMetricsCollection starts collecting metrics for a group.
	EnableMetricsCollection(ctx context.Context, in *EnableMetricsCollectionInput) error
	// ExecutePolicy runs a scaling policy.
	ExecutePolicy(ctx context.Context, in *ExecutePolicyInput) error
	// PutScalingPolicy creates or updates a scaling policy.
	PutScalingPolicy(ctx context.Context, in *PutScalingPolicyInput) (*PutScalingPolicyOutput, error)
	// PutScheduledUpdateGroupAction creates or updates a scheduled scaling
	// action.
	PutScheduledUpdateGroupAction(ctx context.Context, in *PutScheduledUpdateGroupActionInput) error
	// ResumeProcesses resumes suspended scaling processes on a group.
	ResumeProcesses(ctx context.Context, in *ResumeProcessesInput) error
	// SetDesiredCapacity sets the desired size of a group.
	SetDesiredCapacity(ctx context.Context, in *SetDesiredCapacityInput) error
	// SetInstanceHealth sets the health status of an instance.
	SetInstanceHealth(ctx context.Context, in *SetInstanceHealthInput) error
	// SuspendProcesses suspends scaling processes on a group.
	SuspendProcesses(ctx context.Context, in *SuspendProcessesInput) error
	// TerminateInstanceInAutoScalingGroup terminates an instance belonging
	// to a group and returns the resulting scaling activity.
	TerminateInstanceInAutoScalingGroup(ctx context.Context, in *TerminateInstanceInAutoScalingGroupInput) (*TerminateInstanceInAutoScalingGroupOutput, error)
	// UpdateAutoScalingGroup updates the configuration of an existing group.
	// Only the fields that are set are changed.
	UpdateAutoScalingGroup(ctx context.Context, in *UpdateAutoScalingGroupInput) error
	// Reload discards any pooled or persistent connection state held by the
	// client. The client remains usable afterwards.
	Reload()
	// Close closes the client and cleans up its resources. Implementations
	// should ensure that this is idempotent.
	Close(ctx context.Context) error
}
