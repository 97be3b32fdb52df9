package ascent

import "time"

// AutoScalingGroup represents a collection of instances that are scaled
// together. The XML field tags match the wire names within a single group
// member element of the Query API responses.
type AutoScalingGroup struct {
	AutoScalingGroupName    *string            `xml:"AutoScalingGroupName"`
	AutoScalingGroupARN     *string            `xml:"AutoScalingGroupARN"`
	LaunchConfigurationName *string            `xml:"LaunchConfigurationName"`
	AvailabilityZones       []string           `xml:"AvailabilityZones>member"`
	MinSize                 *int               `xml:"MinSize"`
	MaxSize                 *int               `xml:"MaxSize"`
	DesiredCapacity         *int               `xml:"DesiredCapacity"`
	DefaultCooldown         *int               `xml:"DefaultCooldown"`
	HealthCheckType         *string            `xml:"HealthCheckType"`
	HealthCheckGracePeriod  *int               `xml:"HealthCheckGracePeriod"`
	LoadBalancerNames       []string           `xml:"LoadBalancerNames>member"`
	PlacementGroup          *string            `xml:"PlacementGroup"`
	TerminationPolicies     []string           `xml:"TerminationPolicies>member"`
	VPCZoneIdentifier       *string            `xml:"VPCZoneIdentifier"`
	Instances               []Instance         `xml:"Instances>member"`
	SuspendedProcesses      []SuspendedProcess `xml:"SuspendedProcesses>member"`
	EnabledMetrics          []EnabledMetric    `xml:"EnabledMetrics>member"`
	Tags                    []Tag              `xml:"Tags>member"`
	CreatedTime             *time.Time         `xml:"CreatedTime"`
}

// LaunchConfiguration represents a template for the instances launched into a
// group.
type LaunchConfiguration struct {
	LaunchConfigurationName *string    `xml:"LaunchConfigurationName"`
	LaunchConfigurationARN  *string    `xml:"LaunchConfigurationARN"`
	ImageID                 *string    `xml:"ImageId"`
	InstanceType            *string    `xml:"InstanceType"`
	KeyName                 *string    `xml:"KeyName"`
	SecurityGroups          []string   `xml:"SecurityGroups>member"`
	UserData                *string    `xml:"UserData"`
	InstanceMonitoring      *bool      `xml:"InstanceMonitoring>Enabled"`
	SpotPrice               *string    `xml:"SpotPrice"`
	IAMInstanceProfile      *string    `xml:"IamInstanceProfile"`
	EBSOptimized            *bool      `xml:"EbsOptimized"`
	PlacementTenancy        *string    `xml:"PlacementTenancy"`
	CreatedTime             *time.Time `xml:"CreatedTime"`
}

// ScalingPolicy represents a policy that adjusts a group's desired capacity.
type ScalingPolicy struct {
	PolicyName           *string `xml:"PolicyName"`
	PolicyARN            *string `xml:"PolicyARN"`
	AutoScalingGroupName *string `xml:"AutoScalingGroupName"`
	AdjustmentType       *string `xml:"AdjustmentType"`
	ScalingAdjustment    *int    `xml:"ScalingAdjustment"`
	Cooldown             *int    `xml:"Cooldown"`
	MinAdjustmentStep    *int    `xml:"MinAdjustmentStep"`
}

// ScheduledAction represents a scheduled scaling change for a group.
type ScheduledAction struct {
	ScheduledActionName  *string    `xml:"ScheduledActionName"`
	ScheduledActionARN   *string    `xml:"ScheduledActionARN"`
	AutoScalingGroupName *string    `xml:"AutoScalingGroupName"`
	StartTime            *time.Time `xml:"StartTime"`
	EndTime              *time.Time `xml:"EndTime"`
	Recurrence           *string    `xml:"Recurrence"`
	MinSize              *int       `xml:"MinSize"`
	MaxSize              *int       `xml:"MaxSize"`
	DesiredCapacity      *int       `xml:"DesiredCapacity"`
}

// Instance represents a single instance within a group.
type Instance struct {
	InstanceID              *string `xml:"InstanceId"`
	AutoScalingGroupName    *string `xml:"AutoScalingGroupName"`
	AvailabilityZone        *string `xml:"AvailabilityZone"`
	HealthStatus            *string `xml:"HealthStatus"`
	LifecycleState          *string `xml:"LifecycleState"`
	LaunchConfigurationName *string `xml:"LaunchConfigurationName"`
}

// Activity represents a scaling activity performed on a group, such as
// launching or terminating an instance.
type Activity struct {
	ActivityID           *string    `xml:"ActivityId"`
	AutoScalingGroupName *string    `xml:"AutoScalingGroupName"`
	Description          *string    `xml:"Description"`
	Cause                *string    `xml:"Cause"`
	StartTime            *time.Time `xml:"StartTime"`
	EndTime              *time.Time `xml:"EndTime"`
	StatusCode           *string    `xml:"StatusCode"`
	StatusMessage        *string    `xml:"StatusMessage"`
	Progress             *int       `xml:"Progress"`
}

// SuspendedProcess represents a scaling process that has been suspended on a
// group.
type SuspendedProcess struct {
	ProcessName      *string `xml:"ProcessName"`
	SuspensionReason *string `xml:"SuspensionReason"`
}

// EnabledMetric represents a group metric with collection enabled.
type EnabledMetric struct {
	Metric      *string `xml:"Metric"`
	Granularity *string `xml:"Granularity"`
}

// Tag represents a tag attached to a group.
type Tag struct {
	Key               *string `xml:"Key"`
	Value             *string `xml:"Value"`
	ResourceID        *string `xml:"ResourceId"`
	ResourceType      *string `xml:"ResourceType"`
	PropagateAtLaunch *bool   `xml:"PropagateAtLaunch"`
}

// AdjustmentType represents a policy adjustment type supported by the
// service.
type AdjustmentType struct {
	AdjustmentType *string `xml:"AdjustmentType"`
}

// ProcessType represents a scaling process that can be suspended and resumed.
type ProcessType struct {
	ProcessName *string `xml:"ProcessName"`
}

// MetricCollectionType represents a group metric available for collection.
type MetricCollectionType struct {
	Metric *string `xml:"Metric"`
}

// MetricGranularityType represents a granularity at which group metrics can
// be collected.
type MetricGranularityType struct {
	Granularity *string `xml:"Granularity"`
}
