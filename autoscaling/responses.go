package autoscaling

import "github.com/evergreen-ci/ascent"

// Wire envelopes for Query API responses. Field paths are relative to the
// response document root, so the same struct decodes both the real service's
// namespaced responses and plain test fixtures.

type describeAdjustmentTypesResponse struct {
	AdjustmentTypes []ascent.AdjustmentType `xml:"DescribeAdjustmentTypesResult>AdjustmentTypes>member"`
	RequestID       *string                 `xml:"ResponseMetadata>RequestId"`
}

type describeAutoScalingGroupsResponse struct {
	AutoScalingGroups []ascent.AutoScalingGroup `xml:"DescribeAutoScalingGroupsResult>AutoScalingGroups>member"`
	NextToken         *string                   `xml:"DescribeAutoScalingGroupsResult>NextToken"`
	RequestID         *string                   `xml:"ResponseMetadata>RequestId"`
}

type describeAutoScalingInstancesResponse struct {
	AutoScalingInstances []ascent.Instance `xml:"DescribeAutoScalingInstancesResult>AutoScalingInstances>member"`
	NextToken            *string           `xml:"DescribeAutoScalingInstancesResult>NextToken"`
	RequestID            *string           `xml:"ResponseMetadata>RequestId"`
}

type describeLaunchConfigurationsResponse struct {
	LaunchConfigurations []ascent.LaunchConfiguration `xml:"DescribeLaunchConfigurationsResult>LaunchConfigurations>member"`
	NextToken            *string                      `xml:"DescribeLaunchConfigurationsResult>NextToken"`
	RequestID            *string                      `xml:"ResponseMetadata>RequestId"`
}

type describeMetricCollectionTypesResponse struct {
	Metrics       []ascent.MetricCollectionType  `xml:"DescribeMetricCollectionTypesResult>Metrics>member"`
	Granularities []ascent.MetricGranularityType `xml:"DescribeMetricCollectionTypesResult>Granularities>member"`
	RequestID     *string                        `xml:"ResponseMetadata>RequestId"`
}

type describePoliciesResponse struct {
	ScalingPolicies []ascent.ScalingPolicy `xml:"DescribePoliciesResult>ScalingPolicies>member"`
	NextToken       *string                `xml:"DescribePoliciesResult>NextToken"`
	RequestID       *string                `xml:"ResponseMetadata>RequestId"`
}

type describeScalingActivitiesResponse struct {
	Activities []ascent.Activity `xml:"DescribeScalingActivitiesResult>Activities>member"`
	NextToken  *string           `xml:"DescribeScalingActivitiesResult>NextToken"`
	RequestID  *string           `xml:"ResponseMetadata>RequestId"`
}

type describeScalingProcessTypesResponse struct {
	Processes []ascent.ProcessType `xml:"DescribeScalingProcessTypesResult>Processes>member"`
	RequestID *string              `xml:"ResponseMetadata>RequestId"`
}

type describeScheduledActionsResponse struct {
	ScheduledUpdateGroupActions []ascent.ScheduledAction `xml:"DescribeScheduledActionsResult>ScheduledUpdateGroupActions>member"`
	NextToken                   *string                  `xml:"DescribeScheduledActionsResult>NextToken"`
	RequestID                   *string                  `xml:"ResponseMetadata>RequestId"`
}

type describeTagsResponse struct {
	Tags      []ascent.Tag `xml:"DescribeTagsResult>Tags>member"`
	NextToken *string      `xml:"DescribeTagsResult>NextToken"`
	RequestID *string      `xml:"ResponseMetadata>RequestId"`
}

type describeTerminationPolicyTypesResponse struct {
	TerminationPolicyTypes []string `xml:"DescribeTerminationPolicyTypesResult>TerminationPolicyTypes>member"`
	RequestID              *string  `xml:"ResponseMetadata>RequestId"`
}

type putScalingPolicyResponse struct {
	PolicyARN *string `xml:"PutScalingPolicyResult>PolicyARN"`
	RequestID *string `xml:"ResponseMetadata>RequestId"`
}

type terminateInstanceResponse struct {
	Activity  *ascent.Activity `xml:"TerminateInstanceInAutoScalingGroupResult>Activity"`
	RequestID *string          `xml:"ResponseMetadata>RequestId"`
}
