package mock

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/evergreen-ci/ascent"
	"github.com/evergreen-ci/utility"
	"github.com/google/uuid"
	"github.com/mongodb/grip"
	"github.com/pkg/errors"
)

// mockAccountID is the account embedded in ARNs built by the mock service.
const mockAccountID = "123456789012"

// ClientOptions are options to create a mock AutoScaling client.
type ClientOptions struct {
	// Region is the geographical region partitioning the mock state. It
	// must be one of the regions the mock service recognizes.
	Region *string
	// AccessKeyID identifies the credential whose state cell the client
	// operates on.
	AccessKeyID *string
	// Service is the mock service holding the state. Defaults to the
	// process-wide GlobalAutoScalingService.
	Service *Service
}

// NewClientOptions returns new unconfigured mock client options.
func NewClientOptions() *ClientOptions {
	return &ClientOptions{}
}

// SetRegion sets the region partitioning the mock state.
func (o *ClientOptions) SetRegion(region string) *ClientOptions {
	o.Region = &region
	return o
}

// SetAccessKeyID sets the credential identifier for the state cell.
func (o *ClientOptions) SetAccessKeyID(id string) *ClientOptions {
	o.AccessKeyID = &id
	return o
}

// SetService sets the mock service holding the state.
func (o *ClientOptions) SetService(s *Service) *ClientOptions {
	o.Service = s
	return o
}

// Validate checks that the region and credential identifier are given and
// that the region is recognized.
func (o *ClientOptions) Validate() error {
	catcher := grip.NewBasicCatcher()
	catcher.NewWhen(o.Region == nil, "must provide geographical region")
	catcher.NewWhen(o.AccessKeyID == nil, "must provide access key identifier")
	catcher.ErrorfWhen(o.Region != nil && !IsValidRegion(utility.FromStringPtr(o.Region)), "unknown region '%s', expected one of %s", utility.FromStringPtr(o.Region), strings.Join(ValidRegions(), ", "))

	if catcher.HasErrors() {
		return catcher.Resolve()
	}

	if o.Service == nil {
		o.Service = GlobalAutoScalingService
	}

	return nil
}

// Client provides a mock implementation of an ascent.AutoScalingClient
// backed by an in-memory service. It can be used to exercise
// create/list/update/delete flows without network access.
type Client struct {
	region      string
	accessKeyID string
	service     *Service
}

// NewClient creates a new mock AutoScaling client from the given options.
func NewClient(opts ClientOptions) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return &Client{
		region:      utility.FromStringPtr(opts.Region),
		accessKeyID: utility.FromStringPtr(opts.AccessKeyID),
		service:     opts.Service,
	}, nil
}

// Data returns the client's state cell, creating it with the default
// skeleton if it has never been touched.
func (c *Client) Data() *Cell {
	return c.cell()
}

// ResetData removes the client's state cell. Sibling cells for other
// credentials and regions are unaffected.
func (c *Client) ResetData() {
	c.service.ResetData(c.region, c.accessKeyID)
}

func (c *Client) cell() *Cell {
	return c.service.Cell(c.region, c.accessKeyID)
}

func (c *Client) arn(resource string) string {
	return fmt.Sprintf("arn:aws:autoscaling:%s:%s:%s", c.region, mockAccountID, resource)
}

func newInstanceID() string {
	return "i-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:17]
}

// recordActivity appends a scaling activity to the cell and returns it.
func (c *Client) recordActivity(cell *Cell, groupName, description, cause string) ascent.Activity {
	activity := ascent.Activity{
		ActivityID:           utility.ToStringPtr(uuid.New().String()),
		AutoScalingGroupName: utility.ToStringPtr(groupName),
		Description:          utility.ToStringPtr(description),
		Cause:                utility.ToStringPtr(cause),
		StartTime:            utility.ToTimePtr(time.Now()),
		StatusCode:           utility.ToStringPtr("InProgress"),
		Progress:             utility.ToIntPtr(50),
	}
	cell.Activities = append(cell.Activities, activity)
	return activity
}

// scaleInstances grows or shrinks a group's instance list to match its
// desired capacity.
func (c *Client) scaleInstances(group *ascent.AutoScalingGroup) {
	desired := utility.FromIntPtr(group.DesiredCapacity)
	if desired < 0 {
		desired = 0
	}
	for len(group.Instances) < desired {
		zone := ""
		if len(group.AvailabilityZones) > 0 {
			zone = group.AvailabilityZones[len(group.Instances)%len(group.AvailabilityZones)]
		}
		group.Instances = append(group.Instances, ascent.Instance{
			InstanceID:              utility.ToStringPtr(newInstanceID()),
			AutoScalingGroupName:    group.AutoScalingGroupName,
			AvailabilityZone:        utility.ToStringPtr(zone),
			HealthStatus:            utility.ToStringPtr("Healthy"),
			LifecycleState:          utility.ToStringPtr("InService"),
			LaunchConfigurationName: group.LaunchConfigurationName,
		})
	}
	if len(group.Instances) > desired {
		group.Instances = group.Instances[:desired]
	}
}

// CreateAutoScalingGroup stores a new mock group. The group's instances are
// created immediately to match its desired capacity.
func (c *Client) CreateAutoScalingGroup(ctx context.Context, in *ascent.CreateAutoScalingGroupInput) error {
	cell := c.cell()
	name := utility.FromStringPtr(in.AutoScalingGroupName)

	if _, ok := cell.AutoScalingGroups[name]; ok {
		return ascent.NewIdentifierTakenError(fmt.Sprintf("AutoScalingGroup by this name already exists - A group with the name %s already exists", name), nil)
	}
	lcName := utility.FromStringPtr(in.LaunchConfigurationName)
	if _, ok := cell.LaunchConfigurations[lcName]; !ok {
		return ascent.NewValidationError(fmt.Sprintf("Launch configuration name not found - A launch configuration with the name: %s does not exist", lcName), nil)
	}

	desired := in.DesiredCapacity
	if desired == nil {
		desired = in.MinSize
	}
	if err := validateGroupCapacity(in.MinSize, in.MaxSize, desired); err != nil {
		return err
	}
	healthCheckType := in.HealthCheckType
	if healthCheckType == nil {
		healthCheckType = utility.ToStringPtr("EC2")
	}
	group := ascent.AutoScalingGroup{
		AutoScalingGroupName:    in.AutoScalingGroupName,
		AutoScalingGroupARN:     utility.ToStringPtr(c.arn(fmt.Sprintf("autoScalingGroup:%s:autoScalingGroupName/%s", uuid.New().String(), name))),
		LaunchConfigurationName: in.LaunchConfigurationName,
		AvailabilityZones:       in.AvailabilityZones,
		MinSize:                 in.MinSize,
		MaxSize:                 in.MaxSize,
		DesiredCapacity:         desired,
		DefaultCooldown:         in.DefaultCooldown,
		HealthCheckType:         healthCheckType,
		HealthCheckGracePeriod:  in.HealthCheckGracePeriod,
		LoadBalancerNames:       in.LoadBalancerNames,
		PlacementGroup:          in.PlacementGroup,
		TerminationPolicies:     in.TerminationPolicies,
		VPCZoneIdentifier:       in.VPCZoneIdentifier,
		Tags:                    in.Tags,
		CreatedTime:             utility.ToTimePtr(time.Now()),
	}
	c.scaleInstances(&group)
	cell.AutoScalingGroups[name] = group

	return nil
}

// CreateLaunchConfiguration stores a new mock launch configuration.
func (c *Client) CreateLaunchConfiguration(ctx context.Context, in *ascent.CreateLaunchConfigurationInput) error {
	cell := c.cell()
	name := utility.FromStringPtr(in.LaunchConfigurationName)

	if _, ok := cell.LaunchConfigurations[name]; ok {
		return ascent.NewIdentifierTakenError(fmt.Sprintf("Launch Configuration by this name already exists - A launch configuration already exists with the name %s", name), nil)
	}

	cell.LaunchConfigurations[name] = ascent.LaunchConfiguration{
		LaunchConfigurationName: in.LaunchConfigurationName,
		LaunchConfigurationARN:  utility.ToStringPtr(c.arn(fmt.Sprintf("launchConfiguration:%s:launchConfigurationName/%s", uuid.New().String(), name))),
		ImageID:                 in.ImageID,
		InstanceType:            in.InstanceType,
		KeyName:                 in.KeyName,
		SecurityGroups:          in.SecurityGroups,
		UserData:                in.UserData,
		InstanceMonitoring:      in.InstanceMonitoring,
		SpotPrice:               in.SpotPrice,
		IAMInstanceProfile:      in.IAMInstanceProfile,
		EBSOptimized:            in.EBSOptimized,
		PlacementTenancy:        in.PlacementTenancy,
		CreatedTime:             utility.ToTimePtr(time.Now()),
	}

	return nil
}

// CreateOrUpdateTags attaches tags to existing groups, overwriting tags with
// matching keys.
func (c *Client) CreateOrUpdateTags(ctx context.Context, in *ascent.CreateOrUpdateTagsInput) error {
	cell := c.cell()

	for _, tag := range in.Tags {
		groupName := utility.FromStringPtr(tag.ResourceID)
		group, ok := cell.AutoScalingGroups[groupName]
		if !ok {
			return ascent.NewValidationError(fmt.Sprintf("AutoScalingGroup name not found - no such group: %s", groupName), nil)
		}
		if tag.ResourceType == nil {
			tag.ResourceType = utility.ToStringPtr("auto-scaling-group")
		}

		replaced := false
		for i, existing := range group.Tags {
			if utility.FromStringPtr(existing.Key) == utility.FromStringPtr(tag.Key) {
				group.Tags[i] = tag
				replaced = true
				break
			}
		}
		if !replaced {
			group.Tags = append(group.Tags, tag)
		}
		cell.AutoScalingGroups[groupName] = group
	}

	return nil
}

// DeleteAutoScalingGroup deletes a mock group. Groups that still contain
// instances cannot be deleted unless ForceDelete is set.
func (c *Client) DeleteAutoScalingGroup(ctx context.Context, in *ascent.DeleteAutoScalingGroupInput) error {
	cell := c.cell()
	name := utility.FromStringPtr(in.AutoScalingGroupName)

	group, ok := cell.AutoScalingGroups[name]
	if !ok {
		return ascent.NewValidationError(fmt.Sprintf("AutoScalingGroup name not found - no such group: %s", name), nil)
	}
	if len(group.Instances) > 0 && !utility.FromBoolPtr(in.ForceDelete) {
		return ascent.NewResourceInUseError(fmt.Sprintf("You cannot delete an AutoScalingGroup while there are instances still in the group: %s", name), nil)
	}

	delete(cell.AutoScalingGroups, name)

	return nil
}

// DeleteLaunchConfiguration deletes a mock launch configuration unless a
// group still references it.
func (c *Client) DeleteLaunchConfiguration(ctx context.Context, in *ascent.DeleteLaunchConfigurationInput) error {
	cell := c.cell()
	name := utility.FromStringPtr(in.LaunchConfigurationName)

	if _, ok := cell.LaunchConfigurations[name]; !ok {
		return ascent.NewValidationError(fmt.Sprintf("Launch configuration name not found - A launch configuration with the name: %s does not exist", name), nil)
	}
	for _, group := range cell.AutoScalingGroups {
		if utility.FromStringPtr(group.LaunchConfigurationName) == name {
			return ascent.NewResourceInUseError(fmt.Sprintf("Cannot delete launch configuration %s because it is attached to AutoScalingGroup %s", name, utility.FromStringPtr(group.AutoScalingGroupName)), nil)
		}
	}

	delete(cell.LaunchConfigurations, name)

	return nil
}

// DeletePolicy deletes a mock scaling policy.
func (c *Client) DeletePolicy(ctx context.Context, in *ascent.DeletePolicyInput) error {
	cell := c.cell()
	name := utility.FromStringPtr(in.PolicyName)

	if _, ok := cell.ScalingPolicies[name]; !ok {
		return ascent.NewValidationError(fmt.Sprintf("Policy name not found - no such policy: %s", name), nil)
	}

	delete(cell.ScalingPolicies, name)

	return nil
}

// DeleteScheduledAction deletes a mock scheduled action.
func (c *Client) DeleteScheduledAction(ctx context.Context, in *ascent.DeleteScheduledActionInput) error {
	cell := c.cell()
	name := utility.FromStringPtr(in.ScheduledActionName)

	if _, ok := cell.ScheduledActions[name]; !ok {
		return ascent.NewValidationError(fmt.Sprintf("Scheduled action name not found - no such scheduled action: %s", name), nil)
	}

	delete(cell.ScheduledActions, name)

	return nil
}

// DeleteTags removes tags with matching keys from groups.
func (c *Client) DeleteTags(ctx context.Context, in *ascent.DeleteTagsInput) error {
	cell := c.cell()

	for _, tag := range in.Tags {
		groupName := utility.FromStringPtr(tag.ResourceID)
		group, ok := cell.AutoScalingGroups[groupName]
		if !ok {
			return ascent.NewValidationError(fmt.Sprintf("AutoScalingGroup name not found - no such group: %s", groupName), nil)
		}

		var kept []ascent.Tag
		for _, existing := range group.Tags {
			if utility.FromStringPtr(existing.Key) != utility.FromStringPtr(tag.Key) {
				kept = append(kept, existing)
			}
		}
		group.Tags = kept
		cell.AutoScalingGroups[groupName] = group
	}

	return nil
}

// DescribeAdjustmentTypes lists the seeded adjustment types.
func (c *Client) DescribeAdjustmentTypes(ctx context.Context) (*ascent.DescribeAdjustmentTypesOutput, error) {
	cell := c.cell()

	out := &ascent.DescribeAdjustmentTypesOutput{RequestID: utility.ToStringPtr(uuid.New().String())}
	for _, name := range cell.AdjustmentTypes {
		out.AdjustmentTypes = append(out.AdjustmentTypes, ascent.AdjustmentType{AdjustmentType: utility.ToStringPtr(name)})
	}
	return out, nil
}

// DescribeAutoScalingGroups lists the cell's groups, optionally filtered by
// name.
func (c *Client) DescribeAutoScalingGroups(ctx context.Context, in *ascent.DescribeAutoScalingGroupsInput) (*ascent.DescribeAutoScalingGroupsOutput, error) {
	cell := c.cell()

	var names []string
	if in != nil {
		names = in.AutoScalingGroupNames
	}

	out := &ascent.DescribeAutoScalingGroupsOutput{RequestID: utility.ToStringPtr(uuid.New().String())}
	for _, name := range sortedKeys(cell.AutoScalingGroups) {
		if len(names) > 0 && !containsString(names, name) {
			continue
		}
		out.AutoScalingGroups = append(out.AutoScalingGroups, cell.AutoScalingGroups[name])
	}
	return out, nil
}

// DescribeAutoScalingInstances lists instances across the cell's groups,
// optionally filtered by instance ID.
func (c *Client) DescribeAutoScalingInstances(ctx context.Context, in *ascent.DescribeAutoScalingInstancesInput) (*ascent.DescribeAutoScalingInstancesOutput, error) {
	cell := c.cell()

	var ids []string
	if in != nil {
		ids = in.InstanceIDs
	}

	out := &ascent.DescribeAutoScalingInstancesOutput{RequestID: utility.ToStringPtr(uuid.New().String())}
	for _, name := range sortedKeys(cell.AutoScalingGroups) {
		for _, instance := range cell.AutoScalingGroups[name].Instances {
			if len(ids) > 0 && !containsString(ids, utility.FromStringPtr(instance.InstanceID)) {
				continue
			}
			out.AutoScalingInstances = append(out.AutoScalingInstances, instance)
		}
	}
	return out, nil
}

// DescribeLaunchConfigurations lists the cell's launch configurations,
// optionally filtered by name.
func (c *Client) DescribeLaunchConfigurations(ctx context.Context, in *ascent.DescribeLaunchConfigurationsInput) (*ascent.DescribeLaunchConfigurationsOutput, error) {
	cell := c.cell()

	var names []string
	if in != nil {
		names = in.LaunchConfigurationNames
	}

	out := &ascent.DescribeLaunchConfigurationsOutput{RequestID: utility.ToStringPtr(uuid.New().String())}
	for _, name := range sortedKeys(cell.LaunchConfigurations) {
		if len(names) > 0 && !containsString(names, name) {
			continue
		}
		out.LaunchConfigurations = append(out.LaunchConfigurations, cell.LaunchConfigurations[name])
	}
	return out, nil
}

// DescribeMetricCollectionTypes lists the seeded metrics and granularities.
func (c *Client) DescribeMetricCollectionTypes(ctx context.Context) (*ascent.DescribeMetricCollectionTypesOutput, error) {
	cell := c.cell()

	out := &ascent.DescribeMetricCollectionTypesOutput{RequestID: utility.ToStringPtr(uuid.New().String())}
	for _, metric := range cell.Metrics {
		out.Metrics = append(out.Metrics, ascent.MetricCollectionType{Metric: utility.ToStringPtr(metric)})
	}
	for _, granularity := range cell.MetricGranularities {
		out.Granularities = append(out.Granularities, ascent.MetricGranularityType{Granularity: utility.ToStringPtr(granularity)})
	}
	return out, nil
}

// DescribePolicies lists the cell's scaling policies, optionally filtered by
// group and policy name.
func (c *Client) DescribePolicies(ctx context.Context, in *ascent.DescribePoliciesInput) (*ascent.DescribePoliciesOutput, error) {
	cell := c.cell()

	var names []string
	var groupName string
	if in != nil {
		names = in.PolicyNames
		groupName = utility.FromStringPtr(in.AutoScalingGroupName)
	}

	out := &ascent.DescribePoliciesOutput{RequestID: utility.ToStringPtr(uuid.New().String())}
	for _, name := range sortedKeys(cell.ScalingPolicies) {
		policy := cell.ScalingPolicies[name]
		if len(names) > 0 && !containsString(names, name) {
			continue
		}
		if groupName != "" && utility.FromStringPtr(policy.AutoScalingGroupName) != groupName {
			continue
		}
		out.ScalingPolicies = append(out.ScalingPolicies, policy)
	}
	return out, nil
}

// DescribeScalingActivities lists the cell's recorded scaling activities,
// optionally filtered by group and activity ID.
func (c *Client) DescribeScalingActivities(ctx context.Context, in *ascent.DescribeScalingActivitiesInput) (*ascent.DescribeScalingActivitiesOutput, error) {
	cell := c.cell()

	var ids []string
	var groupName string
	if in != nil {
		ids = in.ActivityIDs
		groupName = utility.FromStringPtr(in.AutoScalingGroupName)
	}

	out := &ascent.DescribeScalingActivitiesOutput{RequestID: utility.ToStringPtr(uuid.New().String())}
	for _, activity := range cell.Activities {
		if len(ids) > 0 && !containsString(ids, utility.FromStringPtr(activity.ActivityID)) {
			continue
		}
		if groupName != "" && utility.FromStringPtr(activity.AutoScalingGroupName) != groupName {
			continue
		}
		out.Activities = append(out.Activities, activity)
	}
	return out, nil
}

// DescribeScalingProcessTypes lists the seeded scaling process types.
func (c *Client) DescribeScalingProcessTypes(ctx context.Context) (*ascent.DescribeScalingProcessTypesOutput, error) {
	cell := c.cell()

	out := &ascent.DescribeScalingProcessTypesOutput{RequestID: utility.ToStringPtr(uuid.New().String())}
	for _, name := range cell.ProcessTypes {
		out.Processes = append(out.Processes, ascent.ProcessType{ProcessName: utility.ToStringPtr(name)})
	}
	return out, nil
}

// DescribeScheduledActions lists the cell's scheduled actions, optionally
// filtered by group and action name.
func (c *Client) DescribeScheduledActions(ctx context.Context, in *ascent.DescribeScheduledActionsInput) (*ascent.DescribeScheduledActionsOutput, error) {
	cell := c.cell()

	var names []string
	var groupName string
	if in != nil {
		names = in.ScheduledActionNames
		groupName = utility.FromStringPtr(in.AutoScalingGroupName)
	}

	out := &ascent.DescribeScheduledActionsOutput{RequestID: utility.ToStringPtr(uuid.New().String())}
	for _, name := range sortedKeys(cell.ScheduledActions) {
		action := cell.ScheduledActions[name]
		if len(names) > 0 && !containsString(names, name) {
			continue
		}
		if groupName != "" && utility.FromStringPtr(action.AutoScalingGroupName) != groupName {
			continue
		}
		out.ScheduledUpdateGroupActions = append(out.ScheduledUpdateGroupActions, action)
	}
	return out, nil
}

// DescribeTags lists tags across the cell's groups.
func (c *Client) DescribeTags(ctx context.Context, in *ascent.DescribeTagsInput) (*ascent.DescribeTagsOutput, error) {
	cell := c.cell()

	out := &ascent.DescribeTagsOutput{RequestID: utility.ToStringPtr(uuid.New().String())}
	for _, name := range sortedKeys(cell.AutoScalingGroups) {
		out.Tags = append(out.Tags, cell.AutoScalingGroups[name].Tags...)
	}
	return out, nil
}

// DescribeTerminationPolicyTypes lists the termination policies the mock
// service supports.
func (c *Client) DescribeTerminationPolicyTypes(ctx context.Context) (*ascent.DescribeTerminationPolicyTypesOutput, error) {
	return &ascent.DescribeTerminationPolicyTypesOutput{
		TerminationPolicyTypes: append([]string{}, defaultTerminationPolicyTypes...),
		RequestID:              utility.ToStringPtr(uuid.New().String()),
	}, nil
}

// DisableMetricsCollection stops collecting the given metrics for a group.
// An empty list disables all metrics.
func (c *Client) DisableMetricsCollection(ctx context.Context, in *ascent.DisableMetricsCollectionInput) error {
	cell := c.cell()
	name := utility.FromStringPtr(in.AutoScalingGroupName)

	group, ok := cell.AutoScalingGroups[name]
	if !ok {
		return ascent.NewValidationError(fmt.Sprintf("AutoScalingGroup name not found - no such group: %s", name), nil)
	}

	if len(in.Metrics) == 0 {
		group.EnabledMetrics = nil
	} else {
		var kept []ascent.EnabledMetric
		for _, enabled := range group.EnabledMetrics {
			if !containsString(in.Metrics, utility.FromStringPtr(enabled.Metric)) {
				kept = append(kept, enabled)
			}
		}
		group.EnabledMetrics = kept
	}
	cell.AutoScalingGroups[name] = group

	return nil
}

// EnableMetricsCollection starts collecting the given metrics for a group.
// An empty list enables all metrics.
func (c *Client) EnableMetricsCollection(ctx context.Context, in *ascent.EnableMetricsCollectionInput) error {
	cell := c.cell()
	name := utility.FromStringPtr(in.AutoScalingGroupName)

	group, ok := cell.AutoScalingGroups[name]
	if !ok {
		return ascent.NewValidationError(fmt.Sprintf("AutoScalingGroup name not found - no such group: %s", name), nil)
	}
	granularity := utility.FromStringPtr(in.Granularity)
	if !containsString(cell.MetricGranularities, granularity) {
		return ascent.NewValidationError(fmt.Sprintf("Granularity '%s' is not valid", granularity), nil)
	}
	metrics := in.Metrics
	if len(metrics) == 0 {
		metrics = cell.Metrics
	}
	for _, metric := range metrics {
		if !containsString(cell.Metrics, metric) {
			return ascent.NewValidationError(fmt.Sprintf("Metric '%s' is not valid", metric), nil)
		}
	}

	for _, metric := range metrics {
		if !hasEnabledMetric(group.EnabledMetrics, metric) {
			group.EnabledMetrics = append(group.EnabledMetrics, ascent.EnabledMetric{
				Metric:      utility.ToStringPtr(metric),
				Granularity: in.Granularity,
			})
		}
	}
	cell.AutoScalingGroups[name] = group

	return nil
}

// ExecutePolicy applies a scaling policy's adjustment to its group's desired
// capacity, clamped to the group's size bounds.
func (c *Client) ExecutePolicy(ctx context.Context, in *ascent.ExecutePolicyInput) error {
	cell := c.cell()
	name := utility.FromStringPtr(in.PolicyName)

	policy, ok := cell.ScalingPolicies[name]
	if !ok {
		return ascent.NewValidationError(fmt.Sprintf("Policy name not found - no such policy: %s", name), nil)
	}
	groupName := utility.FromStringPtr(policy.AutoScalingGroupName)
	group, ok := cell.AutoScalingGroups[groupName]
	if !ok {
		return ascent.NewValidationError(fmt.Sprintf("AutoScalingGroup name not found - no such group: %s", groupName), nil)
	}

	desired := utility.FromIntPtr(group.DesiredCapacity)
	adjustment := utility.FromIntPtr(policy.ScalingAdjustment)
	switch utility.FromStringPtr(policy.AdjustmentType) {
	case "ChangeInCapacity":
		desired += adjustment
	case "ExactCapacity":
		desired = adjustment
	case "PercentChangeInCapacity":
		desired += desired * adjustment / 100
	}
	if min := utility.FromIntPtr(group.MinSize); desired < min {
		desired = min
	}
	if max := utility.FromIntPtr(group.MaxSize); desired > max {
		desired = max
	}

	group.DesiredCapacity = utility.ToIntPtr(desired)
	c.scaleInstances(&group)
	cell.AutoScalingGroups[groupName] = group
	c.recordActivity(cell, groupName, fmt.Sprintf("Executing policy %s", name), "a scaling policy was executed")

	return nil
}

// PutScalingPolicy creates or updates a mock scaling policy.
func (c *Client) PutScalingPolicy(ctx context.Context, in *ascent.PutScalingPolicyInput) (*ascent.PutScalingPolicyOutput, error) {
	cell := c.cell()
	groupName := utility.FromStringPtr(in.AutoScalingGroupName)
	name := utility.FromStringPtr(in.PolicyName)

	if _, ok := cell.AutoScalingGroups[groupName]; !ok {
		return nil, ascent.NewValidationError(fmt.Sprintf("AutoScalingGroup name not found - no such group: %s", groupName), nil)
	}

	arn := c.arn(fmt.Sprintf("scalingPolicy:%s:autoScalingGroupName/%s:policyName/%s", uuid.New().String(), groupName, name))
	cell.ScalingPolicies[name] = ascent.ScalingPolicy{
		PolicyName:           in.PolicyName,
		PolicyARN:            utility.ToStringPtr(arn),
		AutoScalingGroupName: in.AutoScalingGroupName,
		AdjustmentType:       in.AdjustmentType,
		ScalingAdjustment:    in.ScalingAdjustment,
		Cooldown:             in.Cooldown,
		MinAdjustmentStep:    in.MinAdjustmentStep,
	}

	return &ascent.PutScalingPolicyOutput{
		PolicyARN: utility.ToStringPtr(arn),
		RequestID: utility.ToStringPtr(uuid.New().String()),
	}, nil
}

// PutScheduledUpdateGroupAction creates or updates a mock scheduled action.
func (c *Client) PutScheduledUpdateGroupAction(ctx context.Context, in *ascent.PutScheduledUpdateGroupActionInput) error {
	cell := c.cell()
	groupName := utility.FromStringPtr(in.AutoScalingGroupName)
	name := utility.FromStringPtr(in.ScheduledActionName)

	if _, ok := cell.AutoScalingGroups[groupName]; !ok {
		return ascent.NewValidationError(fmt.Sprintf("AutoScalingGroup name not found - no such group: %s", groupName), nil)
	}

	cell.ScheduledActions[name] = ascent.ScheduledAction{
		ScheduledActionName:  in.ScheduledActionName,
		ScheduledActionARN:   utility.ToStringPtr(c.arn(fmt.Sprintf("scheduledUpdateGroupAction:%s:autoScalingGroupName/%s:scheduledActionName/%s", uuid.New().String(), groupName, name))),
		AutoScalingGroupName: in.AutoScalingGroupName,
		StartTime:            in.StartTime,
		EndTime:              in.EndTime,
		Recurrence:           in.Recurrence,
		MinSize:              in.MinSize,
		MaxSize:              in.MaxSize,
		DesiredCapacity:      in.DesiredCapacity,
	}

	return nil
}

// ResumeProcesses removes processes from a group's suspended list. An empty
// list resumes all processes.
func (c *Client) ResumeProcesses(ctx context.Context, in *ascent.ResumeProcessesInput) error {
	cell := c.cell()
	name := utility.FromStringPtr(in.AutoScalingGroupName)

	group, ok := cell.AutoScalingGroups[name]
	if !ok {
		return ascent.NewValidationError(fmt.Sprintf("AutoScalingGroup name not found - no such group: %s", name), nil)
	}
	if err := validateProcesses(cell, in.ScalingProcesses); err != nil {
		return err
	}

	if len(in.ScalingProcesses) == 0 {
		group.SuspendedProcesses = nil
	} else {
		var kept []ascent.SuspendedProcess
		for _, suspended := range group.SuspendedProcesses {
			if !containsString(in.ScalingProcesses, utility.FromStringPtr(suspended.ProcessName)) {
				kept = append(kept, suspended)
			}
		}
		group.SuspendedProcesses = kept
	}
	cell.AutoScalingGroups[name] = group

	return nil
}

// SetDesiredCapacity sets a group's desired size within its configured
// bounds and adjusts the group's instances to match.
func (c *Client) SetDesiredCapacity(ctx context.Context, in *ascent.SetDesiredCapacityInput) error {
	cell := c.cell()
	name := utility.FromStringPtr(in.AutoScalingGroupName)

	group, ok := cell.AutoScalingGroups[name]
	if !ok {
		return ascent.NewValidationError(fmt.Sprintf("AutoScalingGroup name not found - no such group: %s", name), nil)
	}
	desired := utility.FromIntPtr(in.DesiredCapacity)
	if desired < utility.FromIntPtr(group.MinSize) || desired > utility.FromIntPtr(group.MaxSize) {
		return ascent.NewValidationError(fmt.Sprintf("New SetDesiredCapacity value %d is outside the group size bounds [%d, %d]", desired, utility.FromIntPtr(group.MinSize), utility.FromIntPtr(group.MaxSize)), nil)
	}

	group.DesiredCapacity = in.DesiredCapacity
	c.scaleInstances(&group)
	cell.AutoScalingGroups[name] = group

	return nil
}

// SetInstanceHealth sets the health status of an instance in any of the
// cell's groups.
func (c *Client) SetInstanceHealth(ctx context.Context, in *ascent.SetInstanceHealthInput) error {
	cell := c.cell()
	id := utility.FromStringPtr(in.InstanceID)
	status := utility.FromStringPtr(in.HealthStatus)

	if !containsString(cell.HealthStates, status) {
		return ascent.NewValidationError(fmt.Sprintf("Health status '%s' is not valid", status), nil)
	}

	for name, group := range cell.AutoScalingGroups {
		for i, instance := range group.Instances {
			if utility.FromStringPtr(instance.InstanceID) == id {
				group.Instances[i].HealthStatus = in.HealthStatus
				cell.AutoScalingGroups[name] = group
				return nil
			}
		}
	}

	return ascent.NewValidationError(fmt.Sprintf("Instance Id not found - no instance found with the id: %s", id), nil)
}

// SuspendProcesses adds processes to a group's suspended list. An empty list
// suspends all processes.
func (c *Client) SuspendProcesses(ctx context.Context, in *ascent.SuspendProcessesInput) error {
	cell := c.cell()
	name := utility.FromStringPtr(in.AutoScalingGroupName)

	group, ok := cell.AutoScalingGroups[name]
	if !ok {
		return ascent.NewValidationError(fmt.Sprintf("AutoScalingGroup name not found - no such group: %s", name), nil)
	}
	if err := validateProcesses(cell, in.ScalingProcesses); err != nil {
		return err
	}

	processes := in.ScalingProcesses
	if len(processes) == 0 {
		processes = cell.ProcessTypes
	}
	for _, process := range processes {
		if !hasSuspendedProcess(group.SuspendedProcesses, process) {
			group.SuspendedProcesses = append(group.SuspendedProcesses, ascent.SuspendedProcess{
				ProcessName:      utility.ToStringPtr(process),
				SuspensionReason: utility.ToStringPtr("User suspended at " + time.Now().UTC().Format(time.RFC3339)),
			})
		}
	}
	cell.AutoScalingGroups[name] = group

	return nil
}

// TerminateInstanceInAutoScalingGroup removes an instance from its group and
// records the resulting scaling activity. Unless the desired capacity is
// decremented, a replacement instance is launched immediately.
func (c *Client) TerminateInstanceInAutoScalingGroup(ctx context.Context, in *ascent.TerminateInstanceInAutoScalingGroupInput) (*ascent.TerminateInstanceInAutoScalingGroupOutput, error) {
	cell := c.cell()
	id := utility.FromStringPtr(in.InstanceID)

	for name, group := range cell.AutoScalingGroups {
		for i, instance := range group.Instances {
			if utility.FromStringPtr(instance.InstanceID) != id {
				continue
			}

			group.Instances = append(group.Instances[:i], group.Instances[i+1:]...)
			if utility.FromBoolPtr(in.ShouldDecrementDesiredCapacity) {
				group.DesiredCapacity = utility.ToIntPtr(utility.FromIntPtr(group.DesiredCapacity) - 1)
			} else {
				c.scaleInstances(&group)
			}
			cell.AutoScalingGroups[name] = group

			activity := c.recordActivity(cell, name, fmt.Sprintf("Terminating EC2 instance: %s", id), "instance was taken out of service in response to a user request")
			return &ascent.TerminateInstanceInAutoScalingGroupOutput{
				Activity:  &activity,
				RequestID: utility.ToStringPtr(uuid.New().String()),
			}, nil
		}
	}

	return nil, ascent.NewValidationError(fmt.Sprintf("Instance Id not found - no instance found with the id: %s", id), nil)
}

// UpdateAutoScalingGroup updates the fields of a mock group that are set in
// the input.
func (c *Client) UpdateAutoScalingGroup(ctx context.Context, in *ascent.UpdateAutoScalingGroupInput) error {
	cell := c.cell()
	name := utility.FromStringPtr(in.AutoScalingGroupName)

	group, ok := cell.AutoScalingGroups[name]
	if !ok {
		return ascent.NewValidationError(fmt.Sprintf("AutoScalingGroup name not found - no such group: %s", name), nil)
	}
	if err := validateGroupCapacity(in.MinSize, in.MaxSize, in.DesiredCapacity); err != nil {
		return err
	}
	if in.LaunchConfigurationName != nil {
		if _, ok := cell.LaunchConfigurations[utility.FromStringPtr(in.LaunchConfigurationName)]; !ok {
			return ascent.NewValidationError(fmt.Sprintf("Launch configuration name not found - A launch configuration with the name: %s does not exist", utility.FromStringPtr(in.LaunchConfigurationName)), nil)
		}
		group.LaunchConfigurationName = in.LaunchConfigurationName
	}

	if in.AvailabilityZones != nil {
		group.AvailabilityZones = in.AvailabilityZones
	}
	if in.MinSize != nil {
		group.MinSize = in.MinSize
	}
	if in.MaxSize != nil {
		group.MaxSize = in.MaxSize
	}
	if in.DesiredCapacity != nil {
		group.DesiredCapacity = in.DesiredCapacity
	}
	if in.DefaultCooldown != nil {
		group.DefaultCooldown = in.DefaultCooldown
	}
	if in.HealthCheckType != nil {
		group.HealthCheckType = in.HealthCheckType
	}
	if in.HealthCheckGracePeriod != nil {
		group.HealthCheckGracePeriod = in.HealthCheckGracePeriod
	}
	if in.PlacementGroup != nil {
		group.PlacementGroup = in.PlacementGroup
	}
	if in.TerminationPolicies != nil {
		group.TerminationPolicies = in.TerminationPolicies
	}
	if in.VPCZoneIdentifier != nil {
		group.VPCZoneIdentifier = in.VPCZoneIdentifier
	}

	c.scaleInstances(&group)
	cell.AutoScalingGroups[name] = group

	return nil
}

// Reload is a no-op for the mock client, which holds no connection state.
func (c *Client) Reload() {}

// Close closes the mock client. It is a no-op.
func (c *Client) Close(ctx context.Context) error {
	return nil
}

func validateGroupCapacity(minSize, maxSize, desiredCapacity *int) error {
	if utility.FromIntPtr(minSize) < 0 || utility.FromIntPtr(maxSize) < 0 || utility.FromIntPtr(desiredCapacity) < 0 {
		return ascent.NewValidationError("group size values must be greater than or equal to zero", nil)
	}
	return nil
}

func validateProcesses(cell *Cell, processes []string) error {
	for _, process := range processes {
		if !containsString(cell.ProcessTypes, process) {
			return ascent.NewValidationError(fmt.Sprintf("Process '%s' is not valid", process), nil)
		}
	}
	return nil
}

func hasEnabledMetric(metrics []ascent.EnabledMetric, name string) bool {
	for _, m := range metrics {
		if utility.FromStringPtr(m.Metric) == name {
			return true
		}
	}
	return false
}

func hasSuspendedProcess(processes []ascent.SuspendedProcess, name string) bool {
	for _, p := range processes {
		if utility.FromStringPtr(p.ProcessName) == name {
			return true
		}
	}
	return false
}

func containsString(vals []string, target string) bool {
	for _, v := range vals {
		if v == target {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
