package mock

import (
	"sort"

	"github.com/evergreen-ci/ascent"
)

// mockRegions are the regions the mock service recognizes. Constructing a
// client for any other region fails.
var mockRegions = []string{
	"ap-northeast-1",
	"ap-southeast-1",
	"eu-west-1",
	"sa-east-1",
	"us-east-1",
	"us-west-1",
	"us-west-2",
}

// Static reference data seeded into every cell. Operations read these lists
// but never mutate them.
var (
	defaultAdjustmentTypes = []string{
		"ChangeInCapacity",
		"ExactCapacity",
		"PercentChangeInCapacity",
	}
	defaultHealthStates = []string{
		"Healthy",
		"Unhealthy",
	}
	defaultProcessTypes = []string{
		"AZRebalance",
		"AlarmNotification",
		"HealthCheck",
		"Launch",
		"ReplaceUnhealthy",
		"ScheduledActions",
		"Terminate",
	}
	defaultMetricGranularities = []string{
		"1Minute",
	}
	defaultMetrics = []string{
		"GroupDesiredCapacity",
		"GroupInServiceInstances",
		"GroupMaxSize",
		"GroupMinSize",
		"GroupPendingInstances",
		"GroupTerminatingInstances",
		"GroupTotalInstances",
	}
	defaultTerminationPolicyTypes = []string{
		"ClosestToNextInstanceHour",
		"Default",
		"NewestInstance",
		"OldestInstance",
		"OldestLaunchConfiguration",
	}
)

// Cell is the per-(region, access key) state bucket simulating provider-side
// resources.
type Cell struct {
	LaunchConfigurations map[string]ascent.LaunchConfiguration
	AutoScalingGroups    map[string]ascent.AutoScalingGroup
	ScalingPolicies      map[string]ascent.ScalingPolicy
	ScheduledActions     map[string]ascent.ScheduledAction
	Activities           []ascent.Activity

	AdjustmentTypes     []string
	HealthStates        []string
	ProcessTypes        []string
	MetricGranularities []string
	Metrics             []string
}

func newCell() *Cell {
	return &Cell{
		LaunchConfigurations: map[string]ascent.LaunchConfiguration{},
		AutoScalingGroups:    map[string]ascent.AutoScalingGroup{},
		ScalingPolicies:      map[string]ascent.ScalingPolicy{},
		ScheduledActions:     map[string]ascent.ScheduledAction{},
		AdjustmentTypes:      defaultAdjustmentTypes,
		HealthStates:         defaultHealthStates,
		ProcessTypes:         defaultProcessTypes,
		MetricGranularities:  defaultMetricGranularities,
		Metrics:              defaultMetrics,
	}
}

// Service is a simplified in-memory implementation of AutoScaling that only
// stores metadata and does not launch real instances. State is keyed first by
// region, then by access key identifier, and each cell is created lazily with
// the full default skeleton on first access. The service has no internal
// locking; callers running concurrent tests must serialize access
// externally.
type Service struct {
	Regions map[string]map[string]*Cell
}

// NewService returns an empty mock service.
func NewService() *Service {
	return &Service{Regions: map[string]map[string]*Cell{}}
}

// GlobalAutoScalingService represents the default process-wide mock service
// state. Clients that are not given an explicit service share it.
var GlobalAutoScalingService = NewService()

// Cell returns the state bucket for the given region and access key,
// creating it with the default skeleton if it has never been touched.
func (s *Service) Cell(region, accessKeyID string) *Cell {
	keys, ok := s.Regions[region]
	if !ok {
		keys = map[string]*Cell{}
		s.Regions[region] = keys
	}
	cell, ok := keys[accessKeyID]
	if !ok {
		cell = newCell()
		keys[accessKeyID] = cell
	}
	return cell
}

// ResetData removes the state for exactly one (region, access key) cell.
// Sibling cells are unaffected, and the next access recreates the cell with
// a fresh default skeleton.
func (s *Service) ResetData(region, accessKeyID string) {
	if keys, ok := s.Regions[region]; ok {
		delete(keys, accessKeyID)
	}
}

// Reset clears all state in the service.
func (s *Service) Reset() {
	s.Regions = map[string]map[string]*Cell{}
}

// IsValidRegion returns whether the mock service recognizes the region.
func IsValidRegion(region string) bool {
	for _, r := range mockRegions {
		if r == region {
			return true
		}
	}
	return false
}

// ValidRegions returns the regions the mock service recognizes.
func ValidRegions() []string {
	regions := make([]string, len(mockRegions))
	copy(regions, mockRegions)
	sort.Strings(regions)
	return regions
}
