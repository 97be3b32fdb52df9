package autoscaling

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/evergreen-ci/ascent"
	"github.com/evergreen-ci/utility"
)

// Helpers to flatten typed inputs into Query API form parameters. Optional
// fields that are unset are omitted from the request entirely.

func setString(params url.Values, key string, val *string) {
	if val != nil {
		params.Set(key, *val)
	}
}

func setInt(params url.Values, key string, val *int) {
	if val != nil {
		params.Set(key, strconv.Itoa(*val))
	}
}

func setBool(params url.Values, key string, val *bool) {
	if val != nil {
		params.Set(key, strconv.FormatBool(*val))
	}
}

func setTime(params url.Values, key string, val *time.Time) {
	if val != nil {
		params.Set(key, val.UTC().Format("2006-01-02T15:04:05Z"))
	}
}

// setStringList serializes a list as prefix.member.1, prefix.member.2, ...
func setStringList(params url.Values, prefix string, vals []string) {
	for i, v := range vals {
		params.Set(fmt.Sprintf("%s.member.%d", prefix, i+1), v)
	}
}

// setTags serializes tags as prefix.member.N.Key, prefix.member.N.Value, and
// so on for the remaining tag fields.
func setTags(params url.Values, prefix string, tags []ascent.Tag) {
	for i, tag := range tags {
		member := fmt.Sprintf("%s.member.%d", prefix, i+1)
		setString(params, member+".Key", tag.Key)
		setString(params, member+".Value", tag.Value)
		setString(params, member+".ResourceId", tag.ResourceID)
		setString(params, member+".ResourceType", tag.ResourceType)
		setBool(params, member+".PropagateAtLaunch", tag.PropagateAtLaunch)
	}
}

// setInstanceMonitoring serializes the launch configuration monitoring flag
// in its nested wire form.
func setInstanceMonitoring(params url.Values, key string, val *bool) {
	if val != nil {
		params.Set(key+".Enabled", strconv.FormatBool(utility.FromBoolPtr(val)))
	}
}
