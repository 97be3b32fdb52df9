package awsutil

import (
	"net/url"
	"sort"

	"github.com/mongodb/grip/message"
)

// MakeAPILogMessage returns a structured message describing an API request.
// Parameter values are omitted so that signatures and user data stay out of
// logs.
func MakeAPILogMessage(action string, params url.Values) message.Fields {
	return message.Fields{
		"message": "AWS API call",
		"action":  action,
		"params":  SortedParamKeys(params),
	}
}

// SortedParamKeys returns just the names of the given request parameters in
// sorted order, for attaching request metadata to logs and traces without
// the values.
func SortedParamKeys(params url.Values) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
