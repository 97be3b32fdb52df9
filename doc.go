/*
Package ascent provides interfaces to interact with the AWS AutoScaling
control plane. Scaling groups, launch configurations, scaling policies, and
scheduled actions are managed through a single client interface rather than
through per-operation request objects.

The AutoScalingClient interface provides a convenience wrapper around the
AutoScaling Query API. The autoscaling package implements it with signed HTTP
requests against the real service; the mock package implements it against an
in-memory store so that create/list/update/delete flows can be exercised
without network access.
*/
package ascent
