/*
Package mock provides a mock implementation of the AutoScaling client for
testing purposes.

The Client can be used for running tests without relying on infrastructure in
AWS to be set up. It operates against an in-memory Service that simulates the
provider-side state per region and access key.
*/
package mock
