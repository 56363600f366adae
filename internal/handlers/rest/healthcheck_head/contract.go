//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import "context"

// Pinger is a backing dependency the service cannot serve without.
type Pinger interface {
	Ping(ctx context.Context) error
}
