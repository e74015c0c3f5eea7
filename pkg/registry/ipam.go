package registry

import "context"

// IPAddresses lists the registry's IP addresses. Read-only: this client
// never creates or mutates IPAM entries. First page only, like every other
// list operation.
func (c *Client) IPAddresses(ctx context.Context) ([]IPAddress, error) {
	return getList[IPAddress](ctx, c, pathIPAddresses, nil)
}
