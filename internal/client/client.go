// Package client dials the control plane services. The control plane
// is loopback-only, so connections use insecure transport credentials.
package client

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// Conn is a connection to one service endpoint. Stubs share the
// underlying gRPC connection and stay valid until Close.
type Conn struct {
	cc *grpc.ClientConn
}

// Dial connects to a service address. The connection is lazy; a dead
// endpoint surfaces on the first RPC, not here.
func Dial(addr string) (*Conn, error) {
	cc, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return &Conn{cc: cc}, nil
}

// Close tears down the underlying connection.
func (c *Conn) Close() error {
	return c.cc.Close()
}

func (c *Conn) Jobs() apiv1.JobServiceClient {
	return apiv1.NewJobServiceClient(c.cc)
}

func (c *Conn) Observe() apiv1.ObserveServiceClient {
	return apiv1.NewObserveServiceClient(c.cc)
}

func (c *Conn) Workflow() apiv1.WorkflowServiceClient {
	return apiv1.NewWorkflowServiceClient(c.cc)
}

func (c *Conn) Project() apiv1.ProjectServiceClient {
	return apiv1.NewProjectServiceClient(c.cc)
}

func (c *Conn) Build() apiv1.BuildServiceClient {
	return apiv1.NewBuildServiceClient(c.cc)
}

func (c *Conn) Target() apiv1.TargetServiceClient {
	return apiv1.NewTargetServiceClient(c.cc)
}

func (c *Conn) Toolchain() apiv1.ToolchainServiceClient {
	return apiv1.NewToolchainServiceClient(c.cc)
}
