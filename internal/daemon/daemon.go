// Package daemon hosts the control plane services. Each enabled
// service gets its own TCP listener and gRPC server; the observe and
// workflow services reach their collaborators through regular client
// connections, so a daemon restricted to a subset still cooperates
// with services hosted elsewhere.
package daemon

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/aadk-dev/aadk/internal/client"
	"github.com/aadk-dev/aadk/internal/config"
	"github.com/aadk-dev/aadk/internal/jobs"
	"github.com/aadk-dev/aadk/internal/observe"
	"github.com/aadk-dev/aadk/internal/workflow"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// Service names accepted by the --only flag.
const (
	ServiceJob      = "job"
	ServiceObserve  = "observe"
	ServiceWorkflow = "workflow"
)

// gracefulStopTimeout bounds how long a draining server may hold open
// streams before it is stopped hard.
const gracefulStopTimeout = 3 * time.Second

type server struct {
	name string
	grpc *grpc.Server
	lis  net.Listener
}

// Daemon runs the enabled services until its context is cancelled.
type Daemon struct {
	cfg     *config.Config
	enabled map[string]bool

	servers []*server
	conns   []*client.Conn
	worker  *jobs.Worker
	sweeper *observe.Sweeper
}

// New creates a daemon hosting the named services; an empty only list
// means all of them. Data directories are created up front so a
// misconfigured data dir fails startup, not the first export.
func New(cfg *config.Config, only []string) (*Daemon, error) {
	enabled := map[string]bool{
		ServiceJob:      true,
		ServiceObserve:  true,
		ServiceWorkflow: true,
	}
	if len(only) > 0 {
		enabled = make(map[string]bool, len(only))
		for _, name := range only {
			switch name {
			case ServiceJob, ServiceObserve, ServiceWorkflow:
				enabled[name] = true
			default:
				return nil, fmt.Errorf("unknown service %q (expected job, observe, or workflow)", name)
			}
		}
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	return &Daemon{cfg: cfg, enabled: enabled}, nil
}

// Run binds the listeners, serves until ctx is cancelled or a server
// fails, then shuts everything down gracefully.
func (d *Daemon) Run(ctx context.Context) error {
	defer d.cleanup()

	if err := d.setup(); err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, srv := range d.servers {
		srv := srv
		logrus.Infof("%s service listening on %s", srv.name, srv.lis.Addr())
		group.Go(func() error {
			if err := srv.grpc.Serve(srv.lis); err != nil {
				return fmt.Errorf("%s service: %w", srv.name, err)
			}
			return nil
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()
		d.stopServers()
		return nil
	})

	err := group.Wait()
	if err != nil && ctx.Err() != nil {
		// Cancellation wins over the serve errors it provoked.
		err = nil
	}
	return err
}

// setup builds the enabled services and binds their listeners. The job
// service comes first; observe and workflow reach it as clients even
// when it lives in the same process.
func (d *Daemon) setup() error {
	if d.enabled[ServiceJob] {
		statePath := d.cfg.StateFile(jobs.StateFileName)
		policy := jobs.RetentionFromConfig(d.cfg)
		store := jobs.LoadStore(statePath, policy)
		d.worker = jobs.NewWorker(store, statePath, policy)
		d.worker.Start()

		if err := d.bind(ServiceJob, d.cfg.JobAddr, func(s *grpc.Server) {
			apiv1.RegisterJobServiceServer(s, jobs.NewService(store, d.worker))
		}); err != nil {
			return err
		}
	}

	if !d.enabled[ServiceObserve] && !d.enabled[ServiceWorkflow] {
		return nil
	}

	jobsConn, err := d.dial(d.cfg.JobAddr)
	if err != nil {
		return err
	}

	if d.enabled[ServiceObserve] {
		store := observe.LoadStore(d.cfg.StateFile(observe.StateFileName))
		svc := observe.NewService(store, d.cfg, jobsConn.Jobs())
		d.sweeper = svc.Sweeper()
		d.sweeper.Start()

		if err := d.bind(ServiceObserve, d.cfg.ObserveAddr, func(s *grpc.Server) {
			apiv1.RegisterObserveServiceServer(s, svc)
		}); err != nil {
			return err
		}
	}

	if d.enabled[ServiceWorkflow] {
		observeConn, err := d.dial(d.cfg.ObserveAddr)
		if err != nil {
			return err
		}
		projectConn, err := d.dial(d.cfg.ProjectAddr)
		if err != nil {
			return err
		}
		buildConn, err := d.dial(d.cfg.BuildAddr)
		if err != nil {
			return err
		}
		targetConn, err := d.dial(d.cfg.TargetsAddr)
		if err != nil {
			return err
		}
		toolchainConn, err := d.dial(d.cfg.ToolchainAddr)
		if err != nil {
			return err
		}

		svc := workflow.NewService(workflow.Clients{
			Jobs:      jobsConn.Jobs(),
			Observe:   observeConn.Observe(),
			Project:   projectConn.Project(),
			Build:     buildConn.Build(),
			Target:    targetConn.Target(),
			Toolchain: toolchainConn.Toolchain(),
		})
		if err := d.bind(ServiceWorkflow, d.cfg.WorkflowAddr, func(s *grpc.Server) {
			apiv1.RegisterWorkflowServiceServer(s, svc)
		}); err != nil {
			return err
		}
	}

	return nil
}

func (d *Daemon) bind(name, addr string, register func(*grpc.Server)) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind %s service on %s: %w", name, addr, err)
	}
	grpcServer := grpc.NewServer()
	register(grpcServer)
	d.servers = append(d.servers, &server{name: name, grpc: grpcServer, lis: lis})
	return nil
}

func (d *Daemon) dial(addr string) (*client.Conn, error) {
	conn, err := client.Dial(addr)
	if err != nil {
		return nil, err
	}
	d.conns = append(d.conns, conn)
	return conn, nil
}

// stopServers drains the servers in reverse start order, so dependents
// go down before the job service they publish to.
func (d *Daemon) stopServers() {
	for i := len(d.servers) - 1; i >= 0; i-- {
		srv := d.servers[i]
		stopped := make(chan struct{})
		go func() {
			srv.grpc.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(gracefulStopTimeout):
			logrus.Warnf("%s service drain timed out, stopping hard", srv.name)
			srv.grpc.Stop()
			<-stopped
		}
		logrus.Infof("%s service stopped", srv.name)
	}
}

func (d *Daemon) cleanup() {
	if d.sweeper != nil {
		d.sweeper.Stop()
	}
	if d.worker != nil {
		// Final flush of the job registry.
		d.worker.Stop()
	}
	for _, conn := range d.conns {
		conn.Close()
	}
}
