package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

var ErrInstanceNotFound = errors.New("instance not found")

// State is the power state of the backend server.
type State string

const (
	StateRunning  State = "running"
	StateStarting State = "starting"
	StateStopping State = "stopping"
	StateStopped  State = "stopped"
	StateUnknown  State = "unknown"
)

// Waker reports and changes the power state of the backend server.
type Waker interface {
	State(ctx context.Context) (State, error)
	// Wake starts the backend. Waking a running backend is not an error.
	Wake(ctx context.Context) error
}

// ec2API is the part of *ec2.Client the waker calls.
type ec2API interface {
	DescribeInstances(ctx context.Context, in *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	StartInstances(ctx context.Context, in *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
}

// EC2Waker drives a single EC2 instance.
type EC2Waker struct {
	client     ec2API
	instanceID string
}

// NewEC2Waker loads credentials the usual SDK way (environment, shared
// config, instance role). An empty region defers to that configuration.
func NewEC2Waker(ctx context.Context, region, instanceID string) (*EC2Waker, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}
	return &EC2Waker{client: ec2.NewFromConfig(cfg), instanceID: instanceID}, nil
}

func (w *EC2Waker) State(ctx context.Context) (State, error) {
	out, err := w.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{w.instanceID},
	})
	if err != nil {
		return StateUnknown, fmt.Errorf("describe %s: %w", w.instanceID, err)
	}

	for _, r := range out.Reservations {
		for _, inst := range r.Instances {
			if aws.ToString(inst.InstanceId) != w.instanceID || inst.State == nil {
				continue
			}
			return stateOf(inst.State.Name), nil
		}
	}
	return StateUnknown, fmt.Errorf("%w: %s", ErrInstanceNotFound, w.instanceID)
}

func (w *EC2Waker) Wake(ctx context.Context) error {
	_, err := w.client.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: []string{w.instanceID},
	})
	if err != nil {
		return fmt.Errorf("start %s: %w", w.instanceID, err)
	}
	return nil
}

func stateOf(name types.InstanceStateName) State {
	switch name {
	case types.InstanceStateNameRunning:
		return StateRunning
	case types.InstanceStateNamePending:
		return StateStarting
	case types.InstanceStateNameStopping, types.InstanceStateNameShuttingDown:
		return StateStopping
	case types.InstanceStateNameStopped:
		return StateStopped
	}
	return StateUnknown
}
