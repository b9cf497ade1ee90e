package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

type fakeEC2 struct {
	instances []types.Instance
	err       error
	started   []string
}

func (f *fakeEC2) DescribeInstances(ctx context.Context, in *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ec2.DescribeInstancesOutput{
		Reservations: []types.Reservation{{Instances: f.instances}},
	}, nil
}

func (f *fakeEC2) StartInstances(ctx context.Context, in *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.started = append(f.started, in.InstanceIds...)
	return &ec2.StartInstancesOutput{}, nil
}

func instance(id string, name types.InstanceStateName) types.Instance {
	return types.Instance{
		InstanceId: aws.String(id),
		State:      &types.InstanceState{Name: name},
	}
}

func TestEC2WakerState(t *testing.T) {
	tcs := []struct {
		name types.InstanceStateName
		want State
	}{
		{types.InstanceStateNameRunning, StateRunning},
		{types.InstanceStateNamePending, StateStarting},
		{types.InstanceStateNameStopping, StateStopping},
		{types.InstanceStateNameShuttingDown, StateStopping},
		{types.InstanceStateNameStopped, StateStopped},
		{types.InstanceStateNameTerminated, StateUnknown},
	}

	for _, tc := range tcs {
		t.Run(string(tc.name), func(t *testing.T) {
			w := &EC2Waker{
				client: &fakeEC2{instances: []types.Instance{
					instance("i-other", types.InstanceStateNameRunning),
					instance("i-0123", tc.name),
				}},
				instanceID: "i-0123",
			}

			got, err := w.State(context.Background())
			if err != nil {
				t.Fatalf("State: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestEC2WakerStateMissing(t *testing.T) {
	w := &EC2Waker{client: &fakeEC2{}, instanceID: "i-0123"}

	if _, err := w.State(context.Background()); !errors.Is(err, ErrInstanceNotFound) {
		t.Errorf("got %v, want ErrInstanceNotFound", err)
	}
}

func TestEC2WakerWake(t *testing.T) {
	api := &fakeEC2{}
	w := &EC2Waker{client: api, instanceID: "i-0123"}

	if err := w.Wake(context.Background()); err != nil {
		t.Fatalf("Wake: %v", err)
	}
	if len(api.started) != 1 || api.started[0] != "i-0123" {
		t.Errorf("started %v, want [i-0123]", api.started)
	}

	boom := errors.New("unauthorized")
	w.client = &fakeEC2{err: boom}
	if err := w.Wake(context.Background()); !errors.Is(err, boom) {
		t.Errorf("got %v, want it to wrap %v", err, boom)
	}
}
